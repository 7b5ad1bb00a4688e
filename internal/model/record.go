package model

// LandRecord represents a single land-health sample as served by the edge API.
// This is a pure domain model with no transport- or storage-specific
// dependencies; it can be used across layers without coupling.
type LandRecord struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Size     string `json:"size"`
}

// SampleRecords returns the fixed two-element demo dataset served by the
// GET data route. A fresh slice is built on every call so callers can never
// mutate state shared across requests.
func SampleRecords() []LandRecord {
	return []LandRecord{
		{ID: 1, Name: "Green Valley Farm", Location: "Kaduna, Nigeria", Size: "5 acres"},
		{ID: 2, Name: "Riverside Plot", Location: "Abuja, Nigeria", Size: "3.2 hectares"},
	}
}
