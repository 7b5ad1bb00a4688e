package handler

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"terrascope/internal/dispatch"
	"terrascope/internal/model"
)

// addResponse confirms a successful submission, echoing the parsed payload.
type addResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Welcome handles the API root.
// @Summary API greeting
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Welcome() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Terrascope API"})
	}
}

// Ping reports the server is up.
// @Summary Liveness signal
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func Ping() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// LivenessProbe is the bare probe for load balancers; no dependencies to check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Preflight acknowledges CORS preflight requests. The cross-origin headers
// themselves are set by the CORS middleware, so the body stays empty.
func Preflight() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListRecords serves the fixed land-health sample list.
// @Summary List land-health records
// @Produce json
// @Success 200 {array} model.LandRecord
// @Router /data [get]
func ListRecords() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.SampleRecords())
	}
}

// AddRecord parses the request body as JSON and echoes it back wrapped in a
// confirmation object. Nothing is stored; the payload is logged for
// diagnostics only.
// @Summary Submit a land-health record
// @Accept json
// @Produce json
// @Success 201 {object} addResponse
// @Failure 400 {object} errorPayload
// @Router /add [post]
func AddRecord() fiber.Handler {
	return AddRecordWithWriter(os.Stdout)
}

// AddRecordWithWriter is AddRecord with an injectable diagnostic log destination.
func AddRecordWithWriter(w io.Writer) fiber.Handler {
	enc := json.NewEncoder(w)

	return func(c *fiber.Ctx) error {
		body := c.Body()

		var payload any
		if err := json.Unmarshal(body, &payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid JSON body")
		}

		trace.SpanFromContext(c.UserContext()).SetAttributes(
			attribute.Int("terrascope.payload_bytes", len(body)),
		)

		_ = enc.Encode(map[string]any{
			"ts":         time.Now().UTC().Format(time.RFC3339Nano),
			"level":      "info",
			"msg":        "payload_received",
			"request_id": requestIDFromCtx(c),
			"payload":    payload,
		})

		return c.Status(fiber.StatusCreated).JSON(addResponse{
			Message: "Data added successfully",
			Data:    payload,
		})
	}
}

// NotFound is the unmatched-route fallback.
func NotFound() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return writeError(c, fiber.StatusNotFound, "Not Found")
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Explicit
// operational routes come first; everything else funnels into the suffix
// dispatcher, whose table mirrors the deployed edge function: OPTIONS
// anywhere, GET <any-prefix>/data, POST <any-prefix>/add, 404 fallback.
// The dispatcher mounts as the terminal catch-all, so this must be the last
// registration on the app.
func RegisterRoutes(app *fiber.App) {
	app.Get("/", Welcome())
	app.Get("/ping", Ping())
	app.Get("/healthz", LivenessProbe())

	d := dispatch.New(NotFound(),
		dispatch.Route{Method: fiber.MethodOptions, Match: dispatch.Any, Handler: Preflight(), Pattern: "*"},
		dispatch.Route{Method: fiber.MethodGet, Match: dispatch.Suffix("/data"), Handler: ListRecords(), Pattern: "*/data"},
		dispatch.Route{Method: fiber.MethodPost, Match: dispatch.Suffix("/add"), Handler: AddRecord(), Pattern: "*/add"},
	)
	app.Use(d.Handler())
}
