package dispatch

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(body string, status int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(status).SendString(body)
	}
}

func newTestApp(d *Dispatcher) *fiber.App {
	app := fiber.New()
	app.Use(d.Handler())
	return app
}

func TestSuffix(t *testing.T) {
	match := Suffix("/data")

	tests := []struct {
		path string
		want bool
	}{
		{"/data", true},
		{"/functions/v1/terrascope/data", true},
		{"/mydata", false},
		{"/data/", false},
		{"/", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, match(tt.path))
		})
	}
}

func TestDispatcherFirstMatchWins(t *testing.T) {
	d := New(reply("fallback", http.StatusNotFound),
		Route{Method: fiber.MethodGet, Match: Suffix("/data"), Handler: reply("first", http.StatusOK)},
		Route{Method: fiber.MethodGet, Match: Any, Handler: reply("second", http.StatusOK)},
	)
	app := newTestApp(d)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x/data", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "first", string(body))

	// A path not matching the first route falls through to the second.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/other", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "second", string(body))
}

func TestDispatcherMethodFiltering(t *testing.T) {
	d := New(reply("fallback", http.StatusNotFound),
		Route{Method: fiber.MethodPost, Match: Suffix("/add"), Handler: reply("added", http.StatusCreated)},
	)
	app := newTestApp(d)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/add", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same path, wrong method: the route must not fire.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/add", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDispatcherFallback(t *testing.T) {
	d := New(reply("fallback", http.StatusNotFound),
		Route{Method: fiber.MethodGet, Match: Suffix("/data"), Handler: reply("data", http.StatusOK)},
	)
	app := newTestApp(d)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodDelete, "/data", nil),
		httptest.NewRequest(http.MethodGet, "/unknown", nil),
	} {
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "fallback", string(body))
	}
}

func TestDispatcherStoresRoutePattern(t *testing.T) {
	var got string
	capture := func(c *fiber.Ctx) error {
		got, _ = c.Locals(RoutePatternLocalKey).(string)
		return c.SendStatus(http.StatusOK)
	}

	d := New(capture,
		Route{Method: fiber.MethodGet, Match: Suffix("/data"), Handler: capture, Pattern: "*/data"},
	)
	app := newTestApp(d)

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/data", nil))
	require.NoError(t, err)
	assert.Equal(t, "*/data", got)

	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, "*", got)
}
