package handler

import (
	"github.com/gofiber/fiber/v2"

	"terrascope/internal/http/middleware"
)

// errorPayload defines the standardized error response body. Browser clients
// of the edge API key off the single "error" field, so the shape is flat.
type errorPayload struct {
	Error string `json:"error"`
}

// requestIDFromCtx extracts the request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses. Designed errors are written by handlers through writeError;
// only errors escaping a handler (or a panic caught by the recover
// middleware) end up here.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "Bad Request")
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
			// The route table treats method mismatches as unmatched routes.
			return writeError(c, fiber.StatusNotFound, "Not Found")
		default:
			return writeError(c, status, "Internal Server Error")
		}
	}
}
