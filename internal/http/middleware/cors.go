package middleware

import (
	"github.com/gofiber/fiber/v2"

	"terrascope/internal/config"
)

// CORS attaches the configured cross-origin headers to every response, on
// every branch including errors and the unmatched-route fallback. Preflight
// requests are not terminated here; the OPTIONS rule in the dispatch table
// owns that, so this middleware stays response-header-only.
func CORS(cfg config.CORSConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowOrigin)
		c.Set(fiber.HeaderAccessControlAllowMethods, cfg.AllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, cfg.AllowHeaders)

		return c.Next()
	}
}
