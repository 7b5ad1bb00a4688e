// Package dispatch implements the edge routing model: an ordered table of
// (method, path-predicate) rules evaluated top-down, first match wins.
// Unlike the framework router it matches on path suffix, so the same table
// serves the API whether it is mounted at / or behind a gateway prefix such
// as /functions/v1/terrascope.
package dispatch

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RoutePatternLocalKey is the context-locals key under which the dispatcher
// stores the matched route's display pattern. Consumers (request metrics)
// use it instead of the raw path to keep label cardinality bounded.
const RoutePatternLocalKey = "route_pattern"

// Predicate reports whether a request path selects a route.
type Predicate func(path string) bool

// Route binds an HTTP method and a path predicate to a handler.
// Pattern is a display form of the predicate (e.g. "*/data") and is not used
// for matching.
type Route struct {
	Method  string
	Match   Predicate
	Handler fiber.Handler
	Pattern string
}

// Dispatcher evaluates its route table in order and runs the first route
// whose method and predicate both match. Requests matching no route go to
// the fallback handler. A Dispatcher holds no mutable state and is safe for
// concurrent use.
type Dispatcher struct {
	routes   []Route
	fallback fiber.Handler
}

// New builds a Dispatcher from the fallback handler and the ordered routes.
func New(fallback fiber.Handler, routes ...Route) *Dispatcher {
	return &Dispatcher{routes: routes, fallback: fallback}
}

// Handler returns the fiber handler performing the dispatch. It is meant to
// be mounted with app.Use as the terminal catch-all, after every explicit
// route, so no request falls through to framework-default 404/405 handling.
func (d *Dispatcher) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := c.Method()
		path := c.Path()

		for _, r := range d.routes {
			if r.Method != method {
				continue
			}
			if r.Match != nil && !r.Match(path) {
				continue
			}
			c.Locals(RoutePatternLocalKey, r.Pattern)
			return r.Handler(c)
		}

		c.Locals(RoutePatternLocalKey, "*")
		return d.fallback(c)
	}
}

// Suffix returns a predicate matching any path that ends in s. Keeping the
// leading slash in s guards the segment boundary: Suffix("/data") matches
// "/data" and "/v1/terrascope/data" but not "/mydata".
func Suffix(s string) Predicate {
	return func(path string) bool {
		return strings.HasSuffix(path, s)
	}
}

// Any matches every path.
func Any(string) bool { return true }
