package adapters

import (
	"github.com/gofiber/fiber/v2"

	"github.com/commit0-lite-test/deprecated/pkg/deprecated"
)

// FiberMiddleware returns middleware marking every route it wraps as
// deprecated for Fiber v2. Each request raises an endpoint warning through
// the ambient filters and the response carries the Deprecation, Sunset and
// Link headers. When the configured action escalates, the request is
// rejected with 410 Gone before the handler runs.
func FiberMiddleware(notice Notice, opts ...deprecated.Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stamp(c.Set, notice)
		path := c.Route().Path
		if path == "" || path == "/" {
			path = c.Path()
		}
		if err := warnEndpoint(c.Method(), path, notice, opts); err != nil {
			return fiber.NewError(fiber.StatusGone, err.Error())
		}
		return c.Next()
	}
}
