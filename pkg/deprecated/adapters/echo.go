package adapters

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commit0-lite-test/deprecated/pkg/deprecated"
)

// EchoMiddleware returns middleware marking every route it wraps as
// deprecated for Echo v4. Each request raises an endpoint warning through
// the ambient filters and the response carries the Deprecation, Sunset and
// Link headers. Attach it per route or per group. When the configured
// action escalates, the request is rejected with 410 Gone before the
// handler runs.
func EchoMiddleware(notice Notice, opts ...deprecated.Option) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			stamp(c.Response().Header().Set, notice)
			if err := warnEndpoint(c.Request().Method, c.Path(), notice, opts); err != nil {
				return echo.NewHTTPError(http.StatusGone, err.Error())
			}
			return next(c)
		}
	}
}
