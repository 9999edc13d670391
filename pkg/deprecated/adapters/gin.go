package adapters

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/commit0-lite-test/deprecated/pkg/deprecated"
)

// GinMiddleware returns middleware marking every route it wraps as
// deprecated for Gin. Each request raises an endpoint warning through the
// ambient filters and the response carries the Deprecation, Sunset and
// Link headers. When the configured action escalates, the request is
// aborted with 410 Gone before the handler runs.
func GinMiddleware(notice Notice, opts ...deprecated.Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		stamp(c.Header, notice)
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if err := warnEndpoint(c.Request.Method, path, notice, opts); err != nil {
			c.AbortWithStatusJSON(http.StatusGone, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}
