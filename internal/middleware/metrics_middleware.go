package middleware

import (
	"strconv"
	"time"

	"github.com/farellandr/hostspot/internal/observability"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency labelled by route template so ids in paths
// do not create new series.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(started).Seconds())
	}
}
