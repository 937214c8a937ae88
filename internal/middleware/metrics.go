package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/usage-billing-api/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request counts and latency per route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(started))
	}
}
