package middleware

import (
	"bulk-cleanup/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, c.Request.Method, c.Writer.Status())
	}
}
