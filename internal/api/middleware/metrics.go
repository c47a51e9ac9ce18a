package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shiftboard/pkg/metrics"
)

// Metrics 记录请求数与耗时，route 取路由模板，未匹配的请求记为 unmatched
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
