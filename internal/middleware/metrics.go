package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/college-adp-api/internal/service"
)

// Metrics observes every API request with the metrics service. Scrapes of
// /metrics itself and the swagger assets are excluded so they do not skew
// the latency histograms.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if path == "/metrics" || strings.HasPrefix(path, "/docs") {
			return
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
