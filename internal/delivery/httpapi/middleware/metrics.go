package middleware

import (
	"strconv"
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records HTTP request counts and latency. The route template is
// used as the path label to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
