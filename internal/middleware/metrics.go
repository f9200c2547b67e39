package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"budgetwise/internal/metrics"
)

// unmatchedRoute labels requests that hit no route, so unknown paths do not
// create new label values.
const unmatchedRoute = "unmatched"

// Metrics updates the HTTP request collectors. Requests are labelled with
// the route template (/api/v1/budget/:ownerId) rather than the raw path.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := time.Since(start).Seconds()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		metrics.RequestDuration.WithLabelValues(status, c.Request.Method, route).Observe(elapsed)
		metrics.RequestCount.WithLabelValues(status, c.Request.Method, route).Inc()
	}
}
