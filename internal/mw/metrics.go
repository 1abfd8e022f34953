package mw

import (
	"time"

	"github.com/gin-gonic/gin"

	"event-hotels-backend/internal/observability"
)

// Metrics records request count and latency per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observability.ObserveHTTP(route(c), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
