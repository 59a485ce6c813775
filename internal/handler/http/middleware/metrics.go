// File: internal/handler/http/middleware/metrics.go

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/utils/metrics"
)

// MetricsMiddleware собирает метрики HTTP запросов
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.RequestsTotal.Inc()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		// FullPath возвращает шаблон маршрута, а не сырой URL
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		metrics.ResponsesTotal.WithLabelValues(status).Inc()
		metrics.RequestDuration.Observe(duration)
		metrics.RequestDurationByPath.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
