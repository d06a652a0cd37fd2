package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	lessonAdminTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lesson_admin_operations_total",
			Help: "Seeding and cleanup runs by operation and outcome",
		},
		[]string{"operation", "language", "status"},
	)

	lessonsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lesson_admin_lessons",
			Help:    "Number of lessons left after a seeding or cleanup run",
			Buckets: prometheus.LinearBuckets(0, 2, 8),
		},
		[]string{"operation"},
	)

	suggestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "word_suggest_total",
			Help: "Total number of vocabulary autocomplete requests",
		},
		[]string{"language"},
	)
)

// MetricsMiddleware collects Prometheus request metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()

		// Route pattern, so /lessons/el/3 is counted as /lessons/:code/:id
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		c.Next()

		httpRequestsInFlight.Dec()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(duration)
	}
}

// RecordLessonAdmin records one initialize, reinitialize or cleanup run.
func RecordLessonAdmin(operation, language string, lessons int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	lessonAdminTotal.WithLabelValues(operation, language, status).Inc()
	if err == nil {
		lessonsReturned.WithLabelValues(operation).Observe(float64(lessons))
	}
}

func RecordSuggest(language string) {
	suggestTotal.WithLabelValues(language).Inc()
}
