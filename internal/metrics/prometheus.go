package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "endpoint"},
	)

	// OrdersTotal tracks payment attempts by outcome
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Total number of payment attempts by outcome",
		},
		[]string{"status"},
	)

	// PaymentAmount tracks confirmed order totals in KRW
	PaymentAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "payment_amount_krw",
			Help:    "Confirmed order totals in KRW",
			Buckets: []float64{100000, 250000, 500000, 1000000, 2500000, 5000000},
		},
	)
)

// PrometheusMiddleware creates an Echo middleware for automatic metrics collection
func PrometheusMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)

			RequestsTotal.WithLabelValues(
				serviceName,
				c.Request().Method,
				c.Path(),
				status,
			).Inc()

			RequestDuration.WithLabelValues(
				serviceName,
				c.Request().Method,
				c.Path(),
			).Observe(duration)

			return err
		}
	}
}
