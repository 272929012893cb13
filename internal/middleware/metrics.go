package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"lumeo/internal/observability"
)

// InitMetrics creates the Prometheus middleware for the given service name.
// The domain counters are registered on the same registry the /metrics
// endpoint serves, so they are exported alongside the HTTP request metrics.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	registry := prometheus.NewRegistry()
	registry.MustRegister(observability.FeedFallbacks, observability.CounterDrift)
	return fiberprometheus.NewWithRegistry(registry, service, "http", "", nil)
}

// MetricsMiddleware adapts the Prometheus middleware into a fiber.Handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
