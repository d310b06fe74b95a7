package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lorebel/inventario-api/internal/metrics"
)

// MetricsMiddleware observa cada request: contador y latencia por ruta,
// método y status.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		labels := []string{route, c.Method(), strconv.Itoa(status)}
		metrics.RequestsTotal.WithLabelValues(labels...).Inc()
		metrics.RequestLatency.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}
