package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"alumni-portal/internal/metrics"
)

// Metrics records request count and latency by route pattern. Errors are
// handed to the app's error handler here so the recorded status is final.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		route := c.Route().Path
		if c.Response().StatusCode() == fiber.StatusNotFound && route == "/" {
			route = "unmatched"
		}
		method := c.Method()
		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Response().StatusCode())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return nil
	}
}
