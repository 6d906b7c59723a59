package middleware

import (
	"time"

	"spending-tracker/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records a per-endpoint request counter and latency histogram
// for every request served.
func Metrics(m *metrics.HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Resolve the response status before recording it.
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			m.ObserveRequest(path, c.Request().Method, c.Response().Status, time.Since(start))
			return err
		}
	}
}
