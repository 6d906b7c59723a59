package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// PanicRecovery recovers from handler panics and replies with a bare
// 500. Internal errors never carry a response body.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("panic recovered",
						"trace_id", GetTraceID(c),
						"panic", fmt.Sprintf("%v", r),
						"stack_trace", string(debug.Stack()),
						"path", c.Request().URL.Path,
						"method", c.Request().Method,
					)

					if err := c.NoContent(http.StatusInternalServerError); err != nil {
						slog.Error("failed to send panic recovery response",
							"trace_id", GetTraceID(c),
							"error", err.Error(),
						)
					}
				}
			}()

			return next(c)
		}
	}
}
