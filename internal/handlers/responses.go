package handlers

import (
	"log/slog"
	"net/http"

	"spending-tracker/internal/errors"
	"spending-tracker/internal/middleware"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// 1. SendError - For client errors (4xx responses): malformed bodies,
//    unknown categories, missing assets.
// 2. SendSystemError - For internal errors (500 responses). Internal
//    errors are logged server-side and carry no response body.

// SendError sends a standardized error response with the trace ID from
// the request context.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, middleware.GetTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs the internal error and replies with a bare 500.
func SendSystemError(c echo.Context, err error) error {
	slog.Error("internal error",
		"trace_id", middleware.GetTraceID(c),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)
	return c.NoContent(http.StatusInternalServerError)
}
