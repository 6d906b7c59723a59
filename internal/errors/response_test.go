package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorResponse(t *testing.T) {
	response := NewErrorResponse(ValidationInvalidFormat, "trace-123")

	assert.Equal(t, string(ValidationInvalidFormat), response.Error.Code)
	assert.Equal(t, "Request body could not be decoded", response.Error.Message)
	assert.Equal(t, "trace-123", response.Error.TraceID)
	assert.Empty(t, response.Error.Details)
}

func TestNewErrorResponse_WithOptions(t *testing.T) {
	response := NewErrorResponse(ValidationGeneral, "trace-123",
		WithDetails("amount: not a number"),
		WithMessage("custom message"),
	)

	assert.Equal(t, []string{"amount: not a number"}, response.Error.Details)
	assert.Equal(t, "custom message", response.Error.Message)
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
		want int
	}{
		{"validation general", ValidationGeneral, http.StatusBadRequest},
		{"invalid format", ValidationInvalidFormat, http.StatusBadRequest},
		{"unknown category", ValidationUnknownCategory, http.StatusBadRequest},
		{"asset not found", AssetNotFound, http.StatusNotFound},
		{"internal error", SystemInternalError, http.StatusInternalServerError},
		{"encoding error", SystemEncodingError, http.StatusInternalServerError},
		{"unregistered code", ErrorCode("NOPE_001"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestErrorResponse_IsClientError(t *testing.T) {
	assert.True(t, NewErrorResponse(ValidationGeneral, "t").IsClientError())
	assert.False(t, NewErrorResponse(SystemInternalError, "t").IsClientError())
}
