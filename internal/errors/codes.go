package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_002"
	ValidationUnknownCategory ErrorCode = "VALIDATION_003"
)

// Asset error codes (ASSET_*)
const (
	AssetNotFound ErrorCode = "ASSET_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError ErrorCode = "SYSTEM_001"
	SystemEncodingError ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationInvalidFormat:   "Request body could not be decoded",
	ValidationUnknownCategory: "Unknown spending category",

	// Asset errors
	AssetNotFound: "Asset not found",

	// System errors
	SystemInternalError: "An unexpected error occurred",
	SystemEncodingError: "Response encoding failed",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
