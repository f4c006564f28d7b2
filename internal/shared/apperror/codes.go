package apperror

const (
	// Client errors (4xx)
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeEmptyResult      = "EMPTY_RESULT"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
