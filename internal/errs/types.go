package errs

import (
	"net/http"
)

const (
	// CodeValidationFailed marks a payload field that failed a check.
	CodeValidationFailed = "VALIDATION_FAILED"

	// CodeConflict marks a request that is well-formed but contradicts
	// the current record (id mismatch, deleting a non-pending order).
	CodeConflict = "CONFLICT"
)

// NewValidationError creates a 400 error for a single invalid payload field.
//
// Parameters:
//   - field: the payload key that failed (e.g. "price")
//   - message: text to send to the client
func NewValidationError(field, message string) *HTTPError {
	return &HTTPError{
		Code:     CodeValidationFailed,
		Message:  message,
		Status:   http.StatusBadRequest,
		Field:    field,
		Override: true,
	}
}

// NewConflictError creates a 400 error for a request that conflicts with
// the state of the resolved record.
func NewConflictError(reason string) *HTTPError {
	return &HTTPError{
		Code:     CodeConflict,
		Message:  reason,
		Status:   http.StatusBadRequest,
		Override: true,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is an optional custom code string; nil defaults to "BAD_REQUEST".
func NewBadRequestError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewMethodNotAllowedError creates a 405 Method Not Allowed HTTPError.
func NewMethodNotAllowedError(message string) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusMethodNotAllowed)),
		Message:  message,
		Status:   http.StatusMethodNotAllowed,
		Override: true,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message:  http.StatusText(http.StatusTooManyRequests),
		Status:   http.StatusTooManyRequests,
		Override: false,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the underlying error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
