package errs

import "strings"

// Response is the JSON body written for every failed request.
//
//	{ "error": "Dish must include a name" }
type Response struct {
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "VALIDATION_FAILED").
//   - Message: human-friendly message, written to the client verbatim.
//   - Status: HTTP status code.
//   - Field: payload field the error relates to, empty when not field specific.
//   - Override: whether the message is safe to show to end users as-is.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Field    string `json:"field,omitempty"`
	Override bool   `json:"override"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It only compares the type, not Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// Body renders the error as the client response body.
func (e *HTTPError) Body() Response {
	return Response{Error: e.Message}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
