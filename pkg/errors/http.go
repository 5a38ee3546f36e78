package errors

import "net/http"

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	Code    int    // HTTP status code
	Message string // client-facing message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Common HTTP errors.
var (
	ErrBadRequest      = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrNotFound        = NewHTTPError(http.StatusNotFound, "Not found")
	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)
