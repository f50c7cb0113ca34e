package errors

import "net/http"

// HTTPError is an error that carries the business code and status written to the client.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// Error implements error.
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a 400 error with the given business code.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    msg,
		StatusCode: http.StatusBadRequest,
	}
}

// NewHTTPStatusError creates an error with an explicit HTTP status.
func NewHTTPStatusError(status, code int, msg string) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    msg,
		StatusCode: status,
	}
}
