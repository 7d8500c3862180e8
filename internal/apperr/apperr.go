// Package apperr defines the error type every handler funnels into the
// terminal error boundary. An Error carries the HTTP status, the short name
// echoed in the "error" field and the human message.
package apperr

import "net/http"

type Error struct {
	Status  int
	Name    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(status int, name, message string) *Error {
	return &Error{Status: status, Name: name, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, "Bad request", message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, "Unauthorized", message)
}

func NotFound(name, message string) *Error {
	return New(http.StatusNotFound, name, message)
}

func ServiceUnavailable(name, message string) *Error {
	return New(http.StatusServiceUnavailable, name, message)
}

// Internal wraps an upstream failure as a 500. The boundary decides how much
// of the message leaks based on the environment.
func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Name: "Internal server error", Message: message, Err: err}
}
