package gateway

import (
	"net/http"
)

// Error is a failure the caller is allowed to see. Status follows HTTP
// semantics; Message is safe to return verbatim.
type Error struct {
	Status  int
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

func badRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

func notFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

// internal hides err from the caller; it is kept for server-side logging.
func internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error", Err: err}
}

var (
	errNoToken      = unauthorized("Authentication required")
	errInvalidToken = unauthorized("Invalid or expired token")
	errInvalidCreds = unauthorized("Invalid credentials")
)
