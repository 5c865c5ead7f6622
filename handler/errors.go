package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is a structured error carrying the HTTP status code and the
// human-readable message returned to the client. It is rendered as
// {"statusCode": <code>, "message": <message>}.
type HTTPError struct {
	Code    int    `json:"statusCode"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given code and message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

// Common errors used by the site's routes.
var (
	ErrBadRequest       = HTTPError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrNotFound         = HTTPError{Code: http.StatusNotFound, Message: "Page not found"}
	ErrMethodNotAllowed = HTTPError{Code: http.StatusMethodNotAllowed, Message: "Method not allowed"}
	ErrInternal         = HTTPError{Code: http.StatusInternalServerError, Message: "An error occurred processing your request"}
)
