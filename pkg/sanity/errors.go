package sanity

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed wraps transport errors, timeouts included.
	ErrRequestFailed = errors.New("sanity: request failed")
	// ErrInvalidResponse is returned when a 2xx body cannot be decoded.
	ErrInvalidResponse = errors.New("sanity: invalid response")
	// ErrHealthcheckFailed is returned by Ping.
	ErrHealthcheckFailed = errors.New("sanity healthcheck failed")
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("sanity: status %d", e.StatusCode)
	}
	return fmt.Sprintf("sanity: status %d: %s", e.StatusCode, e.Description)
}

// HTTPStatus returns the status code the API answered with.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
