package mailchimp

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed wraps transport errors, timeouts included.
	ErrRequestFailed = errors.New("mailchimp: request failed")
	// ErrInvalidResponse is returned when a response body cannot be read.
	ErrInvalidResponse = errors.New("mailchimp: invalid response")
)

// APIError is a non-2xx answer from the API. Title and Detail come from the
// problem-JSON body when the API sent one.
type APIError struct {
	StatusCode int    `json:"status"`
	Title      string `json:"title"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("mailchimp: status %d", e.StatusCode)
	}
	return fmt.Sprintf("mailchimp: status %d: %s", e.StatusCode, e.Title)
}

// HTTPStatus returns the status code the API answered with.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
