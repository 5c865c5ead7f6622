package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON creates a JSON response that encodes v as the body.
// The status defaults to 200 OK.
//
//	return handler.JSON(Response{Email: email})
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   v,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates a JSON error response in the {"statusCode", "message"}
// shape. HTTPError values keep their code and message; any other error is
// rendered as ErrInternal so that internals never reach the client.
// HTTPError values without an error status are treated the same way.
func JSONError(err error, opts ...JSONOption) Response {
	httpErr := ErrInternal
	var target HTTPError
	if errors.As(err, &target) && target.Code >= http.StatusBadRequest {
		httpErr = target
	}

	r := &jsonResponse{
		status: httpErr.Code,
		body:   httpErr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
