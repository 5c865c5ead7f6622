package binder

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarRequestHeader is set to "true" by DataStar on every backend action.
	DataStarRequestHeader = "Datastar-Request"

	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals on GET requests
	DataStarQueryParam = "datastar"
)

// IsDataStar checks if the request was issued by DataStar.
// The datastar query parameter only counts on GET, where DataStar sends
// signals in the URL.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.Method == http.MethodGet && r.URL.Query().Has(DataStarQueryParam)
}

// DataStar creates a binder that reads DataStar signals into v.
// Signals come from the "datastar" query parameter for GET requests and from
// the JSON body otherwise, limited to DefaultMaxJSONSize. Non-DataStar requests yield ErrNotApplicable.
func DataStar() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !IsDataStar(r) {
			return ErrNotApplicable
		}
		if r.Body != nil {
			r.Body = io.NopCloser(io.LimitReader(r.Body, DefaultMaxJSONSize))
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseSignals, err)
		}
		return nil
	}
}
