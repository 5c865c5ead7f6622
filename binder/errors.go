package binder

import "errors"

// Common binding errors
var (
	// ErrNotApplicable is returned by a binder that does not handle this kind
	// of request. handler.Wrap skips such binders.
	ErrNotApplicable = errors.New("binder not applicable to request")

	ErrUnsupportedMediaType  = errors.New("unsupported media type")
	ErrMissingContentType    = errors.New("missing content type")
	ErrFailedToParseJSON     = errors.New("failed to parse JSON request body")
	ErrFailedToParseSignals  = errors.New("failed to parse DataStar signals")
	ErrRequestEntityTooLarge = errors.New("request body too large")
)
