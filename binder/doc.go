// Package binder decodes HTTP requests into typed values for handler.Wrap.
//
// Two binders are provided:
//
//   - JSON decodes an application/json body with a size limit.
//   - DataStar reads the signals a DataStar client sends with its request.
//
// Each binder returns ErrNotApplicable for the other kind of request, so both
// can be registered on the same route:
//
//	handler.WithBinders[handler.Context, Request](binder.DataStar(), binder.JSON())
//
// All other failures wrap one of the sentinel errors in errors.go and can be
// checked with errors.Is.
package binder
