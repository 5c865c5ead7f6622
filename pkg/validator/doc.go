// Package validator composes small validation rules into a single error.
//
// A Rule pairs a deferred check with the ValidationError reported when the
// check fails. Apply runs every rule and collects the failures:
//
//	err := validator.Apply(
//		validator.RequiredString("email", email),
//		validator.LenBetween("email", email, 6, 60),
//		validator.MatchesPattern("email", email, emailPattern, "email address"),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs.Has("email") {
//		...
//	}
//
// Patterns are passed precompiled so hot paths never compile a regexp per
// call. Each ValidationError carries a Code sentinel from errors.go that can
// be matched with errors.Is.
package validator
