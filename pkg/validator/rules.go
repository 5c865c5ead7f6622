package validator

import (
	"fmt"
	"regexp"
)

// RequiredString fails on the empty string. Whitespace counts as content;
// callers that want it rejected should trim first.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Code:    ErrFieldRequired,
		},
	}
}

// LenBetween checks min <= len(value) <= max, counting bytes.
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := len(value)
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters long", min, max),
			Code:    ErrInvalidLength,
		},
	}
}

// MatchesPattern checks value against a precompiled pattern. description
// names the expected format in the error message.
func MatchesPattern(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool { return pattern.MatchString(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid " + description,
			Code:    ErrInvalidFormat,
		},
	}
}
