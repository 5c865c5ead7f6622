package signup

import (
	"regexp"
	"strings"

	"github.com/outputfield/web/pkg/validator"
)

const (
	minEmailLength = 6
	maxEmailLength = 60
)

// emailPattern must stay ASCII only: (?i) would fold U+212A and U+017F
// into k and s.
var emailPattern = regexp.MustCompile(`^([0-9A-Za-z_-]+(?:\.[0-9A-Za-z_-]+)*)@((?:[0-9A-Za-z_-]+\.)*[0-9A-Za-z_][0-9A-Za-z_-]{0,66})\.([A-Za-z]{2,6}(?:\.[A-Za-z]{2})?)$`)

// NormalizeEmail reports whether s is an acceptable address and returns it
// lower-cased. Rejected input yields "" and false.
func NormalizeEmail(s string) (string, bool) {
	err := validator.Apply(
		validator.LenBetween("email", s, minEmailLength, maxEmailLength),
		validator.MatchesPattern("email", s, emailPattern, "email address"),
	)
	if err != nil {
		return "", false
	}
	return strings.ToLower(s), true
}
