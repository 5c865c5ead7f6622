package ui

import (
	"strconv"
	"strings"
)

// Length is a CSS length. The zero value leaves the property unset.
type Length string

// Px is a length in pixels.
func Px(n int) Length {
	return Length(strconv.Itoa(n) + "px")
}

// Len passes a raw CSS length such as "1rem" or "auto".
func Len(s string) Length {
	return Length(s)
}

type declaration struct {
	property string
	value    string
}

// inlineStyle joins the declarations with a usable value. Values that could
// break out of the declaration are dropped.
func inlineStyle(decls ...declaration) string {
	var b strings.Builder
	for _, d := range decls {
		if d.value == "" || !safeCSSValue(d.value) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.property)
		b.WriteString(": ")
		b.WriteString(d.value)
		b.WriteByte(';')
	}
	return b.String()
}

func safeCSSValue(v string) bool {
	if strings.ContainsAny(v, ";{}<>\"'\\") {
		return false
	}
	lower := strings.ToLower(v)
	return !strings.Contains(lower, "url(") && !strings.Contains(lower, "expression(")
}
