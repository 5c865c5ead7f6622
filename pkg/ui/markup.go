package ui

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var inlineTags = map[atom.Atom]bool{
	atom.A:      true,
	atom.B:      true,
	atom.Br:     true,
	atom.Code:   true,
	atom.Em:     true,
	atom.I:      true,
	atom.Small:  true,
	atom.Span:   true,
	atom.Strong: true,
	atom.Sub:    true,
	atom.Sup:    true,
	atom.U:      true,
}

var linkSchemes = []string{"http://", "https://", "mailto:"}

// SanitizeMarkup keeps the inline tags of s and escapes everything else.
// Attributes are dropped except href on <a> with an http, https or mailto
// target. The result is safe to write unescaped.
func SanitizeMarkup(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				b.WriteString(html.EscapeString(string(z.Raw())))
			}
			return b.String()
		}

		tok := z.Token()
		switch tt {
		case html.TextToken:
			b.WriteString(html.EscapeString(tok.Data))
		case html.StartTagToken, html.SelfClosingTagToken:
			if !inlineTags[tok.DataAtom] {
				b.WriteString(html.EscapeString(tok.String()))
				continue
			}
			b.WriteString("<" + tok.DataAtom.String())
			if href, ok := safeHref(tok); ok {
				b.WriteString(` href="` + html.EscapeString(href) + `" rel="noopener noreferrer"`)
			}
			b.WriteString(">")
		case html.EndTagToken:
			if !inlineTags[tok.DataAtom] {
				b.WriteString(html.EscapeString(tok.String()))
				continue
			}
			if tok.DataAtom != atom.Br {
				b.WriteString("</" + tok.DataAtom.String() + ">")
			}
		}
	}
}

func safeHref(tok html.Token) (string, bool) {
	if tok.DataAtom != atom.A {
		return "", false
	}
	for _, a := range tok.Attr {
		if a.Namespace != "" || a.Key != "href" {
			continue
		}
		href := strings.TrimSpace(a.Val)
		lower := strings.ToLower(href)
		for _, scheme := range linkSchemes {
			if strings.HasPrefix(lower, scheme) {
				return href, true
			}
		}
	}
	return "", false
}
