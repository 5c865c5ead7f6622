package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Size selects the element and the text-<size> class.
type Size string

const (
	H1 Size = "H1"
	H2 Size = "H2"
	T1 Size = "T1"
	T2 Size = "T2"
	T3 Size = "T3"
)

// Align is the CSS text-align value.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// TextProps configures Text.
type TextProps struct {
	Text  string
	Size  Size
	Align Align
	Color string

	MarginTop    Length
	MarginRight  Length
	MarginBottom Length
	MarginLeft   Length

	// HTML renders Text as sanitized inline markup instead of plain text.
	HTML bool
}

func (p TextProps) tag() string {
	switch p.Size {
	case H1:
		return "h1"
	case H2:
		return "h2"
	default:
		return "p"
	}
}

func (p TextProps) class() string {
	size := p.Size
	if size == "" {
		size = T1
	}
	var newline, markup, paragraph string
	if p.Text == "" {
		newline = "text-newline"
	}
	if p.HTML {
		markup = "text-markup"
	}
	if p.tag() == "p" {
		paragraph = "text-p"
	}
	return classes("text-"+string(size), newline, markup, paragraph)
}

func (p TextProps) style() string {
	align := p.Align
	if align == "" {
		align = AlignLeft
	}
	return inlineStyle(
		declaration{"text-align", string(align)},
		declaration{"color", p.Color},
		declaration{"margin-top", string(p.MarginTop)},
		declaration{"margin-right", string(p.MarginRight)},
		declaration{"margin-bottom", string(p.MarginBottom)},
		declaration{"margin-left", string(p.MarginLeft)},
	)
}

// Text renders a heading for H1 and H2 and a paragraph for the T sizes.
// Empty text still renders the element with the text-newline class so it
// keeps a line of vertical space.
func Text(p TextProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		tag := p.tag()
		hw.open(tag, attrs(
			templ.KV[string, any]("class", p.class()),
			templ.KV[string, any]("style", p.style()),
		))
		if p.HTML {
			hw.raw(SanitizeMarkup(p.Text))
		} else {
			hw.text(p.Text)
		}
		hw.close(tag)
		return hw.err
	})
}
