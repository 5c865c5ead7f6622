package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ImageProps configures Image. Zero dimensions are omitted.
type ImageProps struct {
	Src    string
	Alt    string
	Width  int
	Height int
	Class  string
}

// Image renders a lazily loaded <img>. Alt is always written, empty for
// decorative images.
func Image(p ImageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		src := string(templ.URL(p.Src))
		hw.open("img", attrs(
			templ.KV[string, any]("src", &src),
			templ.KV[string, any]("alt", &p.Alt),
			templ.KV[string, any]("width", positive(p.Width)),
			templ.KV[string, any]("height", positive(p.Height)),
			templ.KV[string, any]("class", p.Class),
			templ.KV[string, any]("loading", "lazy"),
		))
		return hw.err
	})
}
