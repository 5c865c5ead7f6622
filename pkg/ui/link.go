package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// TextLinkProps is Text wrapped in a link.
type TextLinkProps struct {
	TextProps
	URL string
}

// TextLink renders <a class="text-link"> around a Text element.
func TextLink(p TextLinkProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.open("a", attrs(
			templ.KV[string, any]("class", "text-link"),
			templ.KV[string, any]("href", templ.URL(p.URL)),
		))
		hw.render(Text(p.TextProps))
		hw.close("a")
		return hw.err
	})
}

// LinkProps configures Link. Children wins over Label when both are set.
type LinkProps struct {
	Href     string
	Target   string
	Class    string
	Label    string
	Children templ.Component
}

const linkClass = "text-lg font-semibold filter drop-shadow-2xl"

// Link is the accent-colored link used across the event pages.
func Link(p LinkProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		var rel string
		if p.Target == "_blank" {
			rel = "noopener noreferrer"
		}
		hw.open("a", attrs(
			templ.KV[string, any]("class", classes(linkClass, p.Class)),
			templ.KV[string, any]("style", "color: rgb(4, 4, 255); text-shadow: 0 0 2px rgba(4, 4, 255, 0.4);"),
			templ.KV[string, any]("href", templ.URL(p.Href)),
			templ.KV[string, any]("target", p.Target),
			templ.KV[string, any]("rel", rel),
		))
		if p.Children != nil {
			hw.render(p.Children)
		} else {
			hw.text(p.Label)
		}
		hw.close("a")
		return hw.err
	})
}
