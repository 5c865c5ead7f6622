package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DataStarScript is the client bundle matching the datastar-go SDK version.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// PageProps configures the document shell.
type PageProps struct {
	Title     string
	BodyClass string
}

// Page wraps body in the site document with the stylesheet, the DataStar
// bundle and the #toast-container used for error toasts.
func Page(p PageProps, body templ.Component) templ.Component {
	title := "Output Field"
	if p.Title != "" {
		title = p.Title + " | Output Field"
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw("<!DOCTYPE html>")
		hw.open("html", templ.OrderedAttributes{templ.KV[string, any]("lang", "en")})
		hw.raw("<head>")
		hw.raw(`<meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw("<title>")
		hw.text(title)
		hw.raw("</title>")
		hw.raw(`<link rel="stylesheet" href="/static/css/site.css">`)
		hw.raw(`<script type="module" src="` + DataStarScript + `"></script>`)
		hw.raw("</head>")
		hw.open("body", attrs(templ.KV[string, any]("class", p.BodyClass)))
		hw.raw(`<div id="toast-container" class="toast-container"></div>`)
		hw.render(body)
		hw.raw("</body></html>")
		return hw.err
	})
}
