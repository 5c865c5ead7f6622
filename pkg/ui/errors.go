package ui

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/outputfield/web/handler"
)

// ErrorPage is the full page shown to browsers when a request fails.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	title := strconv.Itoa(p.StatusCode) + " " + http.StatusText(p.StatusCode)

	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.open("main", templ.OrderedAttributes{templ.KV[string, any]("class", "error-page")})
		hw.render(Text(TextProps{Size: H1, Text: title, Align: AlignCenter}))
		hw.render(Text(TextProps{Size: T1, Text: p.Error, Align: AlignCenter}))
		if p.RetryURL != "" {
			hw.render(TextLink(TextLinkProps{
				TextProps: TextProps{Size: T2, Text: "Try again", Align: AlignCenter},
				URL:       p.RetryURL,
			}))
		}
		if p.RequestID != "" {
			hw.render(Text(TextProps{Size: T3, Text: "Request ID: " + p.RequestID, Align: AlignCenter, Color: "gray"}))
		}
		hw.close("main")
		return hw.err
	})

	return Page(PageProps{Title: title}, body)
}

// ErrorToast is the notification patched into the toast container for
// DataStar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		kind := p.Type
		if kind == "" {
			kind = "error"
		}
		hw.open("div", attrs(
			templ.KV[string, any]("class", "toast toast-"+kind),
			templ.KV[string, any]("role", "alert"),
			templ.KV[string, any]("data-request-id", p.RequestID),
		))
		hw.text(p.Message)
		hw.close("div")
		return hw.err
	})
}
