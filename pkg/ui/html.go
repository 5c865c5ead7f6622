package ui

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter keeps the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// open writes a start tag. Attribute values are escaped by templ.
func (h *htmlWriter) open(tag string, attrs templ.Attributer) {
	h.raw("<" + tag)
	if h.err == nil && attrs != nil {
		h.err = templ.RenderAttributes(h.ctx, h.w, attrs)
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

// attrs keeps the given order and leaves out empty string and URL values.
// Use a *string for an attribute that must be written even when empty.
func attrs(kv ...templ.KeyValue[string, any]) templ.OrderedAttributes {
	out := make(templ.OrderedAttributes, 0, len(kv))
	for _, a := range kv {
		switch v := a.Value.(type) {
		case string:
			if v == "" {
				continue
			}
		case templ.SafeURL:
			if v == "" {
				continue
			}
			a.Value = string(v)
		}
		out = append(out, a)
	}
	return out
}

// positive is nil for n <= 0, which RenderAttributes skips.
func positive(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}

func classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}
