package logger

import (
	"context"
	"log/slog"
)

// contextHandler adds request-scoped attributes taken from the context to
// every record it handles. An extracted key the record already carries is
// not added again, so an explicit logger.RequestID wins over the extractor.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next with the given extractors. Nil extractors are
// dropped; with none left, next is returned as is.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	h := &contextHandler{next: next}
	for _, ex := range extractors {
		if ex != nil {
			h.extractors = append(h.extractors, ex)
		}
	}
	if len(h.extractors) == 0 {
		return next
	}
	return h
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	var extra []slog.Attr
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok && !hasAttr(rec, attr.Key) {
			extra = append(extra, attr)
		}
	}
	if len(extra) > 0 {
		rec = rec.Clone()
		rec.AddAttrs(extra...)
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}

func hasAttr(rec slog.Record, key string) bool {
	found := false
	rec.Attrs(func(a slog.Attr) bool {
		found = a.Key == key
		return !found
	})
	return found
}
