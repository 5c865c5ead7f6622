package rsvp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/outputfield/web/handler"
)

// Service serves the static RSVP page.
type Service struct {
	params       PageParams
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService serves days. A nil errorHandler falls back to the JSON default.
func NewService(days []Day, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	return &Service{
		params:       PageParams{Days: days},
		errorHandler: errorHandler,
	}
}

// Handle mounts GET / on the returned router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	return r
}

func (s *Service) page(handler.Context, struct{}) handler.Response {
	return handler.Templ(Page(s.params))
}
