package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/outputfield/web/handler"
	"github.com/outputfield/web/pkg/httpserver"
	"github.com/outputfield/web/pkg/logger"
	"github.com/outputfield/web/pkg/requestid"
)

type routerDeps struct {
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	signup       http.Handler
	rsvp         http.Handler
	staticDir    string
	corsOrigins  []string
	readiness    []httpserver.Check
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		requestid.Middleware,
		accessLog(d.log),
		middleware.Recoverer,
	)
	r.NotFound(handler.NotFound(d.errorHandler))

	r.Get("/", handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Redirect("/rsvp")
	}))
	r.Mount("/rsvp", d.rsvp)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.corsOrigins,
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "Datastar-Request", requestid.Header},
			ExposedHeaders: []string{requestid.Header},
			MaxAge:         300,
		}))
		r.Mount("/signup", d.signup)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(d.staticDir))))

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(d.log, d.readiness...))

	return r
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.StatusCode(status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
