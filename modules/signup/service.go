package signup

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/outputfield/web/binder"
	"github.com/outputfield/web/handler"
	"github.com/outputfield/web/pkg/logger"
	"github.com/outputfield/web/pkg/ui"
	"github.com/outputfield/web/pkg/validator"
)

// Subscriber adds an address to the mailing list. Errors that carry a
// provider status implement HTTPStatus() int.
type Subscriber interface {
	Subscribe(ctx context.Context, email string) error
}

// DocumentStore persists sign-up documents.
type DocumentStore interface {
	Create(ctx context.Context, doc Document) error
}

type statusCoder interface {
	HTTPStatus() int
}

// request is the context of one sign-up call. Whether the caller is DataStar
// is decided once, so the binder and the response always agree.
type request struct {
	handler.Context
	dataStar bool
}

func newRequest(w http.ResponseWriter, r *http.Request) request {
	return request{Context: handler.NewContext(w, r), dataStar: handler.IsDataStar(r)}
}

// outcome is a failure response that remembers the error it reports.
type outcome struct {
	handler.Response
	err handler.HTTPError
}

// ResultParams feeds the DataStar result fragment.
type ResultParams struct {
	Email   string
	Message string
	Success bool
}

// Service is the sign-up endpoint.
type Service struct {
	subscriber   Subscriber
	store        DocumentStore
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	resultView   func(ResultParams) templ.Component
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithErrorHandler handles failures that are not sign-up outcomes, such as
// a response that could not be written.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithResultView replaces the fragment rendered into #signup-result.
func WithResultView(v func(ResultParams) templ.Component) Option {
	return func(s *Service) {
		if v != nil {
			s.resultView = v
		}
	}
}

func NewService(subscriber Subscriber, store DocumentStore, opts ...Option) *Service {
	s := &Service{
		subscriber: subscriber,
		store:      store,
		log:        logger.Discard(),
		resultView: defaultResultView,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{})
	}
	return s
}

func defaultResultView(p ResultParams) templ.Component {
	return ui.SignUpResult(ui.SignUpResultProps{Success: p.Success, Message: p.Message})
}

// Handle returns the router for the endpoint. Only POST is routed; every
// other method is answered with ErrOnlyPost.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(s.signup,
		handler.WithContextFactory[request, Request](newRequest),
		handler.WithBinders[request, Request](
			binder.DataStar(),
			binder.JSON(binder.AllowUnknownFields()),
		),
		handler.WithDecorators[request, Request](s.logRejected),
		handler.WithErrorHandler[request, Request](s.handleError),
	))
	r.MethodNotAllowed(s.methodNotAllowed)

	return r
}

func (s *Service) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	s.log.InfoContext(r.Context(), "signup rejected",
		slog.String("method", r.Method),
		logger.StatusCode(ErrOnlyPost.Code),
		logger.Component("signup"),
	)
	s.render(handler.NewContext(w, r), s.failure(handler.IsDataStar(r), ErrOnlyPost))
}

func (s *Service) signup(ctx request, req Request) handler.Response {
	resp, err := s.Signup(ctx, req.Email)
	if err != nil {
		return s.failure(ctx.dataStar, err)
	}
	return s.success(ctx.dataStar, resp)
}

// logRejected logs requests turned away before the mailing list is called.
func (s *Service) logRejected(next handler.HandlerFunc[request, Request]) handler.HandlerFunc[request, Request] {
	return func(ctx request, req Request) handler.Response {
		resp := next(ctx, req)
		if o, ok := resp.(outcome); ok && (o.err == ErrMissingEmail || o.err == ErrInvalidEmail) {
			s.log.InfoContext(ctx, "signup input rejected",
				logger.StatusCode(o.err.Code),
				slog.Bool("is_datastar", ctx.dataStar),
				logger.Component("signup"),
			)
		}
		return resp
	}
}

// Signup runs the sign-up for a decoded email value. The returned error is
// always one of the outcome errors of this package.
func (s *Service) Signup(ctx context.Context, raw any) (Response, error) {
	email, ok := raw.(string)
	if !ok || validator.Apply(validator.RequiredString("email", email)) != nil {
		return Response{}, ErrMissingEmail
	}

	normalized, ok := NormalizeEmail(email)
	if !ok {
		return Response{}, ErrInvalidEmail
	}

	start := time.Now()
	if err := s.subscriber.Subscribe(ctx, normalized); err != nil {
		outcome := subscribeOutcome(err)
		s.log.WarnContext(ctx, "mailing list subscription failed",
			logger.Error(err),
			logger.Email(normalized),
			logger.Provider("mailchimp"),
			logger.StatusCode(outcome.Code),
			logger.Duration(time.Since(start)),
			logger.Component("signup"),
		)
		return Response{}, outcome
	}

	if err := s.store.Create(ctx, NewDocument(normalized)); err != nil {
		s.log.ErrorContext(ctx, "signup document not stored after subscription",
			logger.Error(err),
			logger.Email(normalized),
			logger.Duration(time.Since(start)),
			logger.Component("signup"),
		)
		return Response{}, ErrSubscribeFailed
	}

	s.log.InfoContext(ctx, "signup completed",
		logger.Email(normalized),
		logger.Duration(time.Since(start)),
		logger.Event("signup_completed"),
		logger.Component("signup"),
	)
	return Response{Email: normalized}, nil
}

func subscribeOutcome(err error) handler.HTTPError {
	var sc statusCoder
	if !errors.As(err, &sc) {
		return ErrSubscribeFailed
	}
	switch sc.HTTPStatus() {
	case http.StatusBadRequest:
		return ErrEmailUsed
	case http.StatusForbidden:
		return ErrAuth
	default:
		return ErrSubscribeFailed
	}
}

func (s *Service) success(dataStar bool, resp Response) handler.Response {
	if dataStar {
		return s.fragment(ResultParams{Email: resp.Email, Message: "Thanks for signing up!", Success: true})
	}
	return handler.JSON(resp)
}

func (s *Service) failure(dataStar bool, err error) handler.Response {
	var httpErr handler.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = ErrSubscribeFailed
	}
	if dataStar {
		return outcome{Response: s.fragment(ResultParams{Message: httpErr.Message}), err: httpErr}
	}
	return outcome{Response: handler.JSONError(httpErr), err: httpErr}
}

func (s *Service) fragment(p ResultParams) handler.Response {
	return handler.Templ(s.resultView(p),
		handler.WithTarget("#"+ui.SignUpResultID),
		handler.WithPatchMode(handler.PatchOuter),
	)
}

// handleError turns binding failures into ErrMissingEmail and passes
// anything else to the configured error handler.
func (s *Service) handleError(ctx request, err error) {
	if !isBindError(err) {
		s.errorHandler(ctx, err)
		return
	}
	s.log.InfoContext(ctx, "signup body rejected",
		logger.Error(err),
		logger.StatusCode(ErrMissingEmail.Code),
		logger.Component("signup"),
	)
	s.render(ctx, s.failure(ctx.dataStar, ErrMissingEmail))
}

func (s *Service) render(ctx handler.Context, resp handler.Response) {
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		s.errorHandler(ctx, err)
	}
}

func isBindError(err error) bool {
	for _, target := range []error{
		binder.ErrMissingContentType,
		binder.ErrUnsupportedMediaType,
		binder.ErrFailedToParseJSON,
		binder.ErrFailedToParseSignals,
		binder.ErrRequestEntityTooLarge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
