package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/outputfield/web/pkg/logger"
)

// Server is a single-use HTTP server.
type Server struct {
	cfg        Config
	srv        *http.Server
	log        *slog.Logger
	startHooks []func(addr string)
	stopHooks  []func()

	mu       sync.Mutex
	running  bool
	shutdown sync.Once
}

// New prepares a server for handler. A nil handler answers 404 to everything.
func New(cfg Config, handler http.Handler, opts ...Option) *Server {
	cfg = cfg.withDefaults()
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s := &Server{
		cfg: cfg,
		log: logger.Discard(),
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.srv.ErrorLog = slog.NewLogLogger(s.log.Handler(), slog.LevelWarn)
	return s
}

// Run listens on the configured address and serves until ctx is done or the
// process receives SIGINT/SIGTERM.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an already open listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		_ = ln.Close()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	s.running = true
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ln.Addr().String()
	s.log.Info("http server started", slog.String("addr", addr))
	for _, h := range s.startHooks {
		h(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(ln) }()

	var serveErr error
	select {
	case <-ctx.Done():
		s.log.Info("http server shutting down")
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			s.log.Error("graceful shutdown failed", logger.Error(err))
		}
		serveErr = <-errCh
	case serveErr = <-errCh:
	}

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, serveErr)
	}
	return nil
}

// Shutdown drains in-flight requests within ShutdownTimeout. Repeated calls
// are no-ops.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdown.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()

		err = s.srv.Shutdown(ctx)
		for _, h := range s.stopHooks {
			h()
		}
		s.log.Info("http server stopped")
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
