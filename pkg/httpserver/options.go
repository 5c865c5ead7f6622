package httpserver

import "log/slog"

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the lifecycle logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStartHook registers a callback that runs once the listener is open.
func WithStartHook(h func(addr string)) Option {
	return func(s *Server) {
		if h != nil {
			s.startHooks = append(s.startHooks, h)
		}
	}
}

// WithStopHook registers a callback that runs after the server has shut down.
func WithStopHook(h func()) Option {
	return func(s *Server) {
		if h != nil {
			s.stopHooks = append(s.stopHooks, h)
		}
	}
}
