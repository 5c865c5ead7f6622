// Package httpserver runs an http.Handler with request timeouts taken from
// the environment and a graceful shutdown on context cancellation, SIGINT or
// SIGTERM.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.New(cfg, router, httpserver.WithLogger(log))
//	if err := srv.Run(ctx); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Liveness and Readiness return the probe handlers mounted under /health.
//
// Run wraps listen errors with ErrStart and Shutdown wraps errors from
// http.Server.Shutdown with ErrShutdown.
package httpserver
