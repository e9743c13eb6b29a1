// Package httpserver runs an http.Handler with graceful shutdown, configurable
// timeouts and slog lifecycle logging.
//
// Run binds the listener first, then runs the start hooks, then serves until
// the context is cancelled, an interrupt/TERM signal arrives or Shutdown is
// called. Shutdown drains in-flight requests within the shutdown timeout and
// runs the stop hooks. Startup and shutdown failures wrap ErrStart and
// ErrShutdown.
//
// Config carries the same settings as environment variables (HTTP_ADDR,
// HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT,
// HTTP_SHUTDOWN_TIMEOUT) so it can be embedded in an application config and
// passed to NewFromConfig.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
