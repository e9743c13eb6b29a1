// Package logger builds *slog.Logger values with functional options, helper
// attribute constructors and transparent injection of values stored in
// context.Context.
//
// New creates the logger. Options select the output format (text or json),
// the minimum level, static attributes applied to every record, and
// ContextExtractor callbacks that add attributes pulled from the context of
// each record, for example the request id.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and wraps it with LogHandlerDecorator, which runs the
// registered extractors before delegating to the wrapped handler.
//
// Helper constructors such as Error, RequestID and Fields live in attr.go and
// keep attribute naming consistent across the codebase.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, "regform"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "registration accepted", logger.RegistrationID(id))
//
// # Error Handling
//
// Error returns an empty attribute for a nil error, allowing calls like
//
//	log.Info("operation finished", logger.Error(err))
//
// without an additional nil check.
package logger
