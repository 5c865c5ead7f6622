// Package logger builds log/slog loggers for the site and provides the
// attribute helpers used across packages.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "outputfield-web"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "signup completed", logger.Email(email))
//
// Context extractors run for every handled record, so request-scoped values
// such as the request id appear on every line logged with a request context.
package logger
