// Package logger builds slog loggers with functional options, attribute
// helpers with consistent keys, and context extractors that inject
// request-scoped values such as request and form ids into every record.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "cardform"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "card form submitted", logger.Brand("visa"))
//
// Card numbers and security codes must never be logged. Use Masked with a
// value produced by cardvalidator.Mask when a number has to be referenced.
package logger
