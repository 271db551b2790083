// Package logger builds the service's *slog.Logger and keeps attribute names
// consistent across packages.
//
// New wraps a text or JSON slog handler with LogHandlerDecorator, which runs
// registered ContextExtractor callbacks on every record. The request id
// middleware contributes one, so every log line written while serving a
// request carries its request_id.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Parse(cfg.AppEnv), cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "subscription created",
//		logger.UserID(userID),
//		logger.ToolID(toolID),
//		logger.EventID(evt.ID),
//	)
package logger
