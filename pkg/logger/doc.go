// Package logger builds structured *slog.Logger values from functional
// options and provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in a LogHandlerDecorator that adds attributes pulled from the
// record's context.Context.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "emailcheck"),
//	    logger.WithLevel(level),
//	    logger.WithAttr(logger.RunID(uuid.NewString())),
//	)
//	log.DebugContext(ctx, "address rejected", logger.Email(addr), logger.Domain(domain))
//
// Addresses are logged through Email, which masks the local part.
//
// # Configuration
//
//   - WithDevelopment / WithProduction / WithEnvironment – presets per environment
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format
//   - WithLevel, WithOutput, WithHandlerOptions – handler tuning
//   - WithAttr – static attributes
//   - WithContextExtractors / WithContextValue – attributes from context
//
// ParseLevel and ParseFormat convert configuration strings into values for
// WithLevel and WithFormat.
//
// The default output is os.Stderr.
package logger
