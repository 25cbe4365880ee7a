// Package logger builds slog loggers and provides attribute helpers.
//
// Development loggers render through tint with colour enabled only on a
// terminal; production loggers emit JSON:
//
//	log := logger.New(logger.WithDevelopment("greeter"))
//	log = logger.New(logger.WithProduction("greeter"), logger.WithLevel(slog.LevelWarn))
//
//	log.Info("request handled",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.Status(200),
//		logger.Latency(time.Since(start)),
//	)
//
// Helpers return an empty slog.Attr for nil or empty input, which slog
// drops, so callers never need nil checks.
package logger
