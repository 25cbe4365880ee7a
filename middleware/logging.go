package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/greeter/core/handler"
	"github.com/dmitrymomot/greeter/core/locale"
	"github.com/dmitrymomot/greeter/core/logger"
	"github.com/dmitrymomot/greeter/core/router"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Logger receives the records (default: slog.Default())
	Logger *slog.Logger
	// LogLevel is used for successful requests (default: Info)
	LogLevel slog.Level
	// SlowRequestThreshold raises the level to Warn for slow requests (default: 5s)
	SlowRequestThreshold time.Duration
	// Component is attached to every record (default: "http")
	Component string
}

// Logging logs one record per request with the default logger.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger logs one record per request with log.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates the request logging middleware with custom configuration.
// The record is written after the response: 5xx at Error, 4xx at Warn,
// slow requests at Warn, everything else at LogLevel.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				sw := &statusWriter{ResponseWriter: w}
				err := resp(sw, r)
				latency := time.Since(start)

				status := sw.status
				if status == 0 {
					status = http.StatusOK
					if err != nil {
						status = router.StatusCode(err)
					}
				}

				requestID, _ := GetRequestID(ctx)
				attrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.Query(r.URL.RawQuery),
					logger.Status(status),
					logger.Latency(latency),
					logger.RemoteAddr(r.RemoteAddr),
					logger.RequestID(requestID),
					slog.Int("bytes_out", sw.size),
				}
				if lr, ok := any(ctx).(interface{ Locale() locale.Locale }); ok {
					attrs = append(attrs, logger.Locale(lr.Locale().String()))
				}

				level := cfg.LogLevel
				switch {
				case status >= http.StatusInternalServerError:
					level = slog.LevelError
					attrs = append(attrs, logger.Error(err))
				case status >= http.StatusBadRequest:
					level = slog.LevelWarn
				case latency > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					attrs = append(attrs, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(r.Context(), level, "request completed", attrs...)
				return err
			}
		}
	}
}

// statusWriter records the status code written through it.
type statusWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
