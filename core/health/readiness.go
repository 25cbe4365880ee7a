package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/greeter/core/handler"
	"github.com/dmitrymomot/greeter/core/logger"
	"github.com/dmitrymomot/greeter/core/response"
)

// Check is a named readiness probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Readiness answers 200 "READY" when every check passes and 503 otherwise.
// Checks run in order and stop at the first failure.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx C) handler.Response {
		for _, c := range checks {
			if err := c.Fn(ctx); err != nil {
				log.WarnContext(ctx, "readiness check failed",
					logger.Component("health"),
					slog.String("check", c.Name),
					logger.Error(err),
				)
				return response.Error(response.ErrServiceUnavailable)
			}
		}
		return response.String("READY")
	}
}
