package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/greeter/core/handler"
	"github.com/dmitrymomot/greeter/core/health"
	"github.com/dmitrymomot/greeter/core/locale"
	"github.com/dmitrymomot/greeter/core/logger"
	"github.com/dmitrymomot/greeter/core/response"
	"github.com/dmitrymomot/greeter/middleware"
)

// routes registers the global stages in order and then the routes.
// Config has been validated, so the locale parse cannot fail.
func (a *App) routes() {
	r := a.router
	fallback, _ := locale.Parse(a.config.DefaultLocale)

	var resolver locale.Resolver
	if a.config.LocaleFromRequest {
		resolver = locale.FirstOf(
			locale.FromQuery("lang"),
			locale.FromCookie("lang"),
			locale.FromAcceptLanguage(),
		)
	}

	bodyCfg := middleware.BodyConfig{Limit: a.config.BodyLimit, Logger: a.logger}

	r.Use(
		middleware.RequestID[*Context](),
		middleware.LoggingWithLogger[*Context](a.logger),
		middleware.MetricsWithConfig[*Context](middleware.MetricsConfig{Registerer: a.registry}),
		middleware.CookiesWithSecrets[*Context](a.config.CookieSecrets...),
		middleware.JSONBodyWithConfig[*Context](bodyCfg),
		middleware.FormBodyWithConfig[*Context](bodyCfg),
		middleware.LocaleWithConfig[*Context](middleware.LocaleConfig{
			Resolver: resolver,
			Fallback: fallback,
		}),
	)

	root := r
	if a.config.AuthRequired {
		root = r.With(middleware.AuthenticateWithConfig[*Context](
			middleware.JWTConfig{Service: a.jwt, Logger: a.logger},
			newUser,
		))
	}
	root.Get("/", a.home)

	if a.config.MetricsPath != "" {
		r.Get(a.config.MetricsPath, middleware.MetricsHandler[*Context](a.registry))
	}

	if a.config.HealthRoutes {
		r.Get("/live", health.Liveness[*Context])
		r.Get("/ready", health.Readiness[*Context](a.logger, health.Check{
			Name: "listener",
			Fn:   a.listening,
		}))
	}
}

var errNotListening = errors.New("server is not listening")

func (a *App) listening(context.Context) error {
	if !a.server.Running() {
		return errNotListening
	}
	return nil
}

// home answers with the configured greeting. Locale and user are only
// logged; the body never depends on them.
func (a *App) home(ctx *Context) handler.Response {
	attrs := []slog.Attr{
		logger.Component("home"),
		logger.Locale(ctx.Locale().String()),
	}
	if u, ok := ctx.User(); ok {
		attrs = append(attrs, slog.String("first_name", u.FirstName))
	}
	a.logger.LogAttrs(ctx, slog.LevelDebug, "greeting", attrs...)

	return response.String(a.config.Greeting)
}
