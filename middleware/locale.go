package middleware

import (
	"github.com/dmitrymomot/greeter/core/handler"
	"github.com/dmitrymomot/greeter/core/locale"
)

// LocaleConfig configures the locale middleware.
type LocaleConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Resolver picks the locale from the request (default: none, so
	// Fallback is always used)
	Resolver locale.Resolver
	// Fallback is used when the resolver has no answer (default: locale.Default)
	Fallback locale.Locale
}

// Locale sets the request locale to locale.Default and continues.
func Locale[C LocaleContext]() handler.Middleware[C] {
	return LocaleWithConfig[C](LocaleConfig{})
}

// LocaleWithConfig creates the locale middleware with custom configuration.
// The stored locale is always one of locale.All().
// Panics if Fallback is set to an unsupported locale.
func LocaleWithConfig[C LocaleContext](cfg LocaleConfig) handler.Middleware[C] {
	if cfg.Fallback == "" {
		cfg.Fallback = locale.Default
	}
	if !cfg.Fallback.Valid() {
		panic("locale middleware: unsupported fallback locale " + string(cfg.Fallback))
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			l := cfg.Fallback
			if cfg.Resolver != nil {
				if resolved, ok := cfg.Resolver(ctx.Request()); ok && resolved.Valid() {
					l = resolved
				}
			}

			ctx.SetLocale(l)
			return next(ctx)
		}
	}
}
