package middleware

import (
	"github.com/dmitrymomot/greeter/core/cookie"
	"github.com/dmitrymomot/greeter/core/handler"
)

// CookiesConfig configures the cookie parsing middleware.
type CookiesConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Secrets verify signed cookies, newest first. Without secrets every
	// cookie is treated as plain.
	Secrets []string
}

// Cookies parses the Cookie headers into the context's cookie map.
// A malformed header yields an empty map and the request continues.
func Cookies[C CookieContext]() handler.Middleware[C] {
	return CookiesWithConfig[C](CookiesConfig{})
}

// CookiesWithSecrets is Cookies with signed-cookie verification.
func CookiesWithSecrets[C CookieContext](secrets ...string) handler.Middleware[C] {
	return CookiesWithConfig[C](CookiesConfig{Secrets: secrets})
}

// CookiesWithConfig creates the cookie middleware with custom configuration.
// Values of the form "s:<value>.<signature>" that verify against one of
// the secrets move to the signed map; ones that fail verification are
// dropped from both maps.
func CookiesWithConfig[C CookieContext](cfg CookiesConfig) handler.Middleware[C] {
	secrets := make([]string, 0, len(cfg.Secrets))
	for _, s := range cfg.Secrets {
		if s != "" {
			secrets = append(secrets, s)
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			plain := cookie.Parse(ctx.Request())
			signed := make(map[string]string)

			if len(secrets) > 0 {
				for name, v := range plain {
					if !cookie.IsSigned(v) {
						continue
					}
					delete(plain, name)
					if value, err := cookie.Unsign(v, secrets); err == nil {
						signed[name] = value
					}
				}
			}

			ctx.SetCookies(plain, signed)
			return next(ctx)
		}
	}
}
