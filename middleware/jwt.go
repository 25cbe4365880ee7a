package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/greeter/core/handler"
	"github.com/dmitrymomot/greeter/core/logger"
	"github.com/dmitrymomot/greeter/pkg/jwt"
)

// jwtClaimsContextKey is used as a key for storing JWT claims in request context.
type jwtClaimsContextKey struct{}

// JWTConfig configures the JWT authentication middleware.
type JWTConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Service is the JWT service instance used for token parsing and validation
	Service *jwt.Service
	// TokenExtractor defines how to extract the token from the request (default: Bearer Authorization header)
	TokenExtractor func(ctx handler.Context) string
	// ErrorHandler builds the response for a missing or invalid token (default: Unauthorized)
	ErrorHandler func(ctx handler.Context, err error) handler.Response
	// ClaimsFactory creates a new claims instance for token parsing (default: StandardClaims)
	ClaimsFactory func() jwt.Claims
	// StoreInContext determines whether to store parsed claims in request context
	StoreInContext bool
	// Logger receives the failure reason at debug level (default: slog.Default())
	Logger *slog.Logger
}

// JWT creates a JWT authentication middleware with a signing key.
// It parses standard claims and stores them in the request context.
// Panics if the signing key is invalid.
func JWT[C handler.Context](signingKey string) handler.Middleware[C] {
	service, err := jwt.NewFromString(signingKey)
	if err != nil {
		panic("jwt middleware: " + err.Error())
	}

	return JWTWithConfig[C](JWTConfig{
		Service:        service,
		StoreInContext: true,
	})
}

// JWTWithConfig creates a JWT authentication middleware with custom configuration.
// Requests without a valid token are short-circuited through ErrorHandler
// and never reach the handler.
// Panics if the JWT service is not provided.
func JWTWithConfig[C handler.Context](cfg JWTConfig) handler.Middleware[C] {
	cfg = cfg.withDefaults()

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			claims := cfg.ClaimsFactory()
			if err := cfg.verify(ctx, claims); err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			if cfg.StoreInContext {
				ctx.SetValue(jwtClaimsContextKey{}, claims)
			}
			return next(ctx)
		}
	}
}

// Authenticate validates the bearer token and attaches the decoded claims
// to the typed context through SetUser. newClaims must return a fresh
// pointer for every call.
//
//	r.With(middleware.Authenticate[*app.Context](svc, func() *app.User { return &app.User{} })).Get("/", home)
func Authenticate[C IdentityContext[T], T jwt.Claims](svc *jwt.Service, newClaims func() T) handler.Middleware[C] {
	return AuthenticateWithConfig[C](JWTConfig{Service: svc}, newClaims)
}

// AuthenticateWithConfig is Authenticate with custom configuration.
// cfg.ClaimsFactory is ignored in favour of newClaims.
// Panics if the service or the claims factory is missing.
func AuthenticateWithConfig[C IdentityContext[T], T jwt.Claims](cfg JWTConfig, newClaims func() T) handler.Middleware[C] {
	if newClaims == nil {
		panic("jwt middleware: claims factory is required")
	}
	cfg.ClaimsFactory = func() jwt.Claims { return newClaims() }
	cfg = cfg.withDefaults()

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			user := newClaims()
			if err := cfg.verify(ctx, user); err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			if cfg.StoreInContext {
				ctx.SetValue(jwtClaimsContextKey{}, user)
			}
			ctx.SetUser(user)
			return next(ctx)
		}
	}
}

func (cfg JWTConfig) withDefaults() JWTConfig {
	if cfg.Service == nil {
		panic("jwt middleware: service is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.TokenExtractor == nil {
		cfg.TokenExtractor = JWTFromAuthHeader()
	}
	if cfg.ErrorHandler == nil {
		log := cfg.Logger
		cfg.ErrorHandler = func(ctx handler.Context, err error) handler.Response {
			log.DebugContext(ctx, "authentication failed",
				logger.Component("jwt"),
				logger.Path(ctx.Request().URL.Path),
				logger.Error(err),
			)
			return Unauthorized()
		}
	}
	if cfg.ClaimsFactory == nil {
		cfg.ClaimsFactory = func() jwt.Claims {
			return &jwt.StandardClaims{}
		}
	}
	return cfg
}

func (cfg JWTConfig) verify(ctx handler.Context, claims jwt.Claims) error {
	token := cfg.TokenExtractor(ctx)
	if token == "" {
		return jwt.ErrInvalidToken
	}
	return cfg.Service.Parse(token, claims)
}

// Unauthorized responds 401 with a Bearer challenge and a plain-text body.
// The failure reason is never exposed to the client.
func Unauthorized() handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("WWW-Authenticate", "Bearer")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return nil
	}
}

// GetJWTClaims retrieves JWT claims of the specified type from the request context.
func GetJWTClaims[T any](ctx handler.Context) (T, bool) {
	claims, ok := ctx.Value(jwtClaimsContextKey{}).(T)
	return claims, ok
}

// GetStandardClaims retrieves standard JWT claims from the request context.
func GetStandardClaims(ctx handler.Context) (*jwt.StandardClaims, bool) {
	return GetJWTClaims[*jwt.StandardClaims](ctx)
}

// JWTFromAuthHeader returns an extractor for "Authorization: Bearer <token>".
// The scheme is matched case-insensitively; other schemes yield no token.
func JWTFromAuthHeader() func(handler.Context) string {
	return JWTFromAuthHeaderWithScheme("Bearer")
}

// JWTFromAuthHeaderWithScheme returns an extractor that looks for the token in the Authorization header
// with a custom scheme (e.g., "JWT", "Token").
func JWTFromAuthHeaderWithScheme(scheme string) func(handler.Context) string {
	return func(ctx handler.Context) string {
		auth := ctx.Request().Header.Get("Authorization")
		s, token, ok := strings.Cut(strings.TrimSpace(auth), " ")
		if !ok || !strings.EqualFold(s, scheme) {
			return ""
		}
		return strings.TrimSpace(token)
	}
}

// JWTFromHeader returns an extractor that looks for the token in a custom header.
func JWTFromHeader(headerName string) func(handler.Context) string {
	return func(ctx handler.Context) string {
		return ctx.Request().Header.Get(headerName)
	}
}

// JWTFromQuery returns an extractor that looks for the token in a URL query parameter.
func JWTFromQuery(paramName string) func(handler.Context) string {
	return func(ctx handler.Context) string {
		return ctx.Request().URL.Query().Get(paramName)
	}
}

// JWTFromCookie returns an extractor that looks for the token in an HTTP cookie.
func JWTFromCookie(cookieName string) func(handler.Context) string {
	return func(ctx handler.Context) string {
		c, err := ctx.Request().Cookie(cookieName)
		if err != nil {
			return ""
		}
		return c.Value
	}
}

// JWTFromMultiple returns an extractor that tries multiple extractors in order
// and returns the first non-empty token found.
func JWTFromMultiple(extractors ...func(handler.Context) string) func(handler.Context) string {
	return func(ctx handler.Context) string {
		for _, extractor := range extractors {
			if token := extractor(ctx); token != "" {
				return token
			}
		}
		return ""
	}
}
