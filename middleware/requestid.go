package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/greeter/core/handler"
)

// DefaultRequestIDHeader carries the request id on requests and responses.
const DefaultRequestIDHeader = "X-Request-ID"

// maxIncomingRequestID bounds ids accepted from clients.
const maxIncomingRequestID = 128

type requestIDContextKey struct{}

// RequestIDConfig configures the request id middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// TrustIncoming reuses a well-formed id sent by the client
	TrustIncoming bool
}

// RequestID tags every request with a fresh UUID, stores it in the context
// and echoes it in the X-Request-ID response header.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig creates the request id middleware with custom configuration.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Middleware[C] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultRequestIDHeader
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.NewString()
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			var id string
			if cfg.TrustIncoming {
				id = sanitizeRequestID(ctx.Request().Header.Get(cfg.HeaderName))
			}
			if id == "" {
				id = cfg.Generator()
			}

			ctx.SetValue(requestIDContextKey{}, id)
			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set(cfg.HeaderName, id)
				return resp(w, r)
			}
		}
	}
}

// GetRequestID returns the id assigned by the RequestID middleware.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}

// sanitizeRequestID drops ids that are too long or contain anything but
// visible ASCII, so client input cannot forge log lines.
func sanitizeRequestID(id string) string {
	if id == "" || len(id) > maxIncomingRequestID {
		return ""
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return ""
		}
	}
	return id
}
