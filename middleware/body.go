package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/greeter/core/handler"
	"github.com/dmitrymomot/greeter/core/logger"
)

// DefaultBodyLimit is the largest body the parsing stages will read.
const DefaultBodyLimit int64 = 100 << 10

var errBodyTooLarge = errors.New("request body exceeds limit")

// BodyKind identifies how a request body was parsed.
type BodyKind int

const (
	BodyNone BodyKind = iota
	BodyJSON
	BodyForm
)

func (k BodyKind) String() string {
	switch k {
	case BodyJSON:
		return "json"
	case BodyForm:
		return "form"
	default:
		return "none"
	}
}

// Body is the parsed request body. The zero value means absent.
type Body struct {
	Kind BodyKind
	// JSON holds the decoded document when Kind is BodyJSON.
	JSON any
	// Form holds the flattened fields when Kind is BodyForm.
	Form map[string]string
}

// Present reports whether a body was parsed.
func (b Body) Present() bool {
	return b.Kind != BodyNone
}

// BodyConfig configures the body parsing middlewares.
type BodyConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Limit caps the number of bytes read (default: DefaultBodyLimit)
	Limit int64
	// Logger receives debug records for bodies that could not be parsed
	// (default: slog.Default())
	Logger *slog.Logger
}

// JSONBody parses application/json (and +json) bodies into the context.
func JSONBody[C BodyContext]() handler.Middleware[C] {
	return JSONBodyWithConfig[C](BodyConfig{})
}

// JSONBodyWithConfig creates the JSON body middleware with custom configuration.
// Empty, invalid or oversized bodies leave the body absent; the request
// always continues.
func JSONBodyWithConfig[C BodyContext](cfg BodyConfig) handler.Middleware[C] {
	return bodyStage[C](cfg, BodyJSON, isJSON, func(raw []byte) (Body, error) {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return Body{}, err
		}
		return Body{Kind: BodyJSON, JSON: v}, nil
	})
}

// FormBody parses application/x-www-form-urlencoded bodies into the context.
func FormBody[C BodyContext]() handler.Middleware[C] {
	return FormBodyWithConfig[C](BodyConfig{})
}

// FormBodyWithConfig creates the form body middleware with custom configuration.
// Repeated keys keep their first value.
func FormBodyWithConfig[C BodyContext](cfg BodyConfig) handler.Middleware[C] {
	return bodyStage[C](cfg, BodyForm, isForm, func(raw []byte) (Body, error) {
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			return Body{}, err
		}
		form := make(map[string]string, len(values))
		for k, vs := range values {
			if len(vs) > 0 {
				form[k] = vs[0]
			}
		}
		return Body{Kind: BodyForm, Form: form}, nil
	})
}

func bodyStage[C BodyContext](
	cfg BodyConfig,
	kind BodyKind,
	match func(mediaType string) bool,
	parse func(raw []byte) (Body, error),
) handler.Middleware[C] {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultBodyLimit
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}
			if ctx.Body().Present() {
				return next(ctx)
			}

			req := ctx.Request()
			if req.Body == nil || req.Body == http.NoBody {
				return next(ctx)
			}
			mediaType, _, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
			if err != nil || !match(mediaType) {
				return next(ctx)
			}

			raw, err := readBody(req, cfg.Limit)
			if err == nil && len(bytes.TrimSpace(raw)) > 0 {
				var b Body
				if b, err = parse(raw); err == nil {
					ctx.SetBody(b)
				}
			}
			if err != nil {
				log := cfg.Logger
				if log == nil {
					log = slog.Default()
				}
				log.DebugContext(ctx, "request body ignored",
					logger.Component("body"),
					slog.String("kind", kind.String()),
					logger.Error(err),
				)
			}

			return next(ctx)
		}
	}
}

// readBody reads at most limit bytes and puts them back in front of the
// unread remainder, so later stages and handlers still see the full body.
func readBody(r *http.Request, limit int64) ([]byte, error) {
	orig := r.Body
	raw, err := io.ReadAll(io.LimitReader(orig, limit+1))
	r.Body = replayBody{Reader: io.MultiReader(bytes.NewReader(raw), orig), Closer: orig}
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > limit {
		return nil, errBodyTooLarge
	}
	return raw, nil
}

type replayBody struct {
	io.Reader
	io.Closer
}

func isJSON(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func isForm(mediaType string) bool {
	return mediaType == "application/x-www-form-urlencoded"
}
