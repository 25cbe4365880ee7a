package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/greeter/core/handler"
	"github.com/dmitrymomot/greeter/core/locale"
	"github.com/dmitrymomot/greeter/core/response"
	"github.com/dmitrymomot/greeter/middleware"
)

func serveLocale(t *testing.T, mw handler.Middleware[*testContext], prepare func(*http.Request)) locale.Locale {
	t.Helper()

	var got locale.Locale
	r := newTestRouter()
	r.Use(mw)
	r.Get("/", func(ctx *testContext) handler.Response {
		got = ctx.Locale()
		return response.NoContent()
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if prepare != nil {
		prepare(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	return got
}

func TestLocaleDefault(t *testing.T) {
	t.Parallel()

	got := serveLocale(t, middleware.Locale[*testContext](), func(r *http.Request) {
		r.Header.Set("Accept-Language", "fr")
	})
	assert.Equal(t, locale.En, got, "default stage ignores the request")
}

func TestLocaleWithResolver(t *testing.T) {
	t.Parallel()

	mw := middleware.LocaleWithConfig[*testContext](middleware.LocaleConfig{
		Resolver: locale.FirstOf(locale.FromQuery("lang"), locale.FromAcceptLanguage()),
	})

	tests := []struct {
		name   string
		target string
		accept string
		want   locale.Locale
	}{
		{"query wins", "/?lang=es", "fr", locale.Es},
		{"header", "/", "fr-CA,fr;q=0.9", locale.Fr},
		{"chinese", "/", "zh-CN", locale.Ch},
		{"unsupported falls back", "/?lang=de", "ja", locale.En},
		{"nothing", "/", "", locale.En},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := serveLocale(t, mw, func(r *http.Request) {
				r.URL, _ = r.URL.Parse(tt.target)
				if tt.accept != "" {
					r.Header.Set("Accept-Language", tt.accept)
				}
			})
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestLocaleFallback(t *testing.T) {
	t.Parallel()

	got := serveLocale(t, middleware.LocaleWithConfig[*testContext](middleware.LocaleConfig{
		Fallback: locale.Es,
	}), nil)
	assert.Equal(t, locale.Es, got)

	assert.Panics(t, func() {
		middleware.LocaleWithConfig[*testContext](middleware.LocaleConfig{Fallback: "de"})
	})
}

func TestLocaleUnsetReadsDefault(t *testing.T) {
	t.Parallel()

	got := serveLocale(t, middleware.LocaleWithConfig[*testContext](middleware.LocaleConfig{
		Skip: func(handler.Context) bool { return true },
	}), nil)
	assert.Equal(t, locale.Default, got)
}
