package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/greeter/core/handler"
	"github.com/dmitrymomot/greeter/core/response"
	"github.com/dmitrymomot/greeter/middleware"
)

type bodyResult struct {
	body middleware.Body
	raw  string
}

func serveBody(t *testing.T, contentType, payload string, mws ...handler.Middleware[*testContext]) bodyResult {
	t.Helper()

	var res bodyResult
	ran := false
	r := newTestRouter()
	r.Use(mws...)
	r.Post("/", func(ctx *testContext) handler.Response {
		ran = true
		res.body = ctx.Body()
		raw, err := io.ReadAll(ctx.Request().Body)
		require.NoError(t, err)
		res.raw = string(raw)
		return response.NoContent()
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.True(t, ran, "handler must run")
	require.Equal(t, http.StatusNoContent, w.Code)
	return res
}

func bothBodyStages() []handler.Middleware[*testContext] {
	return []handler.Middleware[*testContext]{
		middleware.JSONBody[*testContext](),
		middleware.FormBody[*testContext](),
	}
}

func TestJSONBody(t *testing.T) {
	t.Parallel()

	t.Run("decodes object", func(t *testing.T) {
		res := serveBody(t, "application/json", `{"name":"Ada","age":36}`, bothBodyStages()...)
		require.Equal(t, middleware.BodyJSON, res.body.Kind)
		assert.Equal(t, map[string]any{"name": "Ada", "age": float64(36)}, res.body.JSON)
		assert.Equal(t, `{"name":"Ada","age":36}`, res.raw, "body stays readable")
	})

	t.Run("accepts charset and +json", func(t *testing.T) {
		res := serveBody(t, "application/json; charset=utf-8", `[1,2]`, bothBodyStages()...)
		assert.Equal(t, []any{float64(1), float64(2)}, res.body.JSON)

		res = serveBody(t, "application/problem+json", `{"title":"x"}`, bothBodyStages()...)
		assert.Equal(t, middleware.BodyJSON, res.body.Kind)
	})

	t.Run("invalid json leaves body absent", func(t *testing.T) {
		res := serveBody(t, "application/json", `{"name":`, bothBodyStages()...)
		assert.False(t, res.body.Present())
		assert.Equal(t, `{"name":`, res.raw)
	})

	t.Run("empty body leaves body absent", func(t *testing.T) {
		res := serveBody(t, "application/json", "", bothBodyStages()...)
		assert.False(t, res.body.Present())
	})

	t.Run("oversized body leaves body absent but readable", func(t *testing.T) {
		payload := `{"v":"` + strings.Repeat("x", 64) + `"}`
		res := serveBody(t, "application/json", payload,
			middleware.JSONBodyWithConfig[*testContext](middleware.BodyConfig{Limit: 16}))
		assert.False(t, res.body.Present())
		assert.Equal(t, payload, res.raw)
	})
}

func TestFormBody(t *testing.T) {
	t.Parallel()

	t.Run("flattens fields", func(t *testing.T) {
		res := serveBody(t, "application/x-www-form-urlencoded", "name=Ada&lang=en&lang=fr", bothBodyStages()...)
		require.Equal(t, middleware.BodyForm, res.body.Kind)
		assert.Equal(t, map[string]string{"name": "Ada", "lang": "en"}, res.body.Form)
		assert.Nil(t, res.body.JSON)
	})

	t.Run("invalid encoding leaves body absent", func(t *testing.T) {
		res := serveBody(t, "application/x-www-form-urlencoded", "a=%zz", bothBodyStages()...)
		assert.False(t, res.body.Present())
	})
}

func TestBodyOtherContentTypes(t *testing.T) {
	t.Parallel()

	for _, ct := range []string{"", "text/plain", "multipart/form-data; boundary=x", "not a media type;;"} {
		t.Run(ct, func(t *testing.T) {
			res := serveBody(t, ct, `{"a":1}`, bothBodyStages()...)
			assert.False(t, res.body.Present())
			assert.Equal(t, `{"a":1}`, res.raw)
		})
	}
}

func TestBodyKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", middleware.BodyNone.String())
	assert.Equal(t, "json", middleware.BodyJSON.String())
	assert.Equal(t, "form", middleware.BodyForm.String())
}
