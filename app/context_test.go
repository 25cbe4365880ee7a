package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/greeter/core/locale"
	"github.com/dmitrymomot/greeter/middleware"
)

func TestContextDefaults(t *testing.T) {
	t.Parallel()

	ctx := newContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), nil)

	assert.Equal(t, locale.En, ctx.Locale())
	u, ok := ctx.User()
	assert.False(t, ok)
	assert.Nil(t, u)
	assert.NotNil(t, ctx.Cookies())
	assert.NotNil(t, ctx.SignedCookies())
	assert.False(t, ctx.Body().Present())
	_, ok = ctx.Cookie("missing")
	assert.False(t, ok)
}

func TestContextSetters(t *testing.T) {
	t.Parallel()

	ctx := newContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), nil)

	ctx.SetLocale(locale.Fr)
	assert.Equal(t, locale.Fr, ctx.Locale())
	ctx.SetLocale("de")
	assert.Equal(t, locale.Fr, ctx.Locale(), "unsupported locale is ignored")

	ctx.SetUser(&User{FirstName: "Ada"})
	u, ok := ctx.User()
	assert.True(t, ok)
	assert.Equal(t, "Ada", u.FirstName)

	ctx.SetCookies(map[string]string{"a": "1"}, map[string]string{"s": "2"})
	v, ok := ctx.Cookie("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, map[string]string{"s": "2"}, ctx.SignedCookies())

	ctx.SetBody(middleware.Body{Kind: middleware.BodyForm, Form: map[string]string{"k": "v"}})
	assert.Equal(t, "v", ctx.Body().Form["k"])
}
