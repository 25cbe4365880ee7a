package middleware_test

import (
	"net/http"

	"github.com/dmitrymomot/greeter/core/locale"
	"github.com/dmitrymomot/greeter/core/router"
	"github.com/dmitrymomot/greeter/middleware"
	"github.com/dmitrymomot/greeter/pkg/jwt"
)

const testSigningKey = "test-signing-key-0123456789abcdef"

type testUser struct {
	jwt.StandardClaims
	FirstName string `json:"firstName"`
}

// testContext declares every extension the middleware package can write.
type testContext struct {
	*router.Context
	locale  locale.Locale
	cookies map[string]string
	signed  map[string]string
	body    middleware.Body
	user    *testUser
}

func newTestContext(w http.ResponseWriter, r *http.Request, params map[string]string) *testContext {
	return &testContext{Context: router.NewContext(w, r, params)}
}

func (c *testContext) Locale() locale.Locale {
	if c.locale == "" {
		return locale.Default
	}
	return c.locale
}

func (c *testContext) SetLocale(l locale.Locale) { c.locale = l }

func (c *testContext) SetCookies(plain, signed map[string]string) {
	c.cookies, c.signed = plain, signed
}

func (c *testContext) Body() middleware.Body     { return c.body }
func (c *testContext) SetBody(b middleware.Body) { c.body = b }
func (c *testContext) SetUser(u *testUser)       { c.user = u }

func newTestRouter() router.Router[*testContext] {
	return router.New[*testContext](router.WithContextFactory(newTestContext))
}
