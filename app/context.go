package app

import (
	"net/http"

	"github.com/dmitrymomot/greeter/core/locale"
	"github.com/dmitrymomot/greeter/core/router"
	"github.com/dmitrymomot/greeter/middleware"
)

// Context is the request context of the application. Every request-scoped
// extension is declared here; middleware can only write the fields whose
// setters exist.
type Context struct {
	*router.Context

	locale        locale.Locale
	user          *User
	cookies       map[string]string
	signedCookies map[string]string
	body          middleware.Body
}

func newContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{Context: router.NewContext(w, r, params)}
}

// Locale returns the request locale, or locale.Default if none was assigned.
func (c *Context) Locale() locale.Locale {
	if !c.locale.Valid() {
		return locale.Default
	}
	return c.locale
}

// SetLocale stores the request locale. Unsupported values are ignored.
func (c *Context) SetLocale(l locale.Locale) {
	if l.Valid() {
		c.locale = l
	}
}

// User returns the authenticated user, if any.
func (c *Context) User() (*User, bool) {
	return c.user, c.user != nil
}

// SetUser attaches the authenticated user.
func (c *Context) SetUser(u *User) {
	c.user = u
}

// Cookies returns the plain cookies of the request.
func (c *Context) Cookies() map[string]string {
	if c.cookies == nil {
		return map[string]string{}
	}
	return c.cookies
}

// Cookie returns a single plain cookie value.
func (c *Context) Cookie(name string) (string, bool) {
	v, ok := c.cookies[name]
	return v, ok
}

// SignedCookies returns the cookies whose signature verified.
func (c *Context) SignedCookies() map[string]string {
	if c.signedCookies == nil {
		return map[string]string{}
	}
	return c.signedCookies
}

func (c *Context) SetCookies(plain, signed map[string]string) {
	c.cookies, c.signedCookies = plain, signed
}

// Body returns the parsed request body; check Present before use.
func (c *Context) Body() middleware.Body {
	return c.body
}

func (c *Context) SetBody(b middleware.Body) {
	c.body = b
}
