package middleware

import (
	"github.com/dmitrymomot/greeter/core/handler"
	"github.com/dmitrymomot/greeter/core/locale"
)

// The interfaces below let a stage write a typed extension only into a
// context type that declares it. Registering, say, Locale on a context
// without SetLocale does not compile.

// LocaleContext is a context with a locale extension.
type LocaleContext interface {
	handler.Context
	SetLocale(l locale.Locale)
}

// CookieContext is a context with parsed cookie maps.
type CookieContext interface {
	handler.Context
	SetCookies(plain, signed map[string]string)
}

// BodyContext is a context with a parsed request body.
type BodyContext interface {
	handler.Context
	Body() Body
	SetBody(b Body)
}

// IdentityContext is a context that can carry an authenticated principal.
type IdentityContext[T any] interface {
	handler.Context
	SetUser(u T)
}
