// Package middleware provides the request pipeline stages: cookie and body
// parsing, locale assignment, JWT authentication, request ids, logging and
// Prometheus metrics.
//
// Every stage is a handler.Middleware[C]. A stage continues by returning
// next(ctx) and short-circuits by returning any other response, so a
// stage that forgets to continue simply answers the request itself.
//
// Configurable stages come in two forms, X[C]() with defaults and
// XWithConfig[C](cfg), and every config has a Skip func.
//
// Stages that write typed request data require a context that declares it:
//
//	type Context struct {
//		*router.Context
//		locale locale.Locale
//	}
//
//	func (c *Context) SetLocale(l locale.Locale) { c.locale = l }
//
//	r := router.New[*Context](router.WithContextFactory(newContext))
//	r.Use(
//		middleware.RequestID[*Context](),
//		middleware.Logging[*Context](),
//		middleware.Locale[*Context](), // requires SetLocale
//	)
//
// Authenticate attaches decoded JWT claims through SetUser and answers
// 401 with a Bearer challenge when the token is missing or invalid:
//
//	r.With(middleware.Authenticate[*Context](svc, func() *User { return &User{} })).
//		Get("/", home)
package middleware
