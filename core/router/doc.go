// Package router provides an HTTP router with typed request contexts and
// middleware composition. Route matching is delegated to go-chi/chi; the
// router adapts handlers that return handler.Response to it and owns error
// handling, panic recovery and the middleware chain.
//
// # Basic Usage
//
//	r := router.New[*router.Context]()
//
//	r.Get("/", func(ctx *router.Context) handler.Response {
//		return response.String("Hello world")
//	})
//
//	r.Get("/users/{id}", func(ctx *router.Context) handler.Response {
//		return response.String(ctx.Param("id"))
//	})
//
//	http.ListenAndServe(":3000", r)
//
// # Custom Contexts
//
// Request-scoped extensions are declared as fields of an application
// context type. The router needs a factory to build it:
//
//	type Context struct {
//		*router.Context
//		locale locale.Locale
//	}
//
//	r := router.New[*Context](
//		router.WithContextFactory(func(w http.ResponseWriter, r *http.Request, p map[string]string) *Context {
//			return &Context{Context: router.NewContext(w, r, p)}
//		}),
//	)
//
// # Middleware
//
// Middleware registered with Use runs for every route of the router, in
// registration order, and must be registered before the first route. With
// and Group add middleware to a subset of routes:
//
//	r.Use(middleware.RequestID[*Context]())
//	r.With(middleware.JWT[*Context](key)).Get("/me", me)
//
// # Errors
//
// Errors returned through response.Error, a nil Response, unmatched paths
// (404), unmatched methods (405 with an Allow header) and recovered panics
// are passed to the error handler. The default handler writes a plain-text
// body with the status reported by the error's StatusCode method, or 500.
package router
