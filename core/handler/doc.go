// Package handler provides types for HTTP request processing with type-safe
// context handling and middleware support.
//
// Handlers receive an application-defined context and return a Response:
//
//	type Response func(w http.ResponseWriter, r *http.Request) error
//	type HandlerFunc[C Context] func(ctx C) Response
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// A middleware stage has exactly three outcomes, all expressed through its
// return value:
//
//	// continue
//	return next(ctx)
//
//	// short-circuit with a response of its own
//	return response.StringWithStatus("nope", http.StatusTeapot)
//
//	// fail; the router's error handler renders the error
//	return response.Error(err)
//
// The Response returned by the chain is rendered only after every
// middleware has unwound, so middleware may decorate it:
//
//	func Header[C handler.Context](next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//		return func(ctx C) handler.Response {
//			resp := next(ctx)
//			return func(w http.ResponseWriter, r *http.Request) error {
//				w.Header().Set("X-Powered-By", "greeter")
//				return resp(w, r)
//			}
//		}
//	}
package handler
