// Package response provides handler.Response constructors for plain text,
// JSON, bare status codes and errors.
//
//	r.Get("/", func(ctx *app.Context) handler.Response {
//		return response.String("Hello world")
//	})
//
// Errors are returned as responses too; the router's error handler renders
// them using the status reported by HTTPError.StatusCode:
//
//	return response.Error(response.ErrForbidden.WithMessage("admins only"))
package response
