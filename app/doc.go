// Package app assembles the greeter service: a typed request context, the
// ordered middleware chain (request id, logging, metrics, cookies, JSON and
// form bodies, locale) and the root route, optionally guarded by JWT
// authentication.
//
//	a, err := app.NewFromEnv(app.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	return a.Run(ctx)
package app
