// Package locale defines the closed set of request locales (en, es, fr, ch)
// and resolvers that derive one from an incoming request.
//
//	res := locale.FirstOf(
//		locale.FromQuery("lang"),
//		locale.FromCookie("lang"),
//		locale.FromAcceptLanguage(),
//	)
//	l, ok := res(r)
//	if !ok {
//		l = locale.Default
//	}
package locale
