// Package cookie parses request cookies and signs or verifies cookie
// values.
//
// Signed values use the form "s:<value>.<signature>" with an unpadded
// base64 HMAC-SHA256 signature, so a value signed here verifies in any
// implementation of the same convention and vice versa:
//
//	http.SetCookie(w, &http.Cookie{Name: "uid", Value: cookie.Sign("42", secret)})
//
//	v, err := cookie.Unsign(raw, []string{newSecret, oldSecret})
package cookie
