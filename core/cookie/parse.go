package cookie

import (
	"net/http"
	"net/url"
	"strings"
)

// Parse reads every Cookie header of r into a name/value map.
// Segments without "=" (including the empty one after a trailing ";") are
// skipped. The first occurrence of a name wins. Values are percent-decoded
// when they decode cleanly and kept raw otherwise. If any pair is malformed
// the result is an empty, non-nil map.
func Parse(r *http.Request) map[string]string {
	out := make(map[string]string)
	for _, line := range r.Header.Values("Cookie") {
		for _, part := range strings.Split(line, ";") {
			part = strings.TrimSpace(part)
			if !strings.Contains(part, "=") {
				continue
			}
			cookies, err := http.ParseCookie(part)
			if err != nil {
				return map[string]string{}
			}
			for _, c := range cookies {
				if _, seen := out[c.Name]; seen {
					continue
				}
				out[c.Name] = decode(c.Value)
			}
		}
	}
	return out
}

func decode(v string) string {
	if d, err := url.PathUnescape(v); err == nil {
		return d
	}
	return v
}
