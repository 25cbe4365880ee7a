package locale

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the supported request locales.
type Locale string

const (
	En Locale = "en"
	Es Locale = "es"
	Fr Locale = "fr"
	Ch Locale = "ch"

	// Default is used whenever no other locale has been resolved.
	Default = En
)

// ErrUnsupported is returned by Parse for values outside the supported set.
var ErrUnsupported = errors.New("unsupported locale")

var supported = []Locale{En, Es, Fr, Ch}

// Matcher tags, index-aligned with supported. Ch negotiates as Chinese.
var (
	tags    = []language.Tag{language.English, language.Spanish, language.French, language.Chinese}
	matcher = language.NewMatcher(tags)
)

// All returns the supported locales in preference order.
func All() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Valid reports whether l is a supported locale.
func (l Locale) Valid() bool {
	for _, s := range supported {
		if l == s {
			return true
		}
	}
	return false
}

func (l Locale) String() string {
	return string(l)
}

// Tag returns the BCP 47 tag used for negotiation.
func (l Locale) Tag() language.Tag {
	for i, s := range supported {
		if l == s {
			return tags[i]
		}
	}
	return language.English
}

// Parse converts a locale code into a Locale.
// Besides the exact codes it accepts regional variants ("es-MX", "fr_CA")
// and the Chinese tags ("zh", "zh-Hans").
func Parse(s string) (Locale, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", ErrUnsupported
	}
	if l := Locale(s); l.Valid() {
		return l, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", ErrUnsupported
	}
	base, _ := tag.Base()
	for i, t := range tags {
		if b, _ := t.Base(); b == base {
			return supported[i], nil
		}
	}
	return "", ErrUnsupported
}

// Match negotiates an Accept-Language header value against the supported
// locales. Returns false when the header is empty, malformed, or nothing
// in it is close enough to a supported locale.
func Match(acceptLanguage string) (Locale, bool) {
	if strings.TrimSpace(acceptLanguage) == "" {
		return "", false
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return "", false
	}
	return supported[idx], true
}

// Resolver picks a locale for a request. ok is false when it has no opinion.
type Resolver func(r *http.Request) (l Locale, ok bool)

// FromAcceptLanguage resolves the locale from the Accept-Language header.
func FromAcceptLanguage() Resolver {
	return func(r *http.Request) (Locale, bool) {
		return Match(r.Header.Get("Accept-Language"))
	}
}

// FromCookie resolves the locale from the named cookie.
func FromCookie(name string) Resolver {
	return func(r *http.Request) (Locale, bool) {
		c, err := r.Cookie(name)
		if err != nil {
			return "", false
		}
		l, err := Parse(c.Value)
		return l, err == nil
	}
}

// FromQuery resolves the locale from the named query parameter.
func FromQuery(param string) Resolver {
	return func(r *http.Request) (Locale, bool) {
		l, err := Parse(r.URL.Query().Get(param))
		return l, err == nil
	}
}

// Fixed always resolves to l.
func Fixed(l Locale) Resolver {
	return func(*http.Request) (Locale, bool) {
		return l, l.Valid()
	}
}

// FirstOf tries resolvers in order and returns the first answer.
func FirstOf(resolvers ...Resolver) Resolver {
	return func(r *http.Request) (Locale, bool) {
		for _, res := range resolvers {
			if res == nil {
				continue
			}
			if l, ok := res(r); ok && l.Valid() {
				return l, true
			}
		}
		return "", false
	}
}
