package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/greeter/core/cookie"
)

func TestSignUnsign(t *testing.T) {
	t.Parallel()

	signed := cookie.Sign("hello", "secret")
	assert.True(t, cookie.IsSigned(signed))
	assert.NotContains(t, signed, "=")

	v, err := cookie.Unsign(signed, []string{"secret"})
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	t.Run("rotated secret", func(t *testing.T) {
		v, err := cookie.Unsign(signed, []string{"new", "secret"})
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("value containing dots", func(t *testing.T) {
		v, err := cookie.Unsign(cookie.Sign("a.b.c", "k"), []string{"k"})
		require.NoError(t, err)
		assert.Equal(t, "a.b.c", v)
	})

	t.Run("tampered", func(t *testing.T) {
		_, err := cookie.Unsign(signed+"x", []string{"secret"})
		require.ErrorIs(t, err, cookie.ErrInvalidSignature)
		_, err = cookie.Unsign("s:nodot", []string{"secret"})
		require.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("not signed", func(t *testing.T) {
		_, err := cookie.Unsign("plain", []string{"secret"})
		require.ErrorIs(t, err, cookie.ErrNotSigned)
	})

	t.Run("no secrets", func(t *testing.T) {
		_, err := cookie.Unsign(signed, nil)
		require.ErrorIs(t, err, cookie.ErrNoSecrets)
	})
}

func TestSignKnownValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "s:hello.DGDUkGlIkCzPz+C0B064FNgHdEjox7ch8tOBGslZ5QI", cookie.Sign("hello", "tobiiscool"))
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers []string
		want    map[string]string
	}{
		{"none", nil, map[string]string{}},
		{"single", []string{"a=1"}, map[string]string{"a": "1"}},
		{"multiple pairs", []string{"a=1; b=two"}, map[string]string{"a": "1", "b": "two"}},
		{"first duplicate wins", []string{"a=1; a=2"}, map[string]string{"a": "1"}},
		{"across headers", []string{"a=1", "b=2; a=3"}, map[string]string{"a": "1", "b": "2"}},
		{"percent decoded", []string{"name=J%C3%BCrgen"}, map[string]string{"name": "Jürgen"}},
		{"bad escape kept raw", []string{"v=100%"}, map[string]string{"v": "100%"}},
		{"quoted", []string{`q="x"`}, map[string]string{"q": "x"}},
		{"trailing semicolon", []string{"a=1;"}, map[string]string{"a": "1"}},
		{"segment without value skipped", []string{"a=1; flag; b=2"}, map[string]string{"a": "1", "b": "2"}},
		{"no pairs", []string{"garbage"}, map[string]string{}},
		{"invalid name", []string{"a=1; b c=2"}, map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			for _, h := range tt.headers {
				r.Header.Add("Cookie", h)
			}
			got := cookie.Parse(r)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
