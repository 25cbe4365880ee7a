package jwt_test

import (
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/greeter/pkg/jwt"
)

const testKey = "0123456789abcdef0123456789abcdef"

type userClaims struct {
	jwt.StandardClaims
	FirstName string `json:"firstName"`
}

func newService(t *testing.T, opts ...jwt.Option) *jwt.Service {
	t.Helper()
	svc, err := jwt.NewFromString(testKey, opts...)
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := jwt.New(nil)
	require.ErrorIs(t, err, jwt.ErrMissingSigningKey)

	_, err = jwt.NewFromString("short")
	require.ErrorIs(t, err, jwt.ErrShortSigningKey)

	svc, err := jwt.NewFromString(testKey)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	token, err := svc.Generate(userClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   "42",
			ExpiresAt: jwt.NumericDate(time.Now().Add(time.Hour)),
		},
		FirstName: "Ada",
	})
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	var claims userClaims
	require.NoError(t, svc.Parse(token, &claims))
	assert.Equal(t, "Ada", claims.FirstName)
	assert.Equal(t, "42", claims.Subject)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	t.Run("expired", func(t *testing.T) {
		token, err := svc.Generate(userClaims{StandardClaims: jwt.StandardClaims{
			ExpiresAt: jwt.NumericDate(time.Now().Add(-time.Minute)),
		}})
		require.NoError(t, err)

		var claims userClaims
		require.ErrorIs(t, svc.Parse(token, &claims), jwt.ErrExpiredToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := jwt.NewFromString(strings.Repeat("x", 32))
		require.NoError(t, err)
		token, err := other.Generate(userClaims{FirstName: "Eve"})
		require.NoError(t, err)

		var claims userClaims
		require.ErrorIs(t, svc.Parse(token, &claims), jwt.ErrInvalidSignature)
	})

	t.Run("malformed", func(t *testing.T) {
		var claims userClaims
		require.ErrorIs(t, svc.Parse("not.a.token", &claims), jwt.ErrInvalidToken)
		require.ErrorIs(t, svc.Parse("", &claims), jwt.ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, userClaims{FirstName: "Eve"}).
			SignedString(jwtlib.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		var claims userClaims
		require.ErrorIs(t, svc.Parse(token, &claims), jwt.ErrInvalidToken)
	})

	t.Run("nil claims", func(t *testing.T) {
		_, err := svc.Generate(nil)
		require.ErrorIs(t, err, jwt.ErrMissingClaims)
		require.ErrorIs(t, svc.Parse("a.b.c", nil), jwt.ErrMissingClaims)
	})
}

func TestIssuerAndLeeway(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newService(t,
		jwt.WithIssuer("greeter"),
		jwt.WithLeeway(30*time.Second),
		jwt.WithClock(func() time.Time { return now }),
	)

	token, err := svc.Generate(userClaims{StandardClaims: jwt.StandardClaims{
		Issuer:    "greeter",
		ExpiresAt: jwt.NumericDate(now.Add(-10 * time.Second)),
	}})
	require.NoError(t, err)

	var claims userClaims
	require.NoError(t, svc.Parse(token, &claims), "expiry inside leeway")

	foreign, err := svc.Generate(userClaims{StandardClaims: jwt.StandardClaims{Issuer: "other"}})
	require.NoError(t, err)
	require.ErrorIs(t, svc.Parse(foreign, &claims), jwt.ErrInvalidToken)
}
