package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

// SignedPrefix marks a cookie value as signed.
const SignedPrefix = "s:"

var (
	ErrNotSigned        = errors.New("cookie: value is not signed")
	ErrInvalidSignature = errors.New("cookie: invalid signature")
	ErrNoSecrets        = errors.New("cookie: at least one secret is required")
)

// Sign returns "s:<value>.<signature>" where the signature is the
// unpadded base64 HMAC-SHA256 of value under secret.
func Sign(value, secret string) string {
	return SignedPrefix + value + "." + signature(value, secret)
}

// Unsign verifies a value produced by Sign against each secret in order,
// so old secrets can stay in the list while a new one is rolled out.
// It returns the original value on success.
func Unsign(signed string, secrets []string) (string, error) {
	if len(secrets) == 0 {
		return "", ErrNoSecrets
	}
	if !IsSigned(signed) {
		return "", ErrNotSigned
	}

	body := strings.TrimPrefix(signed, SignedPrefix)
	dot := strings.LastIndexByte(body, '.')
	if dot < 0 {
		return "", ErrInvalidSignature
	}
	value, sig := body[:dot], body[dot+1:]

	for _, secret := range secrets {
		if hmac.Equal([]byte(sig), []byte(signature(value, secret))) {
			return value, nil
		}
	}
	return "", ErrInvalidSignature
}

// IsSigned reports whether v carries the signed prefix.
func IsSigned(v string) bool {
	return strings.HasPrefix(v, SignedPrefix)
}

func signature(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return base64.RawStdEncoding.EncodeToString(mac.Sum(nil))
}
