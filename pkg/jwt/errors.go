package jwt

import "errors"

var (
	ErrMissingSigningKey = errors.New("jwt: signing key is required")
	ErrShortSigningKey   = errors.New("jwt: signing key must be at least 32 bytes")
	ErrMissingClaims     = errors.New("jwt: claims are required")
	ErrInvalidToken      = errors.New("jwt: invalid token")
	ErrExpiredToken      = errors.New("jwt: token has expired")
	ErrInvalidSignature  = errors.New("jwt: invalid signature")
)
