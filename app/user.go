package app

import "github.com/dmitrymomot/greeter/pkg/jwt"

// User is the principal decoded from a bearer token.
type User struct {
	jwt.StandardClaims
	FirstName string `json:"firstName"`
}

func newUser() *User {
	return &User{}
}
