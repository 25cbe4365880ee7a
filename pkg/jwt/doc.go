// Package jwt issues and verifies HS256 JSON Web Tokens on top of
// github.com/golang-jwt/jwt/v5.
//
// Signing keys must be at least 32 bytes. Only HS256 is accepted when
// parsing, so tokens signed with another algorithm (including "none") are
// rejected as invalid.
//
//	svc, err := jwt.NewFromString(os.Getenv("JWT_SIGNING_KEY"))
//	if err != nil {
//		return err
//	}
//
//	type UserClaims struct {
//		jwt.StandardClaims
//		FirstName string `json:"firstName"`
//	}
//
//	token, err := svc.Generate(UserClaims{
//		StandardClaims: jwt.StandardClaims{
//			Subject:   "42",
//			ExpiresAt: jwt.NumericDate(time.Now().Add(time.Hour)),
//		},
//		FirstName: "Ada",
//	})
//
//	var claims UserClaims
//	if err := svc.Parse(token, &claims); err != nil {
//		switch {
//		case errors.Is(err, jwt.ErrExpiredToken):
//		case errors.Is(err, jwt.ErrInvalidSignature):
//		}
//	}
package jwt
