package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenExpired reports whether a backend-issued JWT has already expired.
// The gateway does not hold the signing secret, so the token is decoded
// without verification; the backend remains the authority on validity and
// rejects tampered tokens on every authenticated call.
func TokenExpired(tokenString string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return true
	}
	exp, ok := claims["exp"]
	if !ok {
		return false
	}
	switch v := exp.(type) {
	case float64:
		return time.Now().Unix() >= int64(v)
	case int64:
		return time.Now().Unix() >= v
	default:
		return true
	}
}

// TokenSubject extracts the subject claim from a backend-issued JWT without
// verifying the signature.
func TokenSubject(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token has no subject claim")
	}
	return sub, nil
}
