// Package token issues and validates the signed access tokens used to
// authenticate api requests.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired means the token was once valid but its expiry has passed
	ErrExpired = errors.New("token has expired")
	// ErrInvalid means the token is malformed, unsigned or signed with another key
	ErrInvalid = errors.New("token is invalid")
)

// Claims binds a token to a user identity and an expiry
type Claims struct {
	jwt.RegisteredClaims
}

// Issue signs a new access token for the given user id, valid for ttl
func Issue(userId uint64, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userId, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a signed token and returns the user id it carries
func Parse(tokenString string, secret []byte) (uint64, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, ErrExpired
	case err != nil:
		return 0, ErrInvalid
	case !parsed.Valid:
		return 0, ErrInvalid
	}

	userId, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalid
	}
	return userId, nil
}
