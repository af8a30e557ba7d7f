// Package auth validates identity tokens minted by the external identity
// provider. The service only consumes identities; it never issues them.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller as asserted by the provider.
type Identity struct {
	ID    string
	Email string
	Name  string
}

var ErrInvalidToken = errors.New("invalid or expired token")

// ParseToken verifies an HS256 token and extracts the identity claims.
func ParseToken(tokenString, secret string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if sub == "" || email == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{ID: sub, Email: email, Name: name}, nil
}
