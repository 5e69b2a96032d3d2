// token.go

package main

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var ErrInvalidToken = errors.New("invalid token")

type JWTClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// TokenService signs and verifies the identity tokens handed out by the
// user upsert flow. Stateless: just a shared secret and an expiry window.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, ttl: time.Hour}
}

func (t *TokenService) Issue(email string) (string, error) {
	claims := JWTClaims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(t.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify returns the email encoded in the token, or ErrInvalidToken for
// anything malformed, tampered with, or expired.
func (t *TokenService) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}
