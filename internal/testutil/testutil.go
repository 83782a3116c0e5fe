package testutil

import (
	"time"

	"gutengate/internal/auth"

	"github.com/golang-jwt/jwt/v5"
)

// TestUserID is the subject used in test tokens.
const TestUserID = "60c0b2d700569d97f8a93dcd"

// GenerateTestToken generates a valid JWT token for testing.
func GenerateTestToken(secret, userID string) string {
	token, _ := auth.GenerateToken(secret, userID, time.Hour)
	return token
}

// GenerateExpiredToken generates an expired JWT token for testing.
func GenerateExpiredToken(secret, userID string) string {
	c := auth.Claims{
		Sub: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// AuthHeader formats a token as a bearer Authorization header value.
func AuthHeader(token string) string {
	return "Bearer " + token
}
