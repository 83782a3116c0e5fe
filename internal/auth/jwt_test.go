package auth

import (
	"testing"
	"time"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := "test-user-id"

	token, err := GenerateToken(secret, userID, 24*time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token == "" {
		t.Error("Expected token to be generated")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("Expected no error parsing token, got %v", err)
	}
	if claims.Sub != userID {
		t.Errorf("Expected user ID %s, got %s", userID, claims.Sub)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	_, err := ParseToken("test-secret", "invalid.token.here")
	if err == nil {
		t.Error("Expected error for invalid token")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", "test-user-id", time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = ParseToken("other-secret", token)
	if err == nil {
		t.Error("Expected error for wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("test-secret", "test-user-id", -time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = ParseToken("test-secret", token)
	if err == nil {
		t.Error("Expected error for expired token")
	}
}
