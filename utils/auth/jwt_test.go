package auth

import (
	"testing"
	"time"
)

func testManager() *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret:        "test-secret",
		Expiry:        15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        "edumitra-test",
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testManager()

	token, jti, err := m.GenerateAccessToken(42, "admin@edumitra.in", "admin", 3)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if jti == "" {
		t.Error("expected a non-empty jti")
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if claims.AdminID != 42 {
		t.Errorf("admin id = %d, want 42", claims.AdminID)
	}
	if claims.Email != "admin@edumitra.in" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.TokenType != "access" {
		t.Errorf("token type = %q, want access", claims.TokenType)
	}
	if claims.TokenVersion != 3 {
		t.Errorf("token version = %d, want 3", claims.TokenVersion)
	}
	if claims.ID != jti {
		t.Errorf("claims jti %q does not match returned jti %q", claims.ID, jti)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := testManager()
	token, _, err := m.GenerateAccessToken(1, "admin@edumitra.in", "admin", 0)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	other := NewJWTManager(JWTConfig{
		Secret:        "different-secret",
		Expiry:        15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        "edumitra-test",
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := NewJWTManager(JWTConfig{
		Secret:        "test-secret",
		Expiry:        -time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        "edumitra-test",
	})

	token, _, err := m.GenerateAccessToken(1, "admin@edumitra.in", "admin", 0)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := m.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestRefreshAccessToken(t *testing.T) {
	m := testManager()

	refresh, _, err := m.GenerateRefreshToken(7, "admin@edumitra.in", "admin", 1)
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	access, _, err := m.RefreshAccessToken(refresh, 1)
	if err != nil {
		t.Fatalf("failed to refresh: %v", err)
	}

	claims, err := m.ValidateToken(access)
	if err != nil {
		t.Fatalf("failed to validate refreshed token: %v", err)
	}
	if claims.TokenType != "access" {
		t.Errorf("token type = %q, want access", claims.TokenType)
	}
	if claims.AdminID != 7 {
		t.Errorf("admin id = %d, want 7", claims.AdminID)
	}
}

func TestRefreshAccessTokenRejectsAccessToken(t *testing.T) {
	m := testManager()

	access, _, err := m.GenerateAccessToken(7, "admin@edumitra.in", "admin", 1)
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}

	if _, _, err := m.RefreshAccessToken(access, 1); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
