package utils

import (
	"net/http/httptest"
	"testing"

	"studio-booking-server/config"
)

func TestMain(m *testing.M) {
	config.Load()
	m.Run()
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Error("correct password should verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password must not verify")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "Admin", "owner@studio.local")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Role != "Admin" {
		t.Errorf("expected role Admin, got %s", claims.Role)
	}
	if claims.Email != "owner@studio.local" {
		t.Errorf("expected email claim, got %s", claims.Email)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	if _, err := VerifyToken("not-a-jwt"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}

func TestGeneratePasswordTokenIsUnique(t *testing.T) {
	a, err := GeneratePasswordToken()
	if err != nil {
		t.Fatalf("GeneratePasswordToken failed: %v", err)
	}
	b, err := GeneratePasswordToken()
	if err != nil {
		t.Fatalf("GeneratePasswordToken failed: %v", err)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(a))
	}
	if a == b {
		t.Error("two tokens should never collide")
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.5:51234"
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Errorf("expected forwarded address, got %s", got)
	}

	r2 := httptest.NewRequest("GET", "/", nil)
	r2.RemoteAddr = "10.0.0.5:51234"
	if got := ClientIP(r2); got != "10.0.0.5" {
		t.Errorf("expected socket address without port, got %s", got)
	}
}
