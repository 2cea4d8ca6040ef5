package auth

import (
	"testing"
	"time"

	"github.com/orgstack/tenant-backend/internal/errs"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "secret" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("secret", hash) {
		t.Error("correct password should verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password should not verify")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("admin-1", "acme")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if claims.Subject != "admin-1" {
		t.Errorf("Subject = %q, want admin-1", claims.Subject)
	}
	if claims.Tenant != "acme" {
		t.Errorf("Tenant = %q, want acme", claims.Tenant)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("expected issued-at and expiry claims")
	}
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != time.Hour {
		t.Errorf("token lifetime = %v, want 1h", lifetime)
	}
}

func TestExpiredTokenIsInvalid(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue("admin-1", "acme")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	_, err = svc.Validate(token)
	if errs.ErrorCode(err) != errs.ETokenInvalid {
		t.Errorf("expired token: code = %q, want %q", errs.ErrorCode(err), errs.ETokenInvalid)
	}
}

func TestTamperedTokenIsInvalid(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	validator := NewTokenService("secret-two", time.Hour)

	token, err := issuer.Issue("admin-1", "acme")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	_, err = validator.Validate(token)
	if errs.ErrorCode(err) != errs.ETokenInvalid {
		t.Errorf("wrong key: code = %q, want %q", errs.ErrorCode(err), errs.ETokenInvalid)
	}
}

func TestMalformedTokenIsInvalid(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Validate(token); errs.ErrorCode(err) != errs.ETokenInvalid {
			t.Errorf("Validate(%q): code = %q, want %q", token, errs.ErrorCode(err), errs.ETokenInvalid)
		}
	}
}

func TestDefaultLifetime(t *testing.T) {
	svc := NewTokenService("test-secret", 0)

	token, err := svc.Issue("admin-1", "acme")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time); lifetime != time.Hour {
		t.Errorf("default lifetime = %v, want 1h", lifetime)
	}
}
