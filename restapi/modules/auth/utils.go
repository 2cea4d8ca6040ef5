// Package auth provides authentication and authorization utilities.
//
//revive:disable-next-line:var-naming
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/orgstack/tenant-backend/internal/errs"
)

// ============================================================================
// PASSWORD HASHING
// ============================================================================

// HashPassword generates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// BcryptHasher adapts the bcrypt helpers to the lifecycle manager's
// hash-and-verify capability.
type BcryptHasher struct{}

// Hash generates a bcrypt digest
func (BcryptHasher) Hash(password string) (string, error) {
	return HashPassword(password)
}

// Verify compares a password with a digest
func (BcryptHasher) Verify(password, digest string) bool {
	return CheckPasswordHash(password, digest)
}

// ============================================================================
// JWT TOKEN MANAGEMENT
// ============================================================================

// TokenClaims represents JWT claims binding an administrator to a tenant
type TokenClaims struct {
	Tenant string `json:"tenant"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed, time-bounded tenant tokens.
// The signing key is symmetric, loaded once at startup, never rotated
// during the process lifetime.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenService creates a token service. A non-positive lifetime falls
// back to the one hour default.
func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	if secret == "" {
		panic("JWT secret cannot be empty")
	}
	if lifetime <= 0 {
		lifetime = time.Hour
	}
	return &TokenService{secret: []byte(secret), lifetime: lifetime}
}

// Issue produces a signed token with subject=adminKey and a tenant claim
func (s *TokenService) Issue(adminKey, tenantName string) (string, error) {
	now := time.Now()

	claims := &TokenClaims{
		Tenant: tenantName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "tenant-backend",
			Subject:   adminKey,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Validate parses and verifies a token. Malformed, badly signed, and expired
// tokens all surface as the same ETokenInvalid kind, distinguished only by
// message.
func (s *TokenService) Validate(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, errs.TokenInvalid("invalid token", err)
	}

	if !token.Valid {
		return nil, errs.TokenInvalid("invalid token", nil)
	}

	return claims, nil
}
