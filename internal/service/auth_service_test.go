package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/classforge/classroom-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4, // Minimum cost keeps the tests fast.
	}
}

func signClaims(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestHashAndCheckPassword(t *testing.T) {
	s := NewAuthService(testConfig(), nil)

	hash, err := s.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash equals the plaintext password")
	}

	if err := s.CheckPassword(hash, "hunter22"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}
	if err := s.CheckPassword(hash, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword with wrong password = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateToken(t *testing.T) {
	cfg := testConfig()
	s := NewAuthService(cfg, nil)

	now := time.Now()
	signed := signClaims(t, cfg.JWTSecret, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID:  42,
		IsAdmin: true,
	})

	claims, err := s.ValidateToken(signed)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if !claims.IsAdmin {
		t.Error("IsAdmin = false, want true")
	}
	if claims.ID != "jti-1" {
		t.Errorf("JTI = %q, want %q", claims.ID, "jti-1")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := testConfig()
	s := NewAuthService(cfg, nil)

	signed := signClaims(t, cfg.JWTSecret, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: 1,
	})

	if _, err := s.ValidateToken(signed); err == nil {
		t.Fatal("ValidateToken accepted an expired token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	s := NewAuthService(testConfig(), nil)

	signed := signClaims(t, "other-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: 1,
	})

	if _, err := s.ValidateToken(signed); err == nil {
		t.Fatal("ValidateToken accepted a token signed with the wrong secret")
	}
}

func TestValidateTokenRejectsWrongAlgorithm(t *testing.T) {
	s := NewAuthService(testConfig(), nil)

	// alg=none tokens must never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := s.ValidateToken(signed); err == nil {
		t.Fatal("ValidateToken accepted an unsigned token")
	}
}
