package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/selim/coursereg/internal/app/models"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		SessionTokenExp: exp,
		TokenIssuer:     "coursereg-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.GenerateToken(&models.Student{ID: "1001", Name: "Alice"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.StudentID != "1001" || claims.Name != "Alice" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, err := svc.GenerateToken(&models.Student{ID: "1001", Name: "Alice"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("got %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := newTestJWTService(time.Hour).GenerateToken(&models.Student{ID: "1001", Name: "Alice"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", SessionTokenExp: time.Hour, TokenIssuer: "coursereg-test"})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret validated")
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("empty header: got %v, want ErrInvalidFormat", err)
	}

	token, err := ExtractBearerToken("Bearer abc123")
	if err != nil || token != "abc123" {
		t.Errorf("got (%q, %v), want (abc123, nil)", token, err)
	}

	// A bare token without the prefix is accepted as-is.
	token, err = ExtractBearerToken("abc123")
	if err != nil || token != "abc123" {
		t.Errorf("got (%q, %v), want (abc123, nil)", token, err)
	}
}
