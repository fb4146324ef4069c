package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret-0123456789", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := m.Generate("ops")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		claims, err := m.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.Subject != "ops" {
			t.Errorf("Subject = %q, want ops", claims.Subject)
		}
	})

	t.Run("empty subject", func(t *testing.T) {
		if _, err := m.Generate("  "); !errors.Is(err, ErrMissingSubject) {
			t.Errorf("expected ErrMissingSubject, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewJWTManager("another-secret-0123", time.Hour).Generate("ops")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		token, err := NewJWTManager("test-secret-0123456789", -time.Minute).Generate("ops")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "ops",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("failed to build token: %v", err)
		}
		if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "", wantErr: ErrMissingToken},
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "Basic abc", wantErr: ErrInvalidToken},
		{header: "Bearer", wantErr: ErrInvalidToken},
		{header: "Bearer ", wantErr: ErrInvalidToken},
	}
	for _, tt := range tests {
		got, err := BearerToken(tt.header)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("BearerToken(%q) error = %v, want %v", tt.header, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("BearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
