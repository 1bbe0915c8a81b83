package helper

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	h := NewTokenHelper("s3cret", time.Hour)

	token, err := h.GenerateToken("u1@x.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := h.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != "u1@x.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Errorf("lifetime = %v, want 1h", got)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	h := NewTokenHelper("s3cret", time.Hour)
	good, err := h.GenerateToken("u1@x.com")
	if err != nil {
		t.Fatal(err)
	}

	expired := NewTokenHelper("s3cret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.GenerateToken("u1@x.com")
	if err != nil {
		t.Fatal(err)
	}

	other, err := NewTokenHelper("another", time.Hour).GenerateToken("u1@x.com")
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(good, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"expired", old, ErrTokenExpired},
		{"wrong secret", other, ErrTokenInvalid},
		{"tampered payload", tampered, ErrTokenInvalid},
		{"garbage", "not-a-token", ErrTokenInvalid},
		{"empty", "", ErrTokenInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.ValidateToken(tt.token)
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateToken() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerateTokenNeedsEmail(t *testing.T) {
	if _, err := NewTokenHelper("s3cret", time.Hour).GenerateToken(""); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("error = %v, want ErrTokenInvalid", err)
	}
}
