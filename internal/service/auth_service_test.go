package service

import (
	"errors"
	"testing"
)

func TestRegisterLoginAndParseToken(t *testing.T) {
	env := newTestEnv(t, nil)

	user, err := env.auth.Register(RegisterInput{Email: " New@Example.com ", Password: "secret-pass", FirstName: "Ada"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "new@example.com" || user.IsStaff {
		t.Fatalf("unexpected user: %+v", user)
	}
	if _, err := env.auth.Register(RegisterInput{Email: "new@example.com", Password: "secret-pass"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected email exists, got %v", err)
	}
	if _, err := env.auth.Register(RegisterInput{Email: "short@example.com", Password: "abc"}); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected password too short, got %v", err)
	}

	if _, _, _, err := env.auth.Login("new@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	_, token, expiresAt, err := env.auth.Login("NEW@example.com", "secret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || expiresAt.IsZero() {
		t.Fatalf("expected token and expiry")
	}
	claims, err := env.auth.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Issuer != "storefront-test" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, err := env.auth.ParseJWT(token + "x"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected token invalid, got %v", err)
	}
}
