package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "mohsin_travel/internal/adapters/redis"
	"mohsin_travel/internal/auth"
	"mohsin_travel/internal/domain"
)

func newService(t *testing.T, password string) *auth.Service {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	return auth.New(cache, "admin@mmohsintravel.com", password, time.Hour)
}

func TestLoginVerifyLogout(t *testing.T) {
	s := newService(t, "s3cret")
	ctx := context.Background()

	token, err := s.Login(ctx, "admin@mmohsintravel.com", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	ident, err := s.Verify(ctx, token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ident.Email != "admin@mmohsintravel.com" {
		t.Fatalf("unexpected identity: %+v", ident)
	}

	if err := s.Logout(ctx, token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := s.Verify(ctx, token); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	s := newService(t, "s3cret")
	ctx := context.Background()

	for _, tc := range []struct{ email, pass string }{
		{"admin@mmohsintravel.com", "wrong"},
		{"someone@else.com", "s3cret"},
		{"", ""},
	} {
		if _, err := s.Login(ctx, tc.email, tc.pass); err != domain.ErrUnauthorized {
			t.Fatalf("login %q/%q: expected ErrUnauthorized, got %v", tc.email, tc.pass, err)
		}
	}
}

func TestLogin_DisabledWithoutPassword(t *testing.T) {
	s := newService(t, "")
	if _, err := s.Login(context.Background(), "admin@mmohsintravel.com", ""); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized when no password configured, got %v", err)
	}
}

func TestVerify_UnknownToken(t *testing.T) {
	s := newService(t, "s3cret")
	if _, err := s.Verify(context.Background(), "not-a-token"); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
