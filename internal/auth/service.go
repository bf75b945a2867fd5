// Package auth issues and verifies the opaque bearer tokens guarding the
// admin mutation routes. Tokens live in the shared cache so that /logout
// revokes them immediately and restarts of the API do not invalidate them.
package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/google/uuid"

	"mohsin_travel/internal/domain"
)

type Service struct {
	cache      domain.Cache
	adminEmail string
	adminPass  string
	ttl        time.Duration
}

func New(cache domain.Cache, adminEmail, adminPass string, ttl time.Duration) *Service {
	return &Service{cache: cache, adminEmail: adminEmail, adminPass: adminPass, ttl: ttl}
}

func sessionKey(token string) string { return "session:" + token }

// Login checks the configured admin credential and returns a fresh token.
// An empty configured password disables login entirely.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPass)) == 1
	if s.adminPass == "" || !emailOK || !passOK {
		return "", domain.ErrUnauthorized
	}
	token := uuid.NewString()
	if err := s.cache.Set(ctx, sessionKey(token), domain.Identity{Email: email}, int(s.ttl.Seconds())); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Service) Verify(ctx context.Context, token string) (domain.Identity, error) {
	var ident domain.Identity
	ok, err := s.cache.Get(ctx, sessionKey(token), &ident)
	if err != nil {
		return domain.Identity{}, err
	}
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return ident, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.cache.Del(ctx, sessionKey(token))
}
