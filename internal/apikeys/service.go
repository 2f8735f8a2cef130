package apikeys

import (
	"context"
	"errors"

	"github.com/textvault/textvault/internal/apperr"
	"github.com/textvault/textvault/internal/ident"
	"github.com/textvault/textvault/internal/otp"
)

// Service wraps the repository with issuance and authentication logic.
// Key creation is gated by the shared TOTP secret, not by an existing key.
type Service struct {
	repo      Repository
	otpSecret string
}

func NewService(repo Repository, otpSecret string) *Service {
	return &Service{repo: repo, otpSecret: otpSecret}
}

// ValidateToken reports whether token is currently acceptable.
func (s *Service) ValidateToken(token string) bool {
	return otp.Validate(s.otpSecret, token)
}

// Create issues a new key after validating the one-time token. The secret
// is generated from the CSPRNG; collisions on either field surface as a
// storage conflict.
func (s *Service) Create(ctx context.Context, token string) (*Key, error) {
	if token == "" {
		return nil, apperr.Unauthorized("OTP token is required")
	}
	if !otp.Validate(s.otpSecret, token) {
		return nil, apperr.Unauthorized("Invalid OTP token")
	}
	id, err := ident.KeyID()
	if err != nil {
		return nil, err
	}
	secret, err := ident.KeySecret()
	if err != nil {
		return nil, err
	}
	k := &Key{ID: id, Secret: secret}
	if err := s.repo.Insert(ctx, k); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, apperr.Conflict("API key already exists")
		}
		return nil, err
	}
	return k, nil
}

// Authenticate resolves a presented secret to its key, or nil when unknown.
func (s *Service) Authenticate(ctx context.Context, secret string) (*Key, error) {
	if k, ok := cacheGet(ctx, secret); ok {
		return k, nil
	}
	k, err := s.repo.FindBySecret(ctx, secret)
	if err != nil {
		return nil, err
	}
	if k != nil {
		cachePut(ctx, k)
	}
	return k, nil
}

// Delete removes a key by ID and reports whether one was removed. The
// cached secret entry is invalidated first so a deleted key stops
// authenticating immediately.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	k, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if k == nil {
		return false, nil
	}
	cacheDel(ctx, k.Secret)
	return s.repo.DeleteByID(ctx, id)
}

// List returns every key, unordered, full snapshot.
func (s *Service) List(ctx context.Context) ([]Key, error) {
	return s.repo.List(ctx)
}
