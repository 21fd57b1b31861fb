package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/medlight/clinic-api/internal/model"
	"github.com/medlight/clinic-api/internal/repository"
	apperr "github.com/medlight/clinic-api/pkg/errors"
	"github.com/medlight/clinic-api/pkg/security"
	"github.com/medlight/clinic-api/pkg/session"
)

// Service is the session gate: it stores credentials with one-way hashed
// passwords and exchanges a successful hash check for a session token.
type Service struct {
	users    repository.UserRepository
	sessions session.Store
	hasher   security.PasswordHasher
}

func NewService(users repository.UserRepository, sessions session.Store, hasher security.PasswordHasher) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
	}
}

func (s *Service) Signup(ctx context.Context, req *model.SignupRequest) error {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, security.ErrTooShort) {
			return apperr.NewValidation("password must be at least %d characters", security.MinPasswordLen)
		}
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login succeeds only if the username exists and the supplied password
// hashes to the stored hash. The two failure cases are indistinguishable
// to the caller.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (string, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if apperr.IsNotFound(err) {
			return "", apperr.NewUnauthorized("invalid username or password")
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return "", apperr.NewUnauthorized("invalid username or password")
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", apperr.NewStorage("create session", err)
	}
	return token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return apperr.NewStorage("destroy session", err)
	}
	return nil
}
