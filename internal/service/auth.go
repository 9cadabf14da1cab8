// Package service contains application services behind the HTTP handlers.
// Each service validates input, routes access decisions through the
// authorizer, and delegates storage to repositories.
package service

import (
	"context"
	"errors"
	"fmt"

	pkgcrypto "github.com/mkraev/teamtodo/internal/crypto"
	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
	"github.com/mkraev/teamtodo/internal/repository"
)

// AuthService authenticates credentials against stored accounts.
type AuthService interface {
	// Login verifies email+password and returns the account on success.
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type AuthServiceImpl struct {
	users repository.UserRepository
}

// NewAuthService constructs AuthService.
func NewAuthService(users repository.UserRepository) *AuthServiceImpl {
	return &AuthServiceImpl{users: users}
}

// Login checks credentials. A missing account and a wrong password are both
// reported as ErrUnauthorized so account existence is not disclosed.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: Email and password required", errs.ErrValidation)
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}
	if !pkgcrypto.VerifyPassword([]byte(password), u.SaltAuth, u.PasswordHash) {
		return nil, errs.ErrUnauthorized
	}
	return u, nil
}
