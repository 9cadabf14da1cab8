// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/mkraev/teamtodo/internal/model"
)

// UserRepository provides account storage.
type UserRepository interface {
	// CreateWithSettings inserts a user and its settings row in one
	// transaction. Duplicate email maps to errs.ErrAlreadyExists.
	CreateWithSettings(ctx context.Context, u *model.User, s *model.Settings) error
	// GetByPublicID loads a user by public id.
	GetByPublicID(ctx context.Context, publicID string) (*model.User, error)
	// GetByEmail loads a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// GetByProfileName loads a user by exact profile name.
	GetByProfileName(ctx context.Context, profileName string) (*model.User, error)
	// UpdateProfile applies the profile fields of the patch (name, email,
	// picture) and bumps last_update. Password fields are ignored here.
	UpdateProfile(ctx context.Context, publicID string, p model.UserPatch) error
	// SetPassword replaces hash and salt, bumping last_password_change.
	SetPassword(ctx context.Context, publicID string, hash, salt []byte) error
	// Delete removes the user; the settings row goes with it (FK cascade).
	Delete(ctx context.Context, publicID string) error
}
