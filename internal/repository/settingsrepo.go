package repository

import (
	"context"

	"github.com/mkraev/teamtodo/internal/model"
)

// SettingsRepository provides per-user settings storage. Rows are created
// together with their user and addressed by the owning user's public id.
type SettingsRepository interface {
	// GetByUser loads the settings row owned by the given user.
	GetByUser(ctx context.Context, userPublicID string) (*model.Settings, error)
	// Update applies the set fields of the patch.
	Update(ctx context.Context, userPublicID string, p model.SettingsPatch) error
	// Reset restores the fixed defaults.
	Reset(ctx context.Context, userPublicID string) error
}
