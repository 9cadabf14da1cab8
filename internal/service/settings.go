package service

import (
	"context"
	"fmt"

	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
	"github.com/mkraev/teamtodo/internal/repository"
)

// SettingsService covers the caller's own settings. All lookups are scoped
// by the session identity, so no explicit access check is needed.
type SettingsService interface {
	// Get returns the caller's settings.
	Get(ctx context.Context, identity string) (*model.Settings, error)
	// Edit applies a patch to the caller's settings.
	Edit(ctx context.Context, identity string, p model.SettingsPatch) (*model.Settings, error)
	// Reset restores the fixed defaults. Idempotent.
	Reset(ctx context.Context, identity string) (*model.Settings, error)
}

type SettingsServiceImpl struct {
	settings repository.SettingsRepository
}

// NewSettingsService constructs SettingsService.
func NewSettingsService(settings repository.SettingsRepository) *SettingsServiceImpl {
	return &SettingsServiceImpl{settings: settings}
}

// Get loads the caller's settings row.
func (s *SettingsServiceImpl) Get(ctx context.Context, identity string) (*model.Settings, error) {
	return s.settings.GetByUser(ctx, identity)
}

// Edit applies present patch fields.
func (s *SettingsServiceImpl) Edit(ctx context.Context, identity string, p model.SettingsPatch) (*model.Settings, error) {
	if _, err := s.settings.GetByUser(ctx, identity); err != nil {
		return nil, err
	}
	if p.IsZero() {
		return nil, fmt.Errorf("%w: No data provided", errs.ErrValidation)
	}
	if err := s.settings.Update(ctx, identity, p); err != nil {
		return nil, err
	}
	return s.settings.GetByUser(ctx, identity)
}

// Reset restores defaults and returns the resulting state.
func (s *SettingsServiceImpl) Reset(ctx context.Context, identity string) (*model.Settings, error) {
	if err := s.settings.Reset(ctx, identity); err != nil {
		return nil, err
	}
	return s.settings.GetByUser(ctx, identity)
}
