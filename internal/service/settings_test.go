package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
)

func newSettingsFixture(t *testing.T) (*SettingsServiceImpl, *fakeSettings) {
	t.Helper()
	settings := newFakeSettings()
	users := newFakeUsers(settings)
	seedUser(t, users, "u-1", "Jane Doe", "jane@example.com", "correct horse")
	return NewSettingsService(settings), settings
}

func TestSettingsGet(t *testing.T) {
	t.Parallel()
	svc, _ := newSettingsFixture(t)
	ctx := context.Background()

	s, err := svc.Get(ctx, "u-1")
	require.NoError(t, err)
	require.Equal(t, "light", s.Theme)

	_, err = svc.Get(ctx, "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSettingsEdit(t *testing.T) {
	t.Parallel()
	svc, _ := newSettingsFixture(t)
	ctx := context.Background()

	_, err := svc.Edit(ctx, "u-1", model.SettingsPatch{})
	require.ErrorIs(t, err, errs.ErrValidation)

	theme := "dark"
	hide := true
	s, err := svc.Edit(ctx, "u-1", model.SettingsPatch{Theme: &theme, HideCompletedTodos: &hide})
	require.NoError(t, err)
	require.Equal(t, "dark", s.Theme)
	require.True(t, s.HideCompletedTodos)
	// Untouched fields keep their values.
	require.Equal(t, "en", s.Language)

	_, err = svc.Edit(ctx, "missing", model.SettingsPatch{Theme: &theme})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSettingsReset_Idempotent(t *testing.T) {
	t.Parallel()
	svc, _ := newSettingsFixture(t)
	ctx := context.Background()

	theme := "dark"
	lang := "de"
	_, err := svc.Edit(ctx, "u-1", model.SettingsPatch{Theme: &theme, Language: &lang})
	require.NoError(t, err)

	first, err := svc.Reset(ctx, "u-1")
	require.NoError(t, err)
	def := model.DefaultSettings()
	require.Equal(t, def.Theme, first.Theme)
	require.Equal(t, def.Language, first.Language)

	second, err := svc.Reset(ctx, "u-1")
	require.NoError(t, err)
	require.Equal(t, first, second)
}
