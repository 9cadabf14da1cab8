package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
)

// SettingsRepo implements SettingsRepository using PostgreSQL.
type SettingsRepo struct{ db *DB }

// NewSettingsRepo constructs a settings repository.
func NewSettingsRepo(db *DB) *SettingsRepo { return &SettingsRepo{db: db} }

// GetByUser selects the settings row owned by the user.
func (r *SettingsRepo) GetByUser(ctx context.Context, userPublicID string) (*model.Settings, error) {
	const q = `
SELECT public_id, user_public_id, theme, separate_teams_todos, hide_completed_todos, language, timezone
FROM settings WHERE user_public_id=$1`
	row := r.db.Pool.QueryRow(ctx, q, userPublicID)
	var s model.Settings
	err := row.Scan(&s.PublicID, &s.UserPublicID, &s.Theme, &s.SeparateTeamsTodos,
		&s.HideCompletedTodos, &s.Language, &s.Timezone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Update applies the present patch fields.
func (r *SettingsRepo) Update(ctx context.Context, userPublicID string, p model.SettingsPatch) error {
	if p.IsZero() {
		return nil
	}
	b := psql.Update("settings")
	if p.Theme != nil {
		b = b.Set("theme", *p.Theme)
	}
	if p.SeparateTeamsTodos != nil {
		b = b.Set("separate_teams_todos", *p.SeparateTeamsTodos)
	}
	if p.HideCompletedTodos != nil {
		b = b.Set("hide_completed_todos", *p.HideCompletedTodos)
	}
	if p.Language != nil {
		b = b.Set("language", *p.Language)
	}
	if p.Timezone != nil {
		b = b.Set("timezone", *p.Timezone)
	}
	q, args, err := b.Where(sq.Eq{"user_public_id": userPublicID}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Pool.Exec(ctx, q, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Reset restores the fixed defaults.
func (r *SettingsRepo) Reset(ctx context.Context, userPublicID string) error {
	def := model.DefaultSettings()
	const q = `
UPDATE settings
SET theme=$2, separate_teams_todos=$3, hide_completed_todos=$4, language=$5, timezone=$6
WHERE user_public_id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, userPublicID,
		def.Theme, def.SeparateTeamsTodos, def.HideCompletedTodos, def.Language, def.Timezone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
