package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `public_id, profile_name, email, password_hash, salt_auth, profile_picture,
last_password_change, joined_on, last_update, last_activity`

// CreateWithSettings inserts the user and its settings row in one transaction
// so a failed settings insert can never leave an orphaned user behind.
func (r *UserRepo) CreateWithSettings(ctx context.Context, u *model.User, s *model.Settings) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const insUser = `
INSERT INTO users (public_id, profile_name, email, password_hash, salt_auth, profile_picture)
VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.Exec(ctx, insUser,
		u.PublicID, u.ProfileName, u.Email, u.PasswordHash, u.SaltAuth, u.ProfilePicture); err != nil {
		if isUniqueViolation(err) {
			err = errs.ErrAlreadyExists
		}
		return err
	}

	const insSettings = `
INSERT INTO settings (public_id, user_public_id, theme, separate_teams_todos, hide_completed_todos, language, timezone)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.Exec(ctx, insSettings,
		s.PublicID, s.UserPublicID, s.Theme, s.SeparateTeamsTodos, s.HideCompletedTodos, s.Language, s.Timezone); err != nil {
		return err
	}
	return nil
}

func (r *UserRepo) getBy(ctx context.Context, where string, arg any) (*model.User, error) {
	row := r.db.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	var u model.User
	err := row.Scan(&u.PublicID, &u.ProfileName, &u.Email, &u.PasswordHash, &u.SaltAuth,
		&u.ProfilePicture, &u.LastPasswordChange, &u.JoinedOn, &u.LastUpdate, &u.LastActivity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByPublicID selects a user by public id.
func (r *UserRepo) GetByPublicID(ctx context.Context, publicID string) (*model.User, error) {
	return r.getBy(ctx, `public_id=$1`, publicID)
}

// GetByEmail selects a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getBy(ctx, `email=$1`, email)
}

// GetByProfileName selects a user by exact profile name.
func (r *UserRepo) GetByProfileName(ctx context.Context, profileName string) (*model.User, error) {
	return r.getBy(ctx, `profile_name=$1`, profileName)
}

// UpdateProfile applies present profile fields and bumps last_update.
// Password fields of the patch are handled by SetPassword.
func (r *UserRepo) UpdateProfile(ctx context.Context, publicID string, p model.UserPatch) error {
	b := psql.Update("users").Set("last_update", sq.Expr("now()"))
	changed := false
	if p.ProfileName != nil {
		b = b.Set("profile_name", *p.ProfileName)
		changed = true
	}
	if p.Email != nil {
		b = b.Set("email", *p.Email)
		changed = true
	}
	if p.ProfilePicture != nil {
		b = b.Set("profile_picture", *p.ProfilePicture)
		changed = true
	}
	if !changed {
		return nil
	}
	q, args, err := b.Where(sq.Eq{"public_id": publicID}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Pool.Exec(ctx, q, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// SetPassword replaces the credential columns and stamps the change.
func (r *UserRepo) SetPassword(ctx context.Context, publicID string, hash, salt []byte) error {
	const q = `
UPDATE users
SET password_hash=$2, salt_auth=$3, last_password_change=now(), last_update=now()
WHERE public_id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, publicID, hash, salt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes the user row; settings cascade via FK.
func (r *UserRepo) Delete(ctx context.Context, publicID string) error {
	const q = `DELETE FROM users WHERE public_id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, publicID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
