package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
)

// TeamRepo implements TeamRepository using PostgreSQL. The members list is a
// jsonb array of user public ids, kept in insertion order.
type TeamRepo struct{ db *DB }

// NewTeamRepo constructs a team repository.
func NewTeamRepo(db *DB) *TeamRepo { return &TeamRepo{db: db} }

const teamColumns = `public_id, owner_public_id, name, description, members, team_image,
is_active, deleted, last_activity, created_on`

// Create inserts a new team row.
func (r *TeamRepo) Create(ctx context.Context, t *model.Team) error {
	const q = `
INSERT INTO teams (public_id, owner_public_id, name, description, members, team_image, is_active, deleted)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Pool.Exec(ctx, q,
		t.PublicID, t.OwnerPublicID, t.Name, t.Description, t.Members, t.TeamImage, t.IsActive, t.Deleted)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var t model.Team
	err := row.Scan(&t.PublicID, &t.OwnerPublicID, &t.Name, &t.Description, &t.Members,
		&t.TeamImage, &t.IsActive, &t.Deleted, &t.LastActivity, &t.CreatedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetByPublicID selects a team by public id.
func (r *TeamRepo) GetByPublicID(ctx context.Context, publicID string) (*model.Team, error) {
	const q = `SELECT ` + teamColumns + ` FROM teams WHERE public_id=$1`
	return scanTeam(r.db.Pool.QueryRow(ctx, q, publicID))
}

// GetByName selects a team by exact name. Names are not unique; the oldest
// match wins, mirroring a first-row lookup.
func (r *TeamRepo) GetByName(ctx context.Context, name string) (*model.Team, error) {
	const q = `SELECT ` + teamColumns + ` FROM teams WHERE name=$1 ORDER BY created_on LIMIT 1`
	return scanTeam(r.db.Pool.QueryRow(ctx, q, name))
}

// ListByMember returns all teams whose members list contains the user.
func (r *TeamRepo) ListByMember(ctx context.Context, userPublicID string) ([]model.Team, error) {
	const q = `
SELECT ` + teamColumns + `
FROM teams
WHERE members @> to_jsonb($1::text)
ORDER BY created_on`
	rows, err := r.db.Pool.Query(ctx, q, userPublicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Team{}
	for rows.Next() {
		var t model.Team
		if err = rows.Scan(&t.PublicID, &t.OwnerPublicID, &t.Name, &t.Description, &t.Members,
			&t.TeamImage, &t.IsActive, &t.Deleted, &t.LastActivity, &t.CreatedOn); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update applies present patch fields and bumps last_activity.
func (r *TeamRepo) Update(ctx context.Context, publicID string, p model.TeamPatch) error {
	b := psql.Update("teams").Set("last_activity", sq.Expr("now()"))
	if p.Name != nil {
		b = b.Set("name", *p.Name)
	}
	if p.Description != nil {
		b = b.Set("description", *p.Description)
	}
	if p.Members != nil {
		b = b.Set("members", *p.Members)
	}
	if p.TeamImage != nil {
		b = b.Set("team_image", *p.TeamImage)
	}
	if p.IsActive != nil {
		b = b.Set("is_active", *p.IsActive)
	}
	if p.Deleted != nil {
		b = b.Set("deleted", *p.Deleted)
	}
	q, args, err := b.Where(sq.Eq{"public_id": publicID}).ToSql()
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

// Delete removes the team row.
func (r *TeamRepo) Delete(ctx context.Context, publicID string) error {
	const q = `DELETE FROM teams WHERE public_id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, publicID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// AppendMember appends the user to members unless already contained. The
// containment guard keeps concurrent duplicate invites from double-appending.
func (r *TeamRepo) AppendMember(ctx context.Context, teamPublicID, userPublicID string) error {
	const q = `
UPDATE teams
SET members = members || to_jsonb($2::text), last_activity = now()
WHERE public_id=$1 AND NOT members @> to_jsonb($2::text)`
	tag, err := r.db.Pool.Exec(ctx, q, teamPublicID, userPublicID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrAlreadyExists
	}
	return nil
}
