package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
)

// TodoRepo implements TodoRepository using PostgreSQL.
type TodoRepo struct{ db *DB }

// NewTodoRepo constructs a to-do repository.
func NewTodoRepo(db *DB) *TodoRepo { return &TodoRepo{db: db} }

const todoColumns = `public_id, user_public_id, visibility, title, summary, due_date,
completed, priority, assigned_to, shared_with, created_by, created_on`

// Create inserts a new item row.
func (r *TodoRepo) Create(ctx context.Context, t *model.TodoItem) error {
	const q = `
INSERT INTO todos (public_id, user_public_id, visibility, title, summary, due_date, completed, priority, assigned_to, shared_with, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Pool.Exec(ctx, q,
		t.PublicID, t.UserPublicID, t.Visibility, t.Title, t.Summary, t.DueDate,
		t.Completed, t.Priority, t.AssignedTo, t.SharedWith, t.CreatedBy)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

func scanTodo(row pgx.Row) (*model.TodoItem, error) {
	var t model.TodoItem
	err := row.Scan(&t.PublicID, &t.UserPublicID, &t.Visibility, &t.Title, &t.Summary,
		&t.DueDate, &t.Completed, &t.Priority, &t.AssignedTo, &t.SharedWith, &t.CreatedBy, &t.CreatedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetOwned selects an item by public id, scoped to its owner. A row owned by
// someone else behaves as absent.
func (r *TodoRepo) GetOwned(ctx context.Context, ownerPublicID, publicID string) (*model.TodoItem, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos WHERE public_id=$1 AND user_public_id=$2`
	return scanTodo(r.db.Pool.QueryRow(ctx, q, publicID, ownerPublicID))
}

func (r *TodoRepo) list(ctx context.Context, q string, args ...any) ([]model.TodoItem, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.TodoItem{}
	for rows.Next() {
		var t model.TodoItem
		if err = rows.Scan(&t.PublicID, &t.UserPublicID, &t.Visibility, &t.Title, &t.Summary,
			&t.DueDate, &t.Completed, &t.Priority, &t.AssignedTo, &t.SharedWith, &t.CreatedBy, &t.CreatedOn); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListVisible returns the caller's own items plus items assigned to any team
// whose members list contains the caller.
func (r *TodoRepo) ListVisible(ctx context.Context, userPublicID string) ([]model.TodoItem, error) {
	const q = `
SELECT ` + todoColumns + `
FROM todos
WHERE user_public_id=$1
   OR assigned_to IN (SELECT public_id FROM teams WHERE members @> to_jsonb($1::text))
ORDER BY created_on`
	return r.list(ctx, q, userPublicID)
}

// ListByTeam returns all items assigned to the team.
func (r *TodoRepo) ListByTeam(ctx context.Context, teamPublicID string) ([]model.TodoItem, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos WHERE assigned_to=$1 ORDER BY created_on`
	return r.list(ctx, q, teamPublicID)
}

// Update applies present patch fields, scoped to the owner.
func (r *TodoRepo) Update(ctx context.Context, ownerPublicID, publicID string, p model.TodoPatch) error {
	if p.IsZero() {
		return nil
	}
	b := psql.Update("todos")
	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.Summary != nil {
		b = b.Set("summary", *p.Summary)
	}
	if p.DueDate != nil {
		b = b.Set("due_date", *p.DueDate)
	}
	if p.Completed != nil {
		b = b.Set("completed", *p.Completed)
	}
	if p.Priority != nil {
		b = b.Set("priority", *p.Priority)
	}
	if p.AssignedTo != nil {
		b = b.Set("assigned_to", *p.AssignedTo)
	}
	if p.SharedWith != nil {
		b = b.Set("shared_with", *p.SharedWith)
	}
	if p.Visibility != nil {
		b = b.Set("visibility", *p.Visibility)
	}
	q, args, err := b.Where(sq.Eq{"public_id": publicID, "user_public_id": ownerPublicID}).ToSql()
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

// Delete removes an item, scoped to the owner.
func (r *TodoRepo) Delete(ctx context.Context, ownerPublicID, publicID string) error {
	const q = `DELETE FROM todos WHERE public_id=$1 AND user_public_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, publicID, ownerPublicID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
