package repository

import (
	"context"

	"github.com/mkraev/teamtodo/internal/model"
)

// TeamRepository provides team storage, including the members list.
type TeamRepository interface {
	// Create inserts a new team.
	Create(ctx context.Context, t *model.Team) error
	// GetByPublicID loads a team by public id.
	GetByPublicID(ctx context.Context, publicID string) (*model.Team, error)
	// GetByName loads a team by exact name (invite flow).
	GetByName(ctx context.Context, name string) (*model.Team, error)
	// ListByMember returns teams whose members list contains the user.
	ListByMember(ctx context.Context, userPublicID string) ([]model.Team, error)
	// Update applies the set fields of the patch and bumps last_activity.
	Update(ctx context.Context, publicID string, p model.TeamPatch) error
	// Delete removes the team.
	Delete(ctx context.Context, publicID string) error
	// AppendMember appends a user to members and bumps last_activity. The
	// append is guarded: if the user is already contained the update matches
	// no row and errs.ErrAlreadyExists is returned.
	AppendMember(ctx context.Context, teamPublicID, userPublicID string) error
}
