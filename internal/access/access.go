// Package access implements the authorization and data-visibility rules.
// Every handler routes its access decision through an Authorizer; repositories
// never decide, they only scope.
//
// Denials distinguish two cases: ErrNotFound when the target's existence is
// itself sensitive (a team or to-do fetched by id by an outsider), and
// ErrForbidden when the caller plainly lacks rights over something it already
// knows exists (ownership actions, another user's profile).
package access

import (
	"context"

	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
	"github.com/mkraev/teamtodo/internal/repository"
)

// Authorizer decides what a session identity may read or mutate.
type Authorizer struct {
	teams repository.TeamRepository
	todos repository.TodoRepository
}

// NewAuthorizer constructs the access component over the repositories it
// needs for membership and ownership lookups.
func NewAuthorizer(teams repository.TeamRepository, todos repository.TodoRepository) *Authorizer {
	return &Authorizer{teams: teams, todos: todos}
}

// IsMember reports whether the identity appears in the team's members list.
func IsMember(t *model.Team, identity string) bool {
	for _, m := range t.Members {
		if m == identity {
			return true
		}
	}
	return false
}

// RequireSelf allows an operation on a user-owned resource only to that user.
// Profile read/edit and user deletion all reduce to this check.
func (a *Authorizer) RequireSelf(identity, targetPublicID string) error {
	if identity != targetPublicID {
		return errs.ErrForbidden
	}
	return nil
}

// TeamForMember returns the team only when the identity is a member.
// Non-members get ErrNotFound: team existence is not disclosed.
func (a *Authorizer) TeamForMember(ctx context.Context, identity, teamPublicID string) (*model.Team, error) {
	t, err := a.teams.GetByPublicID(ctx, teamPublicID)
	if err != nil {
		return nil, err
	}
	if !IsMember(t, identity) {
		return nil, errs.ErrNotFound
	}
	return t, nil
}

// TeamsForMember returns every team the identity belongs to.
func (a *Authorizer) TeamsForMember(ctx context.Context, identity string) ([]model.Team, error) {
	return a.teams.ListByMember(ctx, identity)
}

// TeamForOwner returns the team only when the identity owns it. A missing
// team is ErrNotFound; an existing team owned by someone else is ErrForbidden.
func (a *Authorizer) TeamForOwner(ctx context.Context, identity, teamPublicID string) (*model.Team, error) {
	t, err := a.teams.GetByPublicID(ctx, teamPublicID)
	if err != nil {
		return nil, err
	}
	if t.OwnerPublicID != identity {
		return nil, errs.ErrForbidden
	}
	return t, nil
}

// TeamForOwnerByName is TeamForOwner addressed by exact team name (invite flow).
func (a *Authorizer) TeamForOwnerByName(ctx context.Context, identity, name string) (*model.Team, error) {
	t, err := a.teams.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if t.OwnerPublicID != identity {
		return nil, errs.ErrForbidden
	}
	return t, nil
}

// TodoForOwner returns the item only when the identity owns it. The repo
// lookup is owner-scoped, so a foreign item is indistinguishable from a
// missing one. Visibility and shared_with never widen single-item access.
func (a *Authorizer) TodoForOwner(ctx context.Context, identity, todoPublicID string) (*model.TodoItem, error) {
	return a.todos.GetOwned(ctx, identity, todoPublicID)
}

// VisibleTodos computes the identity's visible set: its own items plus items
// assigned to any team it belongs to.
func (a *Authorizer) VisibleTodos(ctx context.Context, identity string) ([]model.TodoItem, error) {
	return a.todos.ListVisible(ctx, identity)
}

// TeamTodos returns the items assigned to a team, gated by membership:
// missing team is ErrNotFound, non-member is ErrForbidden.
func (a *Authorizer) TeamTodos(ctx context.Context, identity, teamPublicID string) ([]model.TodoItem, error) {
	t, err := a.teams.GetByPublicID(ctx, teamPublicID)
	if err != nil {
		return nil, err
	}
	if !IsMember(t, identity) {
		return nil, errs.ErrForbidden
	}
	return a.todos.ListByTeam(ctx, t.PublicID)
}
