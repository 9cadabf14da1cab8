package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/mkraev/teamtodo/internal/access"
	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
	"github.com/mkraev/teamtodo/internal/repository"
)

// TeamCreateInput carries the team creation fields.
type TeamCreateInput struct {
	Name        string
	Description string
	Members     []string
	TeamImage   []byte
}

// TeamService covers team CRUD and the invite flow.
type TeamService interface {
	// Create makes the caller owner of a new team.
	Create(ctx context.Context, identity string, in TeamCreateInput) (*model.Team, error)
	// List returns the teams the caller belongs to.
	List(ctx context.Context, identity string) ([]model.Team, error)
	// Get returns a single team, members only.
	Get(ctx context.Context, identity, publicID string) (*model.Team, error)
	// Edit applies a patch, owner only.
	Edit(ctx context.Context, identity, publicID string, p model.TeamPatch) (*model.Team, error)
	// Delete removes a team, owner only.
	Delete(ctx context.Context, identity, publicID string) error
	// Invite appends a user (by profile name) to a team (by name), owner only.
	Invite(ctx context.Context, identity, teamName, profileName string) (*model.Team, *model.User, error)
}

type TeamServiceImpl struct {
	teams repository.TeamRepository
	users repository.UserRepository
	authz *access.Authorizer
}

// NewTeamService constructs TeamService.
func NewTeamService(teams repository.TeamRepository, users repository.UserRepository, authz *access.Authorizer) *TeamServiceImpl {
	return &TeamServiceImpl{teams: teams, users: users, authz: authz}
}

// Create inserts a new active team. When no member list is given the owner
// becomes the sole member.
func (s *TeamServiceImpl) Create(ctx context.Context, identity string, in TeamCreateInput) (*model.Team, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: Team name is required", errs.ErrValidation)
	}
	tid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	members := in.Members
	if members == nil {
		members = []string{identity}
	}
	t := &model.Team{
		PublicID:      tid.String(),
		OwnerPublicID: identity,
		Name:          in.Name,
		Description:   in.Description,
		Members:       members,
		TeamImage:     in.TeamImage,
		IsActive:      true,
		Deleted:       false,
	}
	if err := s.teams.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns the membership-filtered team list.
func (s *TeamServiceImpl) List(ctx context.Context, identity string) ([]model.Team, error) {
	return s.authz.TeamsForMember(ctx, identity)
}

// Get returns the team when the caller is a member, else not-found.
func (s *TeamServiceImpl) Get(ctx context.Context, identity, publicID string) (*model.Team, error) {
	return s.authz.TeamForMember(ctx, identity, publicID)
}

// Edit applies present patch fields after the ownership check.
func (s *TeamServiceImpl) Edit(ctx context.Context, identity, publicID string, p model.TeamPatch) (*model.Team, error) {
	if _, err := s.authz.TeamForOwner(ctx, identity, publicID); err != nil {
		return nil, err
	}
	if p.IsZero() {
		return nil, fmt.Errorf("%w: No data provided", errs.ErrValidation)
	}
	if err := s.teams.Update(ctx, publicID, p); err != nil {
		return nil, err
	}
	return s.teams.GetByPublicID(ctx, publicID)
}

// Delete removes the team after the ownership check.
func (s *TeamServiceImpl) Delete(ctx context.Context, identity, publicID string) error {
	if _, err := s.authz.TeamForOwner(ctx, identity, publicID); err != nil {
		return err
	}
	return s.teams.Delete(ctx, publicID)
}

// Invite looks up the team by exact name and the user by exact profile name,
// rejects duplicates, and appends the user to the members list.
func (s *TeamServiceImpl) Invite(ctx context.Context, identity, teamName, profileName string) (*model.Team, *model.User, error) {
	t, err := s.authz.TeamForOwnerByName(ctx, identity, teamName)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: Team not found", errs.ErrNotFound)
		}
		return nil, nil, err
	}
	if profileName == "" {
		return nil, nil, fmt.Errorf("%w: Profile name is required", errs.ErrValidation)
	}
	u, err := s.users.GetByProfileName(ctx, profileName)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: User not found", errs.ErrNotFound)
		}
		return nil, nil, err
	}
	if access.IsMember(t, u.PublicID) {
		return nil, nil, fmt.Errorf("%w: User is already a member", errs.ErrAlreadyExists)
	}
	if err := s.teams.AppendMember(ctx, t.PublicID, u.PublicID); err != nil {
		return nil, nil, err
	}
	return t, u, nil
}
