package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/mkraev/teamtodo/internal/access"
	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
	"github.com/mkraev/teamtodo/internal/repository"
)

// TodoCreateInput carries the to-do creation fields. Zero-valued optionals
// fall back to the item defaults.
type TodoCreateInput struct {
	Title      string
	Summary    string
	DueDate    *time.Time
	Completed  bool
	Priority   string
	AssignedTo string
	SharedWith []string
	Visibility string
}

// TodoService covers to-do CRUD and the two list shapes.
type TodoService interface {
	// Create inserts an item owned by the caller.
	Create(ctx context.Context, identity string, in TodoCreateInput) (*model.TodoItem, error)
	// List returns the caller's visible set (own plus team-assigned).
	List(ctx context.Context, identity string) ([]model.TodoItem, error)
	// Get returns a single item, owner only.
	Get(ctx context.Context, identity, publicID string) (*model.TodoItem, error)
	// Edit applies a patch, owner only.
	Edit(ctx context.Context, identity, publicID string, p model.TodoPatch) (*model.TodoItem, error)
	// Delete removes an item, owner only.
	Delete(ctx context.Context, identity, publicID string) error
	// ListByTeam returns a team's assigned items, members only.
	ListByTeam(ctx context.Context, identity, teamPublicID string) ([]model.TodoItem, error)
}

type TodoServiceImpl struct {
	todos repository.TodoRepository
	authz *access.Authorizer
}

// NewTodoService constructs TodoService.
func NewTodoService(todos repository.TodoRepository, authz *access.Authorizer) *TodoServiceImpl {
	return &TodoServiceImpl{todos: todos, authz: authz}
}

// Create inserts an item with the caller as owner and creator.
func (s *TodoServiceImpl) Create(ctx context.Context, identity string, in TodoCreateInput) (*model.TodoItem, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: Title is required", errs.ErrValidation)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	if in.Priority == "" {
		in.Priority = model.PriorityNormal
	}
	if in.Visibility == "" {
		in.Visibility = model.VisibilityPublic
	}
	t := &model.TodoItem{
		PublicID:     id.String(),
		UserPublicID: identity,
		Visibility:   in.Visibility,
		Title:        in.Title,
		Summary:      in.Summary,
		DueDate:      in.DueDate,
		Completed:    in.Completed,
		Priority:     in.Priority,
		AssignedTo:   in.AssignedTo,
		SharedWith:   in.SharedWith,
		CreatedBy:    identity,
	}
	if err := s.todos.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns the caller's visible set.
func (s *TodoServiceImpl) List(ctx context.Context, identity string) ([]model.TodoItem, error) {
	return s.authz.VisibleTodos(ctx, identity)
}

// Get returns the item when the caller owns it, else not-found.
func (s *TodoServiceImpl) Get(ctx context.Context, identity, publicID string) (*model.TodoItem, error) {
	return s.authz.TodoForOwner(ctx, identity, publicID)
}

// Edit applies present patch fields after the ownership check.
func (s *TodoServiceImpl) Edit(ctx context.Context, identity, publicID string, p model.TodoPatch) (*model.TodoItem, error) {
	if _, err := s.authz.TodoForOwner(ctx, identity, publicID); err != nil {
		return nil, err
	}
	if p.IsZero() {
		return nil, fmt.Errorf("%w: No data provided", errs.ErrValidation)
	}
	if err := s.todos.Update(ctx, identity, publicID, p); err != nil {
		return nil, err
	}
	return s.todos.GetOwned(ctx, identity, publicID)
}

// Delete removes the item, owner-scoped.
func (s *TodoServiceImpl) Delete(ctx context.Context, identity, publicID string) error {
	return s.todos.Delete(ctx, identity, publicID)
}

// ListByTeam returns the team's items behind the membership gate.
func (s *TodoServiceImpl) ListByTeam(ctx context.Context, identity, teamPublicID string) ([]model.TodoItem, error) {
	return s.authz.TeamTodos(ctx, identity, teamPublicID)
}
