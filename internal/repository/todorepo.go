package repository

import (
	"context"

	"github.com/mkraev/teamtodo/internal/model"
)

// TodoRepository provides to-do item storage. Single-item operations are
// scoped by owner: a row that exists but belongs to someone else behaves as
// absent, which is exactly what the access rules require.
type TodoRepository interface {
	// Create inserts a new item.
	Create(ctx context.Context, t *model.TodoItem) error
	// GetOwned loads an item by public id, scoped to its owner.
	GetOwned(ctx context.Context, ownerPublicID, publicID string) (*model.TodoItem, error)
	// ListVisible returns items owned by the user plus items assigned to any
	// team the user is a member of.
	ListVisible(ctx context.Context, userPublicID string) ([]model.TodoItem, error)
	// ListByTeam returns items assigned to the given team.
	ListByTeam(ctx context.Context, teamPublicID string) ([]model.TodoItem, error)
	// Update applies the set fields of the patch, scoped to the owner.
	Update(ctx context.Context, ownerPublicID, publicID string, p model.TodoPatch) error
	// Delete removes an item, scoped to the owner.
	Delete(ctx context.Context, ownerPublicID, publicID string) error
}
