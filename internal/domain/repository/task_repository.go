// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"agenda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task id is absent or the task is owned by
// a different user. The persistence layer never distinguishes the two cases.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the owner-scoped operations for task persistence.
// Every read and write is filtered by the owning user's id; there is no
// unscoped access path.
type TaskRepository interface {
	// ListByOwner retrieves all tasks owned by ownerID, in a stable order.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)

	// Create persists a new task for its owner.
	Create(ctx context.Context, task *entity.Task) error

	// Update applies the patch to the task identified by (id, ownerID) in a
	// single atomic statement. Returns ErrTaskNotFound when no row matched,
	// whether because the id is absent or the owner differs.
	Update(ctx context.Context, id, ownerID uuid.UUID, patch *entity.TaskPatch) (*entity.Task, error)

	// Delete removes the task identified by (id, ownerID) in a single atomic
	// statement, with the same not-found semantics as Update.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
