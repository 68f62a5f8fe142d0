// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"agenda/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title         string `json:"title" validate:"required"`
	ContactEmail  string `json:"contactEmail"`
	ScheduledDate string `json:"date" validate:"required"`
	ScheduledTime string `json:"time" validate:"required"`
}

// UpdateTaskInput defines the partial fields of a task update.
// Nil fields are left untouched.
type UpdateTaskInput struct {
	Title         *string `json:"title"`
	ContactEmail  *string `json:"contactEmail"`
	ScheduledDate *string `json:"date"`
	ScheduledTime *string `json:"time"`
	Completed     *bool   `json:"completed"`
}

// TaskUsecase defines the interface for owner-scoped task operations.
// The ownerID always comes from the resolved session, never from request input.
type TaskUsecase interface {
	// List returns all tasks owned by ownerID.
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)

	// Create adds a new task for ownerID.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)

	// Update applies partial changes to the task identified by (taskID, ownerID).
	Update(ctx context.Context, ownerID, taskID uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)

	// Delete removes the task identified by (taskID, ownerID).
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error
}
