// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface. All operations are scoped
// to the owner id resolved from the session; the service never accepts an
// owner from request input.
type taskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo: params.TaskRepo,
		logger:   params.Logger,
	}
}

// List returns all tasks owned by ownerID.
func (srv *taskService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		srv.logger.Error("Failed to list tasks", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// Create adds a new task for ownerID.
func (srv *taskService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.ScheduledDate) == "" || strings.TrimSpace(input.ScheduledTime) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title, date and time are required")
	}

	task := &entity.Task{
		OwnerID:       ownerID,
		Title:         title,
		ContactEmail:  input.ContactEmail,
		ScheduledDate: input.ScheduledDate,
		ScheduledTime: input.ScheduledTime,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.logger.Error("Failed to create task", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.logger.Debug("Task created", slog.Any("taskID", task.ID), slog.Any("ownerID", ownerID))

	return task, nil
}

// Update applies partial changes to the task identified by (taskID, ownerID).
// An absent task and a task owned by another user both surface as not-found.
func (srv *taskService) Update(ctx context.Context, ownerID, taskID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	patch, err := buildTaskPatch(input)
	if err != nil {
		return nil, err
	}

	task, err := srv.taskRepo.Update(ctx, taskID, ownerID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task not found or not owned")
		}
		srv.logger.Error("Failed to update task", slog.Any("taskID", taskID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update task")
	}

	return task, nil
}

// Delete removes the task identified by (taskID, ownerID).
func (srv *taskService) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if err := srv.taskRepo.Delete(ctx, taskID, ownerID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound.WrapMessage("task not found or not owned")
		}
		srv.logger.Error("Failed to delete task", slog.Any("taskID", taskID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete task")
	}

	srv.logger.Debug("Task deleted", slog.Any("taskID", taskID), slog.Any("ownerID", ownerID))

	return nil
}

// buildTaskPatch validates the partial update fields. Present-but-empty
// required fields are rejected; absent fields stay untouched.
func buildTaskPatch(input *usecase.UpdateTaskInput) (*entity.TaskPatch, error) {
	patch := &entity.TaskPatch{
		ContactEmail: input.ContactEmail,
		Completed:    input.Completed,
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("title must not be empty")
		}
		patch.Title = &title
	}

	if input.ScheduledDate != nil {
		if strings.TrimSpace(*input.ScheduledDate) == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("date must not be empty")
		}
		patch.ScheduledDate = input.ScheduledDate
	}

	if input.ScheduledTime != nil {
		if strings.TrimSpace(*input.ScheduledTime) == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("time must not be empty")
		}
		patch.ScheduledTime = input.ScheduledTime
	}

	return patch, nil
}
