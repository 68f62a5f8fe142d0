// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/repository"
	"agenda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface using GORM.
// Every statement carries the owner id in its WHERE clause; ownership is never
// checked with a separate read.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// ListByOwner retrieves all tasks owned by ownerID. The (created_at, id)
// ordering keeps repeated calls stable absent mutation.
func (repo *taskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	var taskModels []*model.TaskModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at, id").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks for owner")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// Create persists a new task for its owner.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Update applies the patch in one statement scoped by both id and owner id.
// The single WHERE id AND owner_id condition is the authorization boundary:
// a concurrent ownership change can never slip between a check and a write.
func (repo *taskRepository) Update(ctx context.Context, id, ownerID uuid.UUID, patch *entity.TaskPatch) (*entity.Task, error) {
	updates := patchColumns(patch)
	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).Model(&model.TaskModel{}).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Updates(updates)
		if result.Error != nil {
			return nil, errors.Wrap(result.Error, "failed to update task")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrTaskNotFound
		}
	}

	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to reload task after update")
	}

	return toTaskDomain(&taskM), nil
}

// Delete removes the task in one statement scoped by both id and owner id,
// with the same not-found semantics as Update.
func (repo *taskRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// patchColumns maps the non-nil patch fields to their column updates.
func patchColumns(patch *entity.TaskPatch) map[string]any {
	updates := make(map[string]any)
	if patch == nil {
		return updates
	}

	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.ContactEmail != nil {
		updates["contact_email"] = *patch.ContactEmail
	}
	if patch.ScheduledDate != nil {
		updates["scheduled_date"] = *patch.ScheduledDate
	}
	if patch.ScheduledTime != nil {
		updates["scheduled_time"] = *patch.ScheduledTime
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}

	return updates
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Title:         data.Title,
		ContactEmail:  data.ContactEmail,
		ScheduledDate: data.ScheduledDate,
		ScheduledTime: data.ScheduledTime,
		Completed:     data.Completed,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel for persistence.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Title:         data.Title,
		ContactEmail:  data.ContactEmail,
		ScheduledDate: data.ScheduledDate,
		ScheduledTime: data.ScheduledTime,
		Completed:     data.Completed,
	}
}
