// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a single dated/timed item on a user's private list.
// A task is only ever visible to, mutable by, or deletable by its owner.
type Task struct {
	ID            uuid.UUID // The unique identifier for the task, generated at creation.
	OwnerID       uuid.UUID // Links the task to the User that owns it. Required.
	Title         string    // Short description of the task. Required, non-empty.
	ContactEmail  string    // Optional free-text email annotation. Not validated against the user table.
	ScheduledDate string    // The task's date as entered by the user. No timezone normalization.
	ScheduledTime string    // The task's time as entered by the user. No timezone normalization.
	Completed     bool      // Whether the task is done. Defaults to false.
	CreatedAt     time.Time // Timestamp of when this task was created. Immutable.
	UpdatedAt     time.Time // Timestamp of the last modification to this task.
}

// TaskPatch carries the partial fields of a task update.
// Nil fields are left untouched by the store.
type TaskPatch struct {
	Title         *string
	ContactEmail  *string
	ScheduledDate *string
	ScheduledTime *string
	Completed     *bool
}

// IsEmpty reports whether the patch contains no changes.
func (p *TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.ContactEmail == nil && p.ScheduledDate == nil &&
		p.ScheduledTime == nil && p.Completed == nil
}
