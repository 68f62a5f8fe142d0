package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel mirrors the 'tasks' table. OwnerID references users.id and cascades deletion.
type TaskModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:text;not null"`
	ContactEmail  string    `gorm:"type:varchar(255)"`
	ScheduledDate string    `gorm:"type:varchar(40);not null"`
	ScheduledTime string    `gorm:"type:varchar(40);not null"`
	Completed     bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
