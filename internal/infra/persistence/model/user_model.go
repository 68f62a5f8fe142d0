package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	ExternalID     *string   `gorm:"type:varchar(255);unique"`
	IdentitySource string    `gorm:"type:varchar(20);not null;default:local"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Tasks    []TaskModel    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Sessions []SessionModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
