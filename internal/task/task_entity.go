package task

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

type Task struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedToID uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedByID uuid.UUID `gorm:"type:uuid;not null"`
	DueDate      time.Time `gorm:"type:date;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
