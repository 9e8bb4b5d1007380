package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email      string     `gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null"`
	Password   string     `gorm:"type:varchar(255);not null"`
	Role       string     `gorm:"type:varchar(20);not null;default:'employee'"`
	FirstName  string     `gorm:"type:varchar(100);not null"`
	LastName   string     `gorm:"type:varchar(100);not null"`
	Department string     `gorm:"type:varchar(100)"`
	Position   string     `gorm:"type:varchar(100)"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	IsIntern   bool       `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
