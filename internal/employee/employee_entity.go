package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is the HR-facing view of the same users table the auth package
// authenticates against. Both models must stay column-compatible.
type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// EmployeeNumber stays non-unique at the schema level: rows created
	// through auth registration have none, and Postgres would treat the
	// repeated empty string as a duplicate. The counter keeps generated
	// numbers distinct.
	EmployeeNumber string `gorm:"type:varchar(20);index"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null"`
	Password       string     `gorm:"type:varchar(255);not null"`
	Role           string     `gorm:"type:varchar(20);not null;default:'employee'"`
	FirstName      string     `gorm:"type:varchar(100);not null"`
	LastName       string     `gorm:"type:varchar(100);not null"`
	Department     string     `gorm:"type:varchar(100)"`
	Position       string     `gorm:"type:varchar(100)"`
	CategoryID     *uuid.UUID `gorm:"type:uuid;index"`
	IsIntern       bool       `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "users"
}
