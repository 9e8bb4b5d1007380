package category

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string     `gorm:"type:varchar(100);uniqueIndex:uq_categories_name;not null"`
	Description      string     `gorm:"type:text"`
	IsInternCategory bool       `gorm:"default:false"`
	ParentCategoryID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
