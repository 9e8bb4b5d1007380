package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeCasual = "casual"
	TypeSick   = "sick"
	TypeLop    = "lop"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_start"`

	Type      string    `gorm:"type:varchar(20);not null"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_start"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Days      int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text;not null"`

	Status string `gorm:"type:varchar(20);not null;default:'pending';index:idx_leave_requests_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Cancellation is a hard delete, so no gorm.DeletedAt here: a cancelled
// pending request leaves no trace in balance aggregation.
