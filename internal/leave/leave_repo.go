package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// FindAll lists every request, narrowed to one employee when employeeID
	// is set and to requests starting inside [from, to) when from is set.
	FindAll(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	Delete(ctx context.Context, id string) error
	// SumApprovedDaysByType filters on start_date only: a request spanning
	// a month boundary is attributed entirely to its start month.
	SumApprovedDaysByType(ctx context.Context, employeeID string, from, to time.Time) (map[string]int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository bound to the given transaction. A gorm
// transaction is itself a *gorm.DB, so every method runs inside it.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAll(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error) {
	db := r.db.WithContext(ctx)
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}
	if !from.IsZero() {
		db = db.Where("start_date >= ? AND start_date < ?", from, to)
	}

	var leaves []LeaveRequest
	err := db.Order("created_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&LeaveRequest{}, "id = ?", id).Error
}

func (r *repository) SumApprovedDaysByType(ctx context.Context, employeeID string, from, to time.Time) (map[string]int, error) {
	type typeTotal struct {
		Type  string
		Total int
	}

	var rows []typeTotal
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Select("type, COALESCE(SUM(days), 0) AS total").
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("start_date >= ? AND start_date < ?", from, to).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(rows))
	for _, row := range rows {
		totals[row.Type] = row.Total
	}
	return totals, nil
}
