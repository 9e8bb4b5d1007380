package project

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, id string) (*Project, error)
	FindByManager(ctx context.Context, managerID string) ([]Project, error)
	FindAll(ctx context.Context) ([]Project, error)
	ListAssignedEmployeeIDs(ctx context.Context, projectID string) ([]uuid.UUID, error)
	AddAssignments(ctx context.Context, assignments []Assignment) error
	IsAssigned(ctx context.Context, projectID, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByManager(ctx context.Context, managerID string) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *repository) FindAll(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *repository) ListAssignedEmployeeIDs(ctx context.Context, projectID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&Assignment{}).
		Where("project_id = ?", projectID).
		Pluck("employee_id", &ids).Error
	return ids, err
}

func (r *repository) AddAssignments(ctx context.Context, assignments []Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&assignments).Error
}

func (r *repository) IsAssigned(ctx context.Context, projectID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Assignment{}).
		Where("project_id = ? AND employee_id = ?", projectID, employeeID).
		Count(&count).Error
	return count > 0, err
}
