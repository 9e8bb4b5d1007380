package task

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id string) (*Task, error)
	FindByProject(ctx context.Context, projectID string) ([]Task, error)
	FindByProjectAndAssignee(ctx context.Context, projectID, employeeID string) ([]Task, error)
	FindByAssignee(ctx context.Context, employeeID string) ([]Task, error)
	Update(ctx context.Context, t *Task) error
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

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindByProject(ctx context.Context, projectID string) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindByProjectAndAssignee(ctx context.Context, projectID, employeeID string) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND assigned_to_id = ?", projectID, employeeID).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindByAssignee(ctx context.Context, employeeID string) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).
		Where("assigned_to_id = ?", employeeID).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}
