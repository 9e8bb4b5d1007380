package category

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *Category) error
	FindAll(ctx context.Context) ([]Category, error)
	FindByInternFlag(ctx context.Context, isIntern bool) ([]Category, error)
	FindByID(ctx context.Context, id string) (*Category, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *repository) FindByInternFlag(ctx context.Context, isIntern bool) ([]Category, error) {
	var categories []Category
	err := r.db.WithContext(ctx).
		Where("is_intern_category = ?", isIntern).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Category, error) {
	var c Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Category{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, c *Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Category{}, "id = ?", id).Error
}
