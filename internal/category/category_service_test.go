package category_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/category"
)

type fakeCategoryRepository struct {
	createFn           func(ctx context.Context, c *category.Category) error
	findAllFn          func(ctx context.Context) ([]category.Category, error)
	findByInternFlagFn func(ctx context.Context, isIntern bool) ([]category.Category, error)
	findByIDFn         func(ctx context.Context, id string) (*category.Category, error)
	updateFn           func(ctx context.Context, c *category.Category) error
	deleteFn           func(ctx context.Context, id string) error
}

func (f *fakeCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeCategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, err := f.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (f *fakeCategoryRepository) FindAll(ctx context.Context) ([]category.Category, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeCategoryRepository) FindByInternFlag(ctx context.Context, isIntern bool) ([]category.Category, error) {
	if f.findByInternFlagFn != nil {
		return f.findByInternFlagFn(ctx, isIntern)
	}
	return nil, nil
}

func (f *fakeCategoryRepository) FindByID(ctx context.Context, id string) (*category.Category, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, c)
	}
	return nil
}

func (f *fakeCategoryRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("main category without parent", func(t *testing.T) {
		repo := &fakeCategoryRepository{}
		svc := category.NewService(repo)

		var created *category.Category
		repo.createFn = func(ctx context.Context, c *category.Category) error {
			created = c
			return nil
		}

		resp, err := svc.Create(ctx, category.CreateCategoryRequest{
			Name:        "Engineering",
			Description: "Product engineering",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.False(t, resp.IsInternCategory)
		assert.Nil(t, resp.ParentCategoryID)
		assert.NotNil(t, created)
		assert.Nil(t, created.ParentCategoryID)
	})

	t.Run("intern category under a parent", func(t *testing.T) {
		parentID := uuid.New()
		repo := &fakeCategoryRepository{
			findByIDFn: func(ctx context.Context, id string) (*category.Category, error) {
				assert.Equal(t, parentID.String(), id)
				return &category.Category{ID: parentID, Name: "Engineering"}, nil
			},
		}
		svc := category.NewService(repo)

		raw := parentID.String()
		resp, err := svc.Create(ctx, category.CreateCategoryRequest{
			Name:             "Engineering Interns",
			IsInternCategory: true,
			ParentCategoryID: &raw,
		})

		assert.NoError(t, err)
		assert.True(t, resp.IsInternCategory)
		assert.NotNil(t, resp.ParentCategoryID)
		assert.Equal(t, parentID.String(), *resp.ParentCategoryID)
	})

	t.Run("negative intern category without parent", func(t *testing.T) {
		svc := category.NewService(&fakeCategoryRepository{})

		_, err := svc.Create(ctx, category.CreateCategoryRequest{
			Name:             "Orphan Interns",
			IsInternCategory: true,
		})

		assert.ErrorIs(t, err, category.ErrParentCategoryRequired)
	})

	t.Run("negative unknown parent", func(t *testing.T) {
		repo := &fakeCategoryRepository{
			findByIDFn: func(ctx context.Context, id string) (*category.Category, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := category.NewService(repo)

		raw := uuid.New().String()
		_, err := svc.Create(ctx, category.CreateCategoryRequest{
			Name:             "Interns",
			IsInternCategory: true,
			ParentCategoryID: &raw,
		})

		assert.ErrorIs(t, err, category.ErrInvalidParentCategory)
	})
}

func TestCategoryService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("demoting to main clears the parent", func(t *testing.T) {
		parentID := uuid.New()
		existing := &category.Category{
			ID:               uuid.New(),
			Name:             "Interns",
			IsInternCategory: true,
			ParentCategoryID: &parentID,
		}

		repo := &fakeCategoryRepository{
			findByIDFn: func(ctx context.Context, id string) (*category.Category, error) {
				return existing, nil
			},
		}
		svc := category.NewService(repo)

		isIntern := false
		resp, err := svc.Update(ctx, existing.ID.String(), category.UpdateCategoryRequest{
			IsInternCategory: &isIntern,
		})

		assert.NoError(t, err)
		assert.False(t, resp.IsInternCategory)
		assert.Nil(t, resp.ParentCategoryID)
	})

	t.Run("negative unknown category", func(t *testing.T) {
		svc := category.NewService(&fakeCategoryRepository{})

		_, err := svc.Update(ctx, uuid.New().String(), category.UpdateCategoryRequest{Name: "X"})

		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("negative unknown category", func(t *testing.T) {
		svc := category.NewService(&fakeCategoryRepository{})

		err := svc.Delete(ctx, uuid.New().String())

		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}
