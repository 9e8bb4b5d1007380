package category

import (
	"context"
	"errors"
	"net/http"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Category not found",
		http.StatusNotFound,
	)
	ErrParentCategoryRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Parent category is required for intern categories",
		http.StatusBadRequest,
	)
	ErrInvalidParentCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid parent category",
		http.StatusBadRequest,
	)
)

type Service interface {
	Create(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
	GetAll(ctx context.Context) ([]CategoryResponse, error)
	GetMain(ctx context.Context) ([]CategoryResponse, error)
	GetIntern(ctx context.Context) ([]CategoryResponse, error)
	GetByID(ctx context.Context, id string) (CategoryResponse, error)
	Update(ctx context.Context, id string, req UpdateCategoryRequest) (CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("category.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("category.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error) {
	parentID, err := s.resolveParent(ctx, req.IsInternCategory, req.ParentCategoryID)
	if err != nil {
		return CategoryResponse{}, err
	}
	if req.IsInternCategory && parentID == nil {
		return CategoryResponse{}, ErrParentCategoryRequired
	}

	c := &Category{
		ID:               uuid.New(),
		Name:             req.Name,
		Description:      req.Description,
		IsInternCategory: req.IsInternCategory,
		ParentCategoryID: parentID,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create category persist failed", zap.String("name", req.Name), zap.Error(err))
		return CategoryResponse{}, err
	}

	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(categories), nil
}

func (s *service) GetMain(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.repo.FindByInternFlag(ctx, false)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(categories), nil
}

func (s *service) GetIntern(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.repo.FindByInternFlag(ctx, true)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(categories), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CategoryResponse{}, ErrCategoryNotFound
		}
		return CategoryResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCategoryRequest) (CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CategoryResponse{}, ErrCategoryNotFound
		}
		return CategoryResponse{}, err
	}

	if req.Name != "" {
		c.Name = req.Name
	}
	if req.Description != "" {
		c.Description = req.Description
	}
	if req.IsInternCategory != nil {
		c.IsInternCategory = *req.IsInternCategory
	}
	if c.IsInternCategory {
		parentID, err := s.resolveParent(ctx, true, req.ParentCategoryID)
		if err != nil {
			return CategoryResponse{}, err
		}
		if parentID != nil {
			c.ParentCategoryID = parentID
		}
		if c.ParentCategoryID == nil {
			return CategoryResponse{}, ErrParentCategoryRequired
		}
	} else {
		c.ParentCategoryID = nil
	}

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("update category persist failed", zap.String("category_id", id), zap.Error(err))
		return CategoryResponse{}, err
	}

	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// resolveParent enforces the intern-category rule: intern categories must
// hang under a main category, non-intern categories never carry a parent.
func (s *service) resolveParent(ctx context.Context, isIntern bool, rawParentID *string) (*uuid.UUID, error) {
	if !isIntern {
		return nil, nil
	}
	if rawParentID == nil || *rawParentID == "" {
		return nil, nil
	}

	parentUUID, err := uuid.Parse(*rawParentID)
	if err != nil {
		return nil, ErrInvalidParentCategory
	}
	if _, err := s.repo.FindByID(ctx, parentUUID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidParentCategory
		}
		return nil, err
	}
	return &parentUUID, nil
}

func mapToResponse(c Category) CategoryResponse {
	resp := CategoryResponse{
		ID:               c.ID.String(),
		Name:             c.Name,
		Description:      c.Description,
		IsInternCategory: c.IsInternCategory,
	}
	if c.ParentCategoryID != nil {
		v := c.ParentCategoryID.String()
		resp.ParentCategoryID = &v
	}
	return resp
}

func mapToListResponse(categories []Category) []CategoryResponse {
	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = mapToResponse(c)
	}
	return resp
}
