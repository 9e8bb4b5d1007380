package category_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/auth"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/category"
)

type fakeCategoryService struct {
	createCalled bool
}

func (f *fakeCategoryService) Create(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error) {
	f.createCalled = true
	return category.CategoryResponse{ID: uuid.New().String(), Name: req.Name}, nil
}
func (f *fakeCategoryService) GetAll(ctx context.Context) ([]category.CategoryResponse, error) {
	return nil, nil
}
func (f *fakeCategoryService) GetMain(ctx context.Context) ([]category.CategoryResponse, error) {
	return nil, nil
}
func (f *fakeCategoryService) GetIntern(ctx context.Context) ([]category.CategoryResponse, error) {
	return nil, nil
}
func (f *fakeCategoryService) GetByID(ctx context.Context, id string) (category.CategoryResponse, error) {
	return category.CategoryResponse{}, nil
}
func (f *fakeCategoryService) Update(ctx context.Context, id string, req category.UpdateCategoryRequest) (category.CategoryResponse, error) {
	return category.CategoryResponse{}, nil
}
func (f *fakeCategoryService) Delete(ctx context.Context, id string) error { return nil }

func setupCategoryRouter(role string) (*gin.Engine, *fakeCategoryService) {
	gin.SetMode(gin.TestMode)

	svc := &fakeCategoryService{}
	handler := category.NewHandler(svc)

	r := gin.New()
	authStub := func(c *gin.Context) {
		c.Set("user_id", uuid.New().String())
		c.Set("role", role)
		c.Next()
	}
	category.RegisterRoutes(r.Group("/api"), handler, authStub)
	return r, svc
}

func TestCategoryRoutes_WritesAreHROnly(t *testing.T) {
	body := `{"name":"Engineering"}`

	t.Run("hr can create", func(t *testing.T) {
		r, svc := setupCategoryRouter(auth.RoleHR)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, svc.createCalled)
	})

	t.Run("negative employee role is rejected", func(t *testing.T) {
		r, svc := setupCategoryRouter(auth.RoleEmployee)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, svc.createCalled)
	})
}
