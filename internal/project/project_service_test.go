package project_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/auth"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/project"
	projecterrors "github.com/AdityaPrasad7/EmployeeManagement-System/internal/project/errors"
)

type fakeProjectRepository struct {
	createFn                  func(ctx context.Context, p *project.Project) error
	findByIDFn                func(ctx context.Context, id string) (*project.Project, error)
	findByManagerFn           func(ctx context.Context, managerID string) ([]project.Project, error)
	findAllFn                 func(ctx context.Context) ([]project.Project, error)
	listAssignedEmployeeIDsFn func(ctx context.Context, projectID string) ([]uuid.UUID, error)
	addAssignmentsFn          func(ctx context.Context, assignments []project.Assignment) error
	isAssignedFn              func(ctx context.Context, projectID, employeeID string) (bool, error)
}

func (f *fakeProjectRepository) WithTx(tx *gorm.DB) project.Repository { return f }

func (f *fakeProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakeProjectRepository) FindByID(ctx context.Context, id string) (*project.Project, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProjectRepository) FindByManager(ctx context.Context, managerID string) ([]project.Project, error) {
	if f.findByManagerFn != nil {
		return f.findByManagerFn(ctx, managerID)
	}
	return nil, nil
}

func (f *fakeProjectRepository) FindAll(ctx context.Context) ([]project.Project, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeProjectRepository) ListAssignedEmployeeIDs(ctx context.Context, projectID string) ([]uuid.UUID, error) {
	if f.listAssignedEmployeeIDsFn != nil {
		return f.listAssignedEmployeeIDsFn(ctx, projectID)
	}
	return nil, nil
}

func (f *fakeProjectRepository) AddAssignments(ctx context.Context, assignments []project.Assignment) error {
	if f.addAssignmentsFn != nil {
		return f.addAssignmentsFn(ctx, assignments)
	}
	return nil
}

func (f *fakeProjectRepository) IsAssigned(ctx context.Context, projectID, employeeID string) (bool, error) {
	if f.isAssignedFn != nil {
		return f.isAssignedFn(ctx, projectID, employeeID)
	}
	return false, nil
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()
	managerID := uuid.New().String()

	t.Run("success assigns the initial team", func(t *testing.T) {
		repo := &fakeProjectRepository{}
		svc := project.NewService(repo)

		emp1 := uuid.New().String()
		emp2 := uuid.New().String()

		var assigned []project.Assignment
		repo.addAssignmentsFn = func(ctx context.Context, a []project.Assignment) error {
			assigned = a
			return nil
		}

		resp, err := svc.Create(ctx, managerID, project.CreateProjectRequest{
			Name:        "Onboarding portal",
			StartDate:   "2026-01-10",
			EndDate:     "2026-06-30",
			EmployeeIDs: []string{emp1, emp2, emp1}, // duplicate collapses
		})

		assert.NoError(t, err)
		assert.Equal(t, managerID, resp.ManagerID)
		assert.Len(t, assigned, 2)
	})

	t.Run("negative end before start", func(t *testing.T) {
		svc := project.NewService(&fakeProjectRepository{})

		_, err := svc.Create(ctx, managerID, project.CreateProjectRequest{
			Name:      "Backwards",
			StartDate: "2026-06-30",
			EndDate:   "2026-01-10",
		})

		assert.ErrorIs(t, err, projecterrors.ErrInvalidDateRange)
	})
}

func TestProjectService_Assign(t *testing.T) {
	ctx := context.Background()
	managerID := uuid.New()
	alreadyAssigned := uuid.New()
	proj := &project.Project{ID: uuid.New(), Name: "Payroll revamp", ManagerID: managerID}

	repoWith := func(addFn func(ctx context.Context, a []project.Assignment) error) *fakeProjectRepository {
		return &fakeProjectRepository{
			findByIDFn: func(ctx context.Context, id string) (*project.Project, error) {
				return proj, nil
			},
			listAssignedEmployeeIDsFn: func(ctx context.Context, projectID string) ([]uuid.UUID, error) {
				return []uuid.UUID{alreadyAssigned}, nil
			},
			addAssignmentsFn: addFn,
		}
	}

	t.Run("skips employees already on the project", func(t *testing.T) {
		newcomer := uuid.New()

		var added []project.Assignment
		svc := project.NewService(repoWith(func(ctx context.Context, a []project.Assignment) error {
			added = a
			return nil
		}))

		result, err := svc.Assign(ctx, managerID.String(), "employee", proj.ID.String(),
			project.AssignEmployeesRequest{
				EmployeeIDs: []string{alreadyAssigned.String(), newcomer.String()},
			})

		assert.NoError(t, err)
		assert.Equal(t, []string{newcomer.String()}, result.Assigned)
		assert.Equal(t, []string{alreadyAssigned.String()}, result.Skipped)
		assert.Len(t, added, 1)
		assert.Equal(t, newcomer, added[0].EmployeeID)
	})

	t.Run("hr may assign on any project", func(t *testing.T) {
		svc := project.NewService(repoWith(nil))

		_, err := svc.Assign(ctx, uuid.New().String(), auth.RoleHR, proj.ID.String(),
			project.AssignEmployeesRequest{EmployeeIDs: []string{uuid.New().String()}})

		assert.NoError(t, err)
	})

	t.Run("negative non-manager cannot assign", func(t *testing.T) {
		svc := project.NewService(repoWith(nil))

		_, err := svc.Assign(ctx, uuid.New().String(), "employee", proj.ID.String(),
			project.AssignEmployeesRequest{EmployeeIDs: []string{uuid.New().String()}})

		assert.ErrorIs(t, err, projecterrors.ErrNotProjectManager)
	})

	t.Run("negative unknown project", func(t *testing.T) {
		svc := project.NewService(&fakeProjectRepository{})

		_, err := svc.Assign(ctx, managerID.String(), "employee", uuid.New().String(),
			project.AssignEmployeesRequest{EmployeeIDs: []string{uuid.New().String()}})

		assert.ErrorIs(t, err, projecterrors.ErrProjectNotFound)
	})
}
