package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/auth"
	projecterrors "github.com/AdityaPrasad7/EmployeeManagement-System/internal/project/errors"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/contextutil"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, managerID string, req CreateProjectRequest) (ProjectResponse, error)
	ListForManager(ctx context.Context, managerID string) ([]ProjectResponse, error)
	ListAll(ctx context.Context) ([]ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	Assign(ctx context.Context, actorID, actorRole, projectID string, req AssignEmployeesRequest) (AssignResult, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, managerID string, req CreateProjectRequest) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	mgrID, err := uuid.Parse(managerID)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidEmployeeID
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return ProjectResponse{}, err
	}

	p := &Project{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		ManagerID:   mgrID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create project persist failed", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, err
	}

	assignments := make([]Assignment, 0, len(req.EmployeeIDs))
	for _, raw := range dedupe(req.EmployeeIDs) {
		empID, err := uuid.Parse(raw)
		if err != nil {
			return ProjectResponse{}, projecterrors.ErrInvalidEmployeeID
		}
		assignments = append(assignments, Assignment{ProjectID: p.ID, EmployeeID: empID})
	}
	if err := s.repo.AddAssignments(ctx, assignments); err != nil {
		s.logger.Error("create project assign failed", zap.String("project_id", p.ID.String()), zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("create project success",
		zap.String("request_id", rid),
		zap.String("project_id", p.ID.String()),
		zap.Int("assigned", len(assignments)),
	)
	return s.toResponse(ctx, p)
}

func (s *service) ListForManager(ctx context.Context, managerID string) ([]ProjectResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, projecterrors.ErrInvalidEmployeeID
	}

	projects, err := s.repo.FindByManager(ctx, managerID)
	if err != nil {
		s.logger.Error("list manager projects failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}
	return s.toResponses(ctx, projects)
}

func (s *service) ListAll(ctx context.Context) ([]ProjectResponse, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list all projects failed", zap.Error(err))
		return nil, err
	}
	return s.toResponses(ctx, projects)
}

func (s *service) GetByID(ctx context.Context, id string) (ProjectResponse, error) {
	p, err := s.findByID(ctx, id)
	if err != nil {
		return ProjectResponse{}, err
	}
	return s.toResponse(ctx, p)
}

// Assign adds the given employees to the project, silently skipping ids
// that are already on it. Only the project's manager or HR may assign.
func (s *service) Assign(ctx context.Context, actorID, actorRole, projectID string, req AssignEmployeesRequest) (AssignResult, error) {
	rid := contextutil.GetRequestID(ctx)

	p, err := s.findByID(ctx, projectID)
	if err != nil {
		return AssignResult{}, err
	}
	if p.ManagerID.String() != actorID && actorRole != auth.RoleHR {
		return AssignResult{}, projecterrors.ErrNotProjectManager
	}

	existing, err := s.repo.ListAssignedEmployeeIDs(ctx, projectID)
	if err != nil {
		s.logger.Error("assign list existing failed", zap.String("project_id", projectID), zap.Error(err))
		return AssignResult{}, err
	}
	assigned := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		assigned[id] = true
	}

	result := AssignResult{Assigned: []string{}, Skipped: []string{}}
	var assignments []Assignment
	for _, raw := range dedupe(req.EmployeeIDs) {
		empID, err := uuid.Parse(raw)
		if err != nil {
			return AssignResult{}, projecterrors.ErrInvalidEmployeeID
		}
		if assigned[empID] {
			result.Skipped = append(result.Skipped, raw)
			continue
		}
		assignments = append(assignments, Assignment{ProjectID: p.ID, EmployeeID: empID})
		result.Assigned = append(result.Assigned, raw)
	}

	if err := s.repo.AddAssignments(ctx, assignments); err != nil {
		s.logger.Error("assign persist failed", zap.String("project_id", projectID), zap.Error(err))
		return AssignResult{}, err
	}

	s.logger.Info("assign employees success",
		zap.String("request_id", rid),
		zap.String("project_id", projectID),
		zap.Int("assigned", len(result.Assigned)),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

func (s *service) findByID(ctx context.Context, id string) (*Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, projecterrors.ErrInvalidProjectID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projecterrors.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) toResponse(ctx context.Context, p *Project) (ProjectResponse, error) {
	ids, err := s.repo.ListAssignedEmployeeIDs(ctx, p.ID.String())
	if err != nil {
		return ProjectResponse{}, err
	}

	employeeIDs := make([]string, len(ids))
	for i, id := range ids {
		employeeIDs[i] = id.String()
	}

	return ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate.Format("2006-01-02"),
		EndDate:     p.EndDate.Format("2006-01-02"),
		ManagerID:   p.ManagerID.String(),
		EmployeeIDs: employeeIDs,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *service) toResponses(ctx context.Context, projects []Project) ([]ProjectResponse, error) {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		resp, err := s.toResponse(ctx, &projects[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, projecterrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, projecterrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, projecterrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
