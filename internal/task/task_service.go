package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/project"
	projecterrors "github.com/AdityaPrasad7/EmployeeManagement-System/internal/project/errors"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/contextutil"
	taskerrors "github.com/AdityaPrasad7/EmployeeManagement-System/internal/task/errors"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, creatorID string, req CreateTaskRequest) (TaskResponse, error)
	ListForProject(ctx context.Context, actorID, projectID string) ([]TaskResponse, error)
	ListAssigned(ctx context.Context, employeeID string) ([]TaskResponse, error)
	UpdateStatus(ctx context.Context, actorID, taskID string, req UpdateTaskStatusRequest) (TaskResponse, error)
}

type service struct {
	repo        Repository
	projectRepo project.Repository
	logger      *zap.Logger
}

func NewService(repo Repository, projectRepo project.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{repo: repo, projectRepo: projectRepo, logger: l}
}

func (s *service) Create(ctx context.Context, creatorID string, req CreateTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	creator, err := uuid.Parse(creatorID)
	if err != nil {
		return TaskResponse{}, projecterrors.ErrInvalidEmployeeID
	}
	assignee, err := uuid.Parse(req.AssignedTo)
	if err != nil {
		return TaskResponse{}, projecterrors.ErrInvalidEmployeeID
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidDueDate
	}

	p, err := s.findProject(ctx, req.ProjectID)
	if err != nil {
		return TaskResponse{}, err
	}

	onProject, err := s.projectRepo.IsAssigned(ctx, req.ProjectID, req.AssignedTo)
	if err != nil {
		s.logger.Error("create task assignment check failed", zap.String("project_id", req.ProjectID), zap.Error(err))
		return TaskResponse{}, err
	}
	if !onProject {
		return TaskResponse{}, taskerrors.ErrAssigneeNotOnProject
	}

	t := &Task{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		ProjectID:    p.ID,
		AssignedToID: assignee,
		AssignedByID: creator,
		DueDate:      dueDate,
		Status:       StatusPending,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create task persist failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}

	s.logger.Info("create task success",
		zap.String("request_id", rid),
		zap.String("task_id", t.ID.String()),
		zap.String("project_id", p.ID.String()),
	)
	return toResponse(t), nil
}

// ListForProject shows the manager every task on the project; anyone else
// sees only tasks assigned to them.
func (s *service) ListForProject(ctx context.Context, actorID, projectID string) ([]TaskResponse, error) {
	p, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var tasks []Task
	if p.ManagerID.String() == actorID {
		tasks, err = s.repo.FindByProject(ctx, projectID)
	} else {
		tasks, err = s.repo.FindByProjectAndAssignee(ctx, projectID, actorID)
	}
	if err != nil {
		s.logger.Error("list project tasks failed", zap.String("project_id", projectID), zap.Error(err))
		return nil, err
	}
	return toResponses(tasks), nil
}

func (s *service) ListAssigned(ctx context.Context, employeeID string) ([]TaskResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, projecterrors.ErrInvalidEmployeeID
	}

	tasks, err := s.repo.FindByAssignee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list assigned tasks failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return toResponses(tasks), nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID, taskID string, req UpdateTaskStatusRequest) (TaskResponse, error) {
	if _, err := uuid.Parse(taskID); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}

	t, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrTaskNotFound
		}
		return TaskResponse{}, err
	}

	if t.AssignedToID.String() != actorID {
		p, err := s.findProject(ctx, t.ProjectID.String())
		if err != nil {
			return TaskResponse{}, err
		}
		if p.ManagerID.String() != actorID {
			return TaskResponse{}, taskerrors.ErrNotTaskAssignee
		}
	}

	t.Status = req.Status
	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("update task status persist failed", zap.String("task_id", taskID), zap.Error(err))
		return TaskResponse{}, err
	}

	s.logger.Info("update task status success",
		zap.String("task_id", taskID),
		zap.String("status", req.Status),
	)
	return toResponse(t), nil
}

func (s *service) findProject(ctx context.Context, projectID string) (*project.Project, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return nil, projecterrors.ErrInvalidProjectID
	}

	p, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projecterrors.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func toResponse(t *Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		ProjectID:   t.ProjectID.String(),
		AssignedTo:  t.AssignedToID.String(),
		AssignedBy:  t.AssignedByID.String(),
		DueDate:     t.DueDate.Format("2006-01-02"),
		Status:      t.Status,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func toResponses(tasks []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toResponse(&tasks[i]))
	}
	return out
}
