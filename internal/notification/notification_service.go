package notification

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const KindLeaveDecision = "leave_decision"

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"notification not found",
		http.StatusNotFound,
	)
	ErrNotNotificationOwner = apperror.New(
		apperror.CodeForbidden,
		"notification belongs to another employee",
		http.StatusForbidden,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)

type Service interface {
	Record(ctx context.Context, employeeID, kind, message string) error
	ListForEmployee(ctx context.Context, employeeID string, page, limit int) ([]NotificationResponse, int64, error)
	MarkRead(ctx context.Context, id, employeeID string) (NotificationResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Record(ctx context.Context, employeeID, kind, message string) error {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return ErrInvalidEmployeeID
	}

	n := &Notification{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Kind:       kind,
		Message:    message,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("record notification persist failed",
			zap.String("employee_id", employeeID),
			zap.String("kind", kind),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// ListForEmployee returns one page of the employee's notifications,
// newest first, plus the total count for pagination.
func (s *service) ListForEmployee(ctx context.Context, employeeID string, page, limit int) ([]NotificationResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total, err := s.repo.CountByEmployee(ctx, employeeID)
	if err != nil {
		return nil, 0, err
	}

	notifications, err := s.repo.FindAllByEmployee(ctx, employeeID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = mapToResponse(n)
	}
	return resp, total, nil
}

func (s *service) MarkRead(ctx context.Context, id, employeeID string) (NotificationResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotificationResponse{}, ErrNotificationNotFound
		}
		return NotificationResponse{}, err
	}

	if n.EmployeeID.String() != employeeID {
		return NotificationResponse{}, ErrNotNotificationOwner
	}

	if n.ReadAt == nil {
		now := time.Now().UTC()
		n.ReadAt = &now
		if err := s.repo.Update(ctx, n); err != nil {
			return NotificationResponse{}, err
		}
	}

	return mapToResponse(*n), nil
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:         n.ID.String(),
		EmployeeID: n.EmployeeID.String(),
		Kind:       n.Kind,
		Message:    n.Message,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		v := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &v
	}
	return resp
}
