package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/events"
	leaveerrors "github.com/AdityaPrasad7/EmployeeManagement-System/internal/leave/errors"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/messaging/kafka"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/contextutil"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListAll(ctx context.Context, employeeID string, month, year int) ([]LeaveResponse, error)
	UpdateDates(ctx context.Context, employeeID, leaveID string, req UpdateLeaveDatesRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, employeeID, leaveID string) error
	Approve(ctx context.Context, deciderID, leaveID string) (LeaveResponse, error)
	Reject(ctx context.Context, deciderID, leaveID string) (LeaveResponse, error)
	MonthlyBalance(ctx context.Context, employeeID string, year, month int) (LeaveBalanceResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("type", req.Type),
	)

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	startDate, endDate, days, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("submit leave invalid dates",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	l := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: empID,
		Type:       req.Type,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Reason:     req.Reason,
		Status:     StatusPending,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.Int("days", days),
	)
	return toResponse(l), nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}

	leaves, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list leaves failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return toResponses(leaves), nil
}

// ListAll is the HR view. An empty employeeID lists every request,
// otherwise only the given employee's. A non-zero month narrows the
// result to requests starting in that calendar month.
func (s *service) ListAll(ctx context.Context, employeeID string, month, year int) ([]LeaveResponse, error) {
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, leaveerrors.ErrInvalidEmployeeID
		}
	}

	var from, to time.Time
	if month != 0 || year != 0 {
		var err error
		from, to, err = monthWindow(year, month)
		if err != nil {
			return nil, err
		}
	}

	leaves, err := s.repo.FindAll(ctx, employeeID, from, to)
	if err != nil {
		s.logger.Error("list all leaves failed", zap.Error(err))
		return nil, err
	}
	return toResponses(leaves), nil
}

func (s *service) UpdateDates(ctx context.Context, employeeID, leaveID string, req UpdateLeaveDatesRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	l, err := s.findOwnedPending(ctx, employeeID, leaveID)
	if err != nil {
		return LeaveResponse{}, err
	}

	startDate, endDate, days, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	l.StartDate = startDate
	l.EndDate = endDate
	l.Days = days
	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("update leave dates persist failed",
			zap.String("request_id", rid),
			zap.String("leave_id", leaveID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("update leave dates success",
		zap.String("request_id", rid),
		zap.String("leave_id", leaveID),
		zap.Int("days", days),
	)
	return toResponse(l), nil
}

func (s *service) Cancel(ctx context.Context, employeeID, leaveID string) error {
	rid := contextutil.GetRequestID(ctx)

	l, err := s.findOwnedPending(ctx, employeeID, leaveID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, l.ID.String()); err != nil {
		s.logger.Error("cancel leave delete failed",
			zap.String("request_id", rid),
			zap.String("leave_id", leaveID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("cancel leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", leaveID),
	)
	return nil
}

func (s *service) Approve(ctx context.Context, deciderID, leaveID string) (LeaveResponse, error) {
	return s.decide(ctx, deciderID, leaveID, StatusApproved)
}

func (s *service) Reject(ctx context.Context, deciderID, leaveID string) (LeaveResponse, error) {
	return s.decide(ctx, deciderID, leaveID, StatusRejected)
}

// decide sets the final status without a pending-only guard: repeating a
// decision, or flipping an earlier one, just overwrites the status. The
// outbox event is written in the same transaction as the status change.
func (s *service) decide(ctx context.Context, deciderID, leaveID, status string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	l, err := s.findByID(ctx, leaveID)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("decide leave begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	l.Status = status
	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed",
			zap.String("request_id", rid),
			zap.String("leave_id", leaveID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if s.outbox != nil {
		event := events.LeaveStatusChangedEvent{
			EventType:  "leave_status_changed",
			LeaveID:    l.ID.String(),
			EmployeeID: l.EmployeeID.String(),
			LeaveType:  l.Type,
			Status:     status,
			Days:       l.Days,
			StartDate:  l.StartDate.Format("2006-01-02"),
			EndDate:    l.EndDate.Format("2006-01-02"),
			DecidedBy:  deciderID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return LeaveResponse{}, err
		}

		sqlTx, ok := tx.Statement.ConnPool.(*sql.Tx)
		if !ok {
			return LeaveResponse{}, errors.New("transaction does not expose a sql.Tx")
		}
		outboxRepo := s.outbox.WithTx(sqlTx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "leave_request",
			AggregateID:   l.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveStatusChangedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("decide leave outbox persist failed",
				zap.String("leave_id", leaveID),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("decide leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", leaveID),
		zap.String("status", status),
		zap.String("decided_by", deciderID),
	)
	return toResponse(l), nil
}

func (s *service) MonthlyBalance(ctx context.Context, employeeID string, year, month int) (LeaveBalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return LeaveBalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	from, to, err := monthWindow(year, month)
	if err != nil {
		return LeaveBalanceResponse{}, err
	}

	totals, err := s.repo.SumApprovedDaysByType(ctx, employeeID, from, to)
	if err != nil {
		s.logger.Error("monthly balance query failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return LeaveBalanceResponse{}, err
	}

	return LeaveBalanceResponse{
		Casual: LeaveTypeUsage{Used: totals[TypeCasual]},
		Sick:   LeaveTypeUsage{Used: totals[TypeSick]},
		Lop:    LeaveTypeUsage{Used: totals[TypeLop]},
		Month:  from.Format("2006-01"),
	}, nil
}

func (s *service) findByID(ctx context.Context, leaveID string) (*LeaveRequest, error) {
	if _, err := uuid.Parse(leaveID); err != nil {
		return nil, leaveerrors.ErrLeaveNotFound
	}

	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	return l, nil
}

func (s *service) findOwnedPending(ctx context.Context, employeeID, leaveID string) (*LeaveRequest, error) {
	l, err := s.findByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	if l.EmployeeID.String() != employeeID {
		return nil, leaveerrors.ErrNotRequestOwner
	}
	if l.Status != StatusPending {
		return nil, leaveerrors.ErrLeaveNotPending
	}
	return l, nil
}

// monthWindow returns [first of month, first of next month). A zero year
// means the current UTC year.
func monthWindow(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidMonth
	}
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0), nil
}

// parseDateRange validates both bounds and returns the inclusive day
// count, so a one-day leave (start == end) counts as 1.
func parseDateRange(start, end string) (time.Time, time.Time, int, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidDateRange
	}

	days := int(endDate.Sub(startDate).Hours()/24) + 1
	return startDate, endDate, days, nil
}

func toResponse(l *LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		Type:       l.Type,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		Days:       l.Days,
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  l.UpdatedAt.Format(time.RFC3339),
	}
}

func toResponses(leaves []LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for i := range leaves {
		out = append(out, toResponse(&leaves[i]))
	}
	return out
}
