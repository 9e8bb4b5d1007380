package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/notification"
)

type fakeNotificationRepository struct {
	createFn            func(ctx context.Context, n *notification.Notification) error
	findAllByEmployeeFn func(ctx context.Context, employeeID string, limit, offset int) ([]notification.Notification, error)
	countByEmployeeFn   func(ctx context.Context, employeeID string) (int64, error)
	findByIDFn          func(ctx context.Context, id string) (*notification.Notification, error)
	updateFn            func(ctx context.Context, n *notification.Notification) error
}

func (f *fakeNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if f.createFn != nil {
		return f.createFn(ctx, n)
	}
	return nil
}

func (f *fakeNotificationRepository) FindAllByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]notification.Notification, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID, limit, offset)
	}
	return nil, nil
}

func (f *fakeNotificationRepository) CountByEmployee(ctx context.Context, employeeID string) (int64, error) {
	if f.countByEmployeeFn != nil {
		return f.countByEmployeeFn(ctx, employeeID)
	}
	return 0, nil
}

func (f *fakeNotificationRepository) FindByID(ctx context.Context, id string) (*notification.Notification, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, n)
	}
	return nil
}

func TestNotificationService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("success persists the row", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		var created *notification.Notification
		repo.createFn = func(ctx context.Context, n *notification.Notification) error {
			created = n
			return nil
		}
		svc := notification.NewService(repo)

		employeeID := uuid.New().String()
		err := svc.Record(ctx, employeeID, notification.KindLeaveDecision, "Your casual leave request was approved")

		assert.NoError(t, err)
		assert.Equal(t, employeeID, created.EmployeeID.String())
		assert.Equal(t, notification.KindLeaveDecision, created.Kind)
	})

	t.Run("negative invalid employee id", func(t *testing.T) {
		svc := notification.NewService(&fakeNotificationRepository{})

		err := svc.Record(ctx, "not-a-uuid", notification.KindLeaveDecision, "msg")

		assert.ErrorIs(t, err, notification.ErrInvalidEmployeeID)
	})
}

func TestNotificationService_ListForEmployee(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("pages with total count", func(t *testing.T) {
		var gotLimit, gotOffset int
		repo := &fakeNotificationRepository{
			countByEmployeeFn: func(ctx context.Context, id string) (int64, error) {
				return 45, nil
			},
			findAllByEmployeeFn: func(ctx context.Context, id string, limit, offset int) ([]notification.Notification, error) {
				gotLimit, gotOffset = limit, offset
				return []notification.Notification{
					{ID: uuid.New(), EmployeeID: uuid.MustParse(employeeID), Kind: notification.KindLeaveDecision, Message: "approved"},
				}, nil
			},
		}
		svc := notification.NewService(repo)

		resp, total, err := svc.ListForEmployee(ctx, employeeID, 3, 10)

		assert.NoError(t, err)
		assert.Equal(t, int64(45), total)
		assert.Equal(t, 10, gotLimit)
		assert.Equal(t, 20, gotOffset)
		assert.Len(t, resp, 1)
	})

	t.Run("out of range paging falls back to defaults", func(t *testing.T) {
		var gotLimit, gotOffset int
		repo := &fakeNotificationRepository{
			findAllByEmployeeFn: func(ctx context.Context, id string, limit, offset int) ([]notification.Notification, error) {
				gotLimit, gotOffset = limit, offset
				return nil, nil
			},
		}
		svc := notification.NewService(repo)

		_, _, err := svc.ListForEmployee(ctx, employeeID, 0, 500)

		assert.NoError(t, err)
		assert.Equal(t, 20, gotLimit)
		assert.Equal(t, 0, gotOffset)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	unread := func() *notification.Notification {
		return &notification.Notification{
			ID:         uuid.New(),
			EmployeeID: owner,
			Kind:       notification.KindLeaveDecision,
			Message:    "rejected",
			CreatedAt:  time.Now().UTC(),
		}
	}

	t.Run("sets read timestamp once", func(t *testing.T) {
		n := unread()
		var updated bool
		repo := &fakeNotificationRepository{
			findByIDFn: func(ctx context.Context, id string) (*notification.Notification, error) {
				return n, nil
			},
			updateFn: func(ctx context.Context, got *notification.Notification) error {
				updated = true
				return nil
			},
		}
		svc := notification.NewService(repo)

		resp, err := svc.MarkRead(ctx, n.ID.String(), owner.String())

		assert.NoError(t, err)
		assert.True(t, updated)
		assert.NotNil(t, resp.ReadAt)
	})

	t.Run("already read skips the update", func(t *testing.T) {
		n := unread()
		readAt := time.Now().UTC().Add(-time.Hour)
		n.ReadAt = &readAt
		repo := &fakeNotificationRepository{
			findByIDFn: func(ctx context.Context, id string) (*notification.Notification, error) {
				return n, nil
			},
			updateFn: func(ctx context.Context, got *notification.Notification) error {
				t.Fatal("update should not be called")
				return nil
			},
		}
		svc := notification.NewService(repo)

		resp, err := svc.MarkRead(ctx, n.ID.String(), owner.String())

		assert.NoError(t, err)
		assert.NotNil(t, resp.ReadAt)
	})

	t.Run("negative other employee cannot mark it", func(t *testing.T) {
		n := unread()
		repo := &fakeNotificationRepository{
			findByIDFn: func(ctx context.Context, id string) (*notification.Notification, error) {
				return n, nil
			},
		}
		svc := notification.NewService(repo)

		_, err := svc.MarkRead(ctx, n.ID.String(), uuid.New().String())

		assert.ErrorIs(t, err, notification.ErrNotNotificationOwner)
	})

	t.Run("negative unknown notification", func(t *testing.T) {
		svc := notification.NewService(&fakeNotificationRepository{})

		_, err := svc.MarkRead(ctx, uuid.New().String(), owner.String())

		assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
	})
}
