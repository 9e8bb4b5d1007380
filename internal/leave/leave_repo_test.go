package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/leave"
)

func setupLeaveRepoTest(t *testing.T) (leave.Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return leave.NewRepository(gdb), sqlMock, func() { db.Close() }
}

func TestLeaveRepository_SumApprovedDaysByType(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	t.Run("aggregates approved days per type over the start_date window", func(t *testing.T) {
		repo, sqlMock, cleanup := setupLeaveRepoTest(t)
		defer cleanup()

		// The filter is employee + status + start_date window and nothing
		// else: a request ending in a later month still counts here in full.
		sqlMock.ExpectQuery(`SELECT type, COALESCE\(SUM\(days\), 0\) AS total FROM "leave_requests" WHERE employee_id = \$1 AND status = \$2 AND \(start_date >= \$3 AND start_date < \$4\) GROUP BY "type"`).
			WithArgs(employeeID, leave.StatusApproved, from, to).
			WillReturnRows(sqlmock.NewRows([]string{"type", "total"}).
				AddRow(leave.TypeCasual, 3).
				AddRow(leave.TypeSick, 1))

		totals, err := repo.SumApprovedDaysByType(ctx, employeeID, from, to)

		assert.NoError(t, err)
		assert.Equal(t, map[string]int{leave.TypeCasual: 3, leave.TypeSick: 1}, totals)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("empty result yields an empty map", func(t *testing.T) {
		repo, sqlMock, cleanup := setupLeaveRepoTest(t)
		defer cleanup()

		sqlMock.ExpectQuery(`SELECT type, COALESCE\(SUM\(days\), 0\) AS total FROM "leave_requests"`).
			WithArgs(employeeID, leave.StatusApproved, from, to).
			WillReturnRows(sqlmock.NewRows([]string{"type", "total"}))

		totals, err := repo.SumApprovedDaysByType(ctx, employeeID, from, to)

		assert.NoError(t, err)
		assert.Empty(t, totals)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	t.Run("applies employee and start_date window filters", func(t *testing.T) {
		repo, sqlMock, cleanup := setupLeaveRepoTest(t)
		defer cleanup()

		id := uuid.New()
		sqlMock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE employee_id = \$1 AND \(start_date >= \$2 AND start_date < \$3\) ORDER BY created_at DESC`).
			WithArgs(employeeID, from, to).
			WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "type", "days", "status"}).
				AddRow(id.String(), employeeID, leave.TypeCasual, 2, leave.StatusApproved))

		leaves, err := repo.FindAll(ctx, employeeID, from, to)

		assert.NoError(t, err)
		assert.Len(t, leaves, 1)
		assert.Equal(t, id, leaves[0].ID)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("no filters lists everything", func(t *testing.T) {
		repo, sqlMock, cleanup := setupLeaveRepoTest(t)
		defer cleanup()

		sqlMock.ExpectQuery(`SELECT \* FROM "leave_requests" ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id"}))

		leaves, err := repo.FindAll(ctx, "", time.Time{}, time.Time{})

		assert.NoError(t, err)
		assert.Empty(t, leaves)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
