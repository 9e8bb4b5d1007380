package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/leave"
	leaveerrors "github.com/AdityaPrasad7/EmployeeManagement-System/internal/leave/errors"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	submitFn          func(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error)
	listForEmployeeFn func(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error)
	listAllFn         func(ctx context.Context, employeeID string, month, year int) ([]leave.LeaveResponse, error)
	updateDatesFn     func(ctx context.Context, employeeID, leaveID string, req leave.UpdateLeaveDatesRequest) (leave.LeaveResponse, error)
	cancelFn          func(ctx context.Context, employeeID, leaveID string) error
	approveFn         func(ctx context.Context, deciderID, leaveID string) (leave.LeaveResponse, error)
	rejectFn          func(ctx context.Context, deciderID, leaveID string) (leave.LeaveResponse, error)
	monthlyBalanceFn  func(ctx context.Context, employeeID string, year, month int) (leave.LeaveBalanceResponse, error)
}

func (f *fakeLeaveService) Submit(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	return f.submitFn(ctx, employeeID, req)
}
func (f *fakeLeaveService) ListForEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	return f.listForEmployeeFn(ctx, employeeID)
}
func (f *fakeLeaveService) ListAll(ctx context.Context, employeeID string, month, year int) ([]leave.LeaveResponse, error) {
	return f.listAllFn(ctx, employeeID, month, year)
}
func (f *fakeLeaveService) UpdateDates(ctx context.Context, employeeID, leaveID string, req leave.UpdateLeaveDatesRequest) (leave.LeaveResponse, error) {
	return f.updateDatesFn(ctx, employeeID, leaveID, req)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, employeeID, leaveID string) error {
	return f.cancelFn(ctx, employeeID, leaveID)
}
func (f *fakeLeaveService) Approve(ctx context.Context, deciderID, leaveID string) (leave.LeaveResponse, error) {
	return f.approveFn(ctx, deciderID, leaveID)
}
func (f *fakeLeaveService) Reject(ctx context.Context, deciderID, leaveID string) (leave.LeaveResponse, error) {
	return f.rejectFn(ctx, deciderID, leaveID)
}
func (f *fakeLeaveService) MonthlyBalance(ctx context.Context, employeeID string, year, month int) (leave.LeaveBalanceResponse, error) {
	return f.monthlyBalanceFn(ctx, employeeID, year, month)
}

func TestLeaveHandler_Submit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		employeeID := uuid.New().String()

		svc := &fakeLeaveService{
			submitFn: func(ctx context.Context, eid string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, employeeID, eid)
				assert.Equal(t, leave.TypeCasual, req.Type)
				return leave.LeaveResponse{
					ID:         uuid.New().String(),
					EmployeeID: eid,
					Type:       req.Type,
					StartDate:  req.StartDate,
					EndDate:    req.EndDate,
					Days:       2,
					Reason:     req.Reason,
					Status:     leave.StatusPending,
				}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"type":"casual","startDate":"2026-03-10","endDate":"2026-03-11","reason":"Family matters"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", employeeID)

		h.Submit(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, employeeID, got.EmployeeID)
		assert.Equal(t, 2, got.Days)
		assert.Equal(t, leave.StatusPending, got.Status)
	})

	t.Run("negative validation error", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
	})

	t.Run("negative unknown type rejected by binding", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"type":"sabbatical","startDate":"2026-03-10","endDate":"2026-03-11","reason":"x"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_UpdateDates(t *testing.T) {
	t.Run("negative not owner maps to 403", func(t *testing.T) {
		svc := &fakeLeaveService{
			updateDatesFn: func(ctx context.Context, employeeID, leaveID string, req leave.UpdateLeaveDatesRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrNotRequestOwner
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"startDate":"2026-03-10","endDate":"2026-03-11"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/leave/x/dates", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", uuid.New().String())
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

		h.UpdateDates(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})

	t.Run("negative approved request maps to 400", func(t *testing.T) {
		svc := &fakeLeaveService{
			updateDatesFn: func(ctx context.Context, employeeID, leaveID string, req leave.UpdateLeaveDatesRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotPending
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"startDate":"2026-03-10","endDate":"2026-03-11"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/leave/x/dates", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", uuid.New().String())

		h.UpdateDates(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_Cancel(t *testing.T) {
	t.Run("negative missing request maps to 404", func(t *testing.T) {
		svc := &fakeLeaveService{
			cancelFn: func(ctx context.Context, employeeID, leaveID string) error {
				return leaveerrors.ErrLeaveNotFound
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/leave/x", nil)
		c.Set("user_id", uuid.New().String())

		h.Cancel(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLeaveHandler_Balance(t *testing.T) {
	t.Run("explicit month and year are forwarded", func(t *testing.T) {
		employeeID := uuid.New().String()

		svc := &fakeLeaveService{
			monthlyBalanceFn: func(ctx context.Context, eid string, year, month int) (leave.LeaveBalanceResponse, error) {
				assert.Equal(t, employeeID, eid)
				assert.Equal(t, 2026, year)
				assert.Equal(t, 2, month)
				return leave.LeaveBalanceResponse{
					Casual: leave.LeaveTypeUsage{Used: 3},
					Month:  "2026-02",
				}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave/balance?year=2026&month=2", nil)
		c.Set("user_id", employeeID)

		h.Balance(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveBalanceResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, 3, got.Casual.Used)
		assert.Equal(t, "2026-02", got.Month)
	})

	t.Run("negative non-numeric month", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave/balance?month=march", nil)
		c.Set("user_id", uuid.New().String())

		h.Balance(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_ListByEmployee(t *testing.T) {
	t.Run("success forwards month and year filter", func(t *testing.T) {
		employeeID := uuid.New().String()

		svc := &fakeLeaveService{
			listAllFn: func(ctx context.Context, eid string, month, year int) ([]leave.LeaveResponse, error) {
				assert.Equal(t, employeeID, eid)
				assert.Equal(t, 3, month)
				assert.Equal(t, 2026, year)
				return []leave.LeaveResponse{{ID: uuid.New().String(), EmployeeID: eid}}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave/employee/"+employeeID+"?month=3&year=2026", nil)
		c.Params = gin.Params{{Key: "employeeId", Value: employeeID}}

		h.ListByEmployee(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("success without filter passes zero month and year", func(t *testing.T) {
		employeeID := uuid.New().String()

		svc := &fakeLeaveService{
			listAllFn: func(ctx context.Context, eid string, month, year int) ([]leave.LeaveResponse, error) {
				assert.Equal(t, 0, month)
				assert.Equal(t, 0, year)
				return nil, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave/employee/"+employeeID, nil)
		c.Params = gin.Params{{Key: "employeeId", Value: employeeID}}

		h.ListByEmployee(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative non-numeric month", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave/employee/x?month=march", nil)
		c.Params = gin.Params{{Key: "employeeId", Value: "x"}}

		h.ListByEmployee(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}
