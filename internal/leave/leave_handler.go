package leave

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/apperror"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/contextutil"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/response"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	return NewHandlerWithRedis(service, nil, logger...)
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	res, err := h.service.Submit(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResult(c, res)
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) ListMine(c *gin.Context) {
	res, err := h.service.ListForEmployee(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ListAll(c *gin.Context) {
	month, year, ok := h.monthYearQuery(c)
	if !ok {
		return
	}

	res, err := h.service.ListAll(c.Request.Context(), "", month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ListByEmployee(c *gin.Context) {
	month, year, ok := h.monthYearQuery(c)
	if !ok {
		return
	}

	res, err := h.service.ListAll(c.Request.Context(), c.Param("employeeId"), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// monthYearQuery reads the optional month/year filter. Both stay zero when
// absent; a non-numeric value writes a 400 and reports !ok.
func (h *Handler) monthYearQuery(c *gin.Context) (month, year int, ok bool) {
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "month must be a number", nil)
			return 0, 0, false
		}
		month = parsed
	}
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "year must be a number", nil)
			return 0, 0, false
		}
		year = parsed
	}
	return month, year, true
}

func (h *Handler) UpdateDates(c *gin.Context) {
	var req UpdateLeaveDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	res, err := h.service.UpdateDates(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Leave request cancelled"}, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	res, err := h.service.Approve(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	res, err := h.service.Reject(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// Balance defaults to the current month when month/year query params are
// absent.
func (h *Handler) Balance(c *gin.Context) {
	now := time.Now().UTC()
	year := now.Year()
	month := int(now.Month())

	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "year must be a number", nil)
			return
		}
		year = parsed
	}
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "month must be a number", nil)
			return
		}
		month = parsed
	}

	res, err := h.service.MonthlyBalance(c.Request.Context(), c.GetString("user_id"), year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// cacheIdempotentResult stores the successful submit result under the key
// set by the idempotency middleware and releases its in-flight lock.
func (h *Handler) cacheIdempotentResult(c *gin.Context, res LeaveResponse) {
	cacheKey := c.GetString("idempotency_cache_key")
	if h.rdb == nil || cacheKey == "" {
		return
	}

	payload, err := json.Marshal(res)
	if err != nil {
		h.logger.Error("marshal idempotent result failed", zap.Error(err))
		return
	}
	if err := h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour).Err(); err != nil {
		h.logger.Error("cache idempotent result failed", zap.String("key", cacheKey), zap.Error(err))
	}
	if lockKey := c.GetString("idempotency_lock_key"); lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		contextutil.GetLogger(c.Request.Context(), h.logger).Error("leave request failed", zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}
