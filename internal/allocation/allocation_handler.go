package allocation

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	allocationerrors "github.com/BavyaVasu/leave-management/internal/allocation/errors"
	identityerrors "github.com/BavyaVasu/leave-management/internal/identity/errors"
	leavetypeerrors "github.com/BavyaVasu/leave-management/internal/leavetype/errors"
	"github.com/BavyaVasu/leave-management/internal/shared/apperror"
	"github.com/BavyaVasu/leave-management/internal/shared/contextutil"
	"github.com/BavyaVasu/leave-management/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("allocation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("allocation.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("allocation request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// period reads ?period and falls back to the current year.
func (h *Handler) period(c *gin.Context) (int, error) {
	raw := c.Query("period")
	if raw == "" {
		return h.service.CurrentPeriod(), nil
	}
	p, err := strconv.Atoi(raw)
	if err != nil || p < 1 {
		return 0, allocationerrors.ErrInvalidPeriod
	}
	return p, nil
}

func (h *Handler) Generate(c *gin.Context) {
	leaveTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, leavetypeerrors.ErrInvalidLeaveTypeID)
		return
	}

	var req GenerateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	period := h.service.CurrentPeriod()
	if req.Period != nil {
		period = *req.Period
	}

	resp, err := h.service.GenerateYearlyAllocation(c.Request.Context(), leaveTypeID, period)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListEmployees(c *gin.Context) {
	resp, err := h.service.ListEmployees(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListByEmployee(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, allocationerrors.ErrInvalidEmployeeID)
		return
	}
	h.list(c, employeeID)
}

func (h *Handler) Mine(c *gin.Context) {
	employeeID, ok := contextutil.GetEmployeeID(c.Request.Context())
	if !ok {
		h.writeServiceError(c, identityerrors.ErrNotAuthenticated)
		return
	}
	h.list(c, employeeID)
}

func (h *Handler) list(c *gin.Context, employeeID uuid.UUID) {
	period, err := h.period(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListByEmployee(c.Request.Context(), employeeID, period)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateNumberOfDays(c *gin.Context) {
	allocationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, allocationerrors.ErrInvalidAllocationID)
		return
	}

	var req UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateNumberOfDays(c.Request.Context(), allocationID, *req.NumberOfDays)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
