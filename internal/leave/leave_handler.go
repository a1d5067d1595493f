package leave

import (
	"context"
	"net/http"
	"strconv"

	"github.com/BavyaVasu/leave-management/internal/domain"
	identityerrors "github.com/BavyaVasu/leave-management/internal/identity/errors"
	leaveerrors "github.com/BavyaVasu/leave-management/internal/leave/errors"
	"github.com/BavyaVasu/leave-management/internal/middleware"
	"github.com/BavyaVasu/leave-management/internal/shared/apperror"
	"github.com/BavyaVasu/leave-management/internal/shared/contextutil"
	"github.com/BavyaVasu/leave-management/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rbac    middleware.RBACService
	logger  *zap.Logger
}

// NewHandler needs rbac to decide whether a caller may view requests that
// are not their own.
func NewHandler(service Service, rbac middleware.RBACService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, rbac: rbac, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) actor(c *gin.Context) (uuid.UUID, bool) {
	id, ok := contextutil.GetEmployeeID(c.Request.Context())
	if !ok {
		h.writeServiceError(c, identityerrors.ErrNotAuthenticated)
	}
	return id, ok
}

func (h *Handler) requestID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, leaveerrors.ErrInvalidRequestID)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	actorID, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, h.service.Reject)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.decide(c, h.service.Cancel)
}

func (h *Handler) decide(c *gin.Context, op func(ctx context.Context, actorID, id uuid.UUID) (LeaveResponse, error)) {
	actorID, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.requestID(c)
	if !ok {
		return
	}

	resp, err := op(c.Request.Context(), actorID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// GetByID serves the caller's own requests, and anyone's to holders of
// leave_request:read_all.
func (h *Handler) GetByID(c *gin.Context) {
	actorID, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.requestID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if resp.RequestingEmployeeID != actorID.String() {
		allowed, err := h.rbac.Enforce(ctx, domain.EnforceRequest{
			EmployeeID: actorID,
			Resource:   "leave_request",
			Action:     "read_all",
		})
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		if !allowed {
			h.writeServiceError(c, apperror.ErrForbidden)
			return
		}
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListAll(c *gin.Context) {
	resp, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 {
		pageSize = 20
	}

	start, end := response.Paginate(len(resp.Requests), page, pageSize)
	meta := response.NewPaginationMeta(int64(len(resp.Requests)), page, pageSize)
	resp.Requests = resp.Requests[start:end]
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) MyLeave(c *gin.Context) {
	actorID, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.MyLeave(c.Request.Context(), actorID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
