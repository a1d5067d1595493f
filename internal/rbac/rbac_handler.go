package rbac

import (
	"net/http"
	"strings"

	"github.com/BavyaVasu/leave-management/internal/domain"
	"github.com/BavyaVasu/leave-management/internal/identity"
	"github.com/BavyaVasu/leave-management/internal/shared/apperror"
	"github.com/BavyaVasu/leave-management/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service   Service
	directory identity.Directory
	logger    *zap.Logger
}

func NewHandler(service Service, directory identity.Directory, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, directory: directory, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("rbac request failed",
		zap.String("path", c.FullPath()),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Enforce answers whether the caller may perform the given action.
func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)
	if req.Resource == "" || req.Action == "" {
		h.writeError(c, apperror.RequiredField("resource and action"))
		return
	}

	employeeID, err := h.directory.CurrentEmployee(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	allowed, err := h.service.Enforce(c.Request.Context(), domain.EnforceRequest{
		EmployeeID: employeeID,
		Resource:   req.Resource,
		Action:     req.Action,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) MyPermissions(c *gin.Context) {
	employeeID, err := h.directory.CurrentEmployee(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	perms, err := h.service.Permissions(c.Request.Context(), employeeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, PermissionsResponse{
		EmployeeID:  employeeID.String(),
		Permissions: perms,
	}, nil)
}
