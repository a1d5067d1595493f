package leavetype

import (
	"github.com/BavyaVasu/leave-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
) {
	types := r.Group("/leave-types")
	types.Use(auth)
	{
		types.GET("",
			middleware.RateLimitByEmployee(5, 20),
			middleware.RBACAuthorize(rbacService, "leave_type", "read"),
			handler.GetAll,
		)
		types.GET("/:id",
			middleware.RateLimitByEmployee(5, 20),
			middleware.RBACAuthorize(rbacService, "leave_type", "read"),
			handler.GetByID,
		)
		types.POST("",
			middleware.RateLimitByEmployee(0.5, 2),
			middleware.RBACAuthorize(rbacService, "leave_type", "write"),
			handler.Create,
		)
	}
}
