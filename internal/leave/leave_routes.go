package leave

import (
	"github.com/BavyaVasu/leave-management/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	requests := r.Group("/leave-requests")
	requests.Use(auth)
	{
		requests.GET("",
			middleware.RateLimitByEmployee(5, 20),
			middleware.RBACAuthorize(rbacService, "leave_request", "read_all"),
			handler.ListAll,
		)
		requests.GET("/me",
			middleware.RateLimitByEmployee(5, 20),
			middleware.RBACAuthorize(rbacService, "leave_request", "read_own"),
			handler.MyLeave,
		)
		requests.GET("/:id",
			middleware.RateLimitByEmployee(5, 20),
			middleware.RBACAuthorize(rbacService, "leave_request", "read_own"),
			handler.GetByID,
		)
		requests.POST("",
			middleware.RateLimitByEmployee(1, 5),
			middleware.RBACAuthorize(rbacService, "leave_request", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		requests.POST("/:id/approve",
			middleware.RateLimitByEmployee(2, 10),
			middleware.RBACAuthorize(rbacService, "leave_request", "approve"),
			handler.Approve,
		)
		requests.POST("/:id/reject",
			middleware.RateLimitByEmployee(2, 10),
			middleware.RBACAuthorize(rbacService, "leave_request", "approve"),
			handler.Reject,
		)
		requests.POST("/:id/cancel",
			middleware.RateLimitByEmployee(2, 10),
			middleware.RBACAuthorize(rbacService, "leave_request", "cancel"),
			handler.Cancel,
		)
	}
}
