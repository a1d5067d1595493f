package allocation

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
	r.POST("/leave-types/:id/allocations",
		auth,
		middleware.RateLimitByEmployee(0.2, 1),
		middleware.RBACAuthorize(rbacService, "allocation", "generate"),
		handler.Generate,
	)

	allocations := r.Group("/allocations")
	allocations.Use(auth)
	{
		allocations.GET("/me",
			middleware.RateLimitByEmployee(5, 20),
			middleware.RBACAuthorize(rbacService, "allocation", "read_own"),
			handler.Mine,
		)
		allocations.GET("/employees",
			middleware.RateLimitByEmployee(5, 20),
			middleware.RBACAuthorize(rbacService, "allocation", "read_all"),
			handler.ListEmployees,
		)
		allocations.GET("/employees/:employee_id",
			middleware.RateLimitByEmployee(5, 20),
			middleware.RBACAuthorize(rbacService, "allocation", "read_all"),
			handler.ListByEmployee,
		)
		allocations.PUT("/:id",
			middleware.RateLimitByEmployee(1, 5),
			middleware.RBACAuthorize(rbacService, "allocation", "write"),
			handler.UpdateNumberOfDays,
		)
	}
}
