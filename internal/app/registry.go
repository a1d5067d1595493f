package app

import (
	"github.com/BavyaVasu/leave-management/internal/allocation"
	"github.com/BavyaVasu/leave-management/internal/config"
	"github.com/BavyaVasu/leave-management/internal/identity"
	"github.com/BavyaVasu/leave-management/internal/leave"
	"github.com/BavyaVasu/leave-management/internal/leavetype"
	"github.com/BavyaVasu/leave-management/internal/messaging/kafka"
	"github.com/BavyaVasu/leave-management/internal/middleware"
	"github.com/BavyaVasu/leave-management/internal/rbac"
	"github.com/BavyaVasu/leave-management/internal/rbac/infra"
	"github.com/BavyaVasu/leave-management/internal/shared/clock"
	"github.com/BavyaVasu/leave-management/internal/uow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services groups the domain services shared by the API and the consumer.
type Services struct {
	Directory  identity.Directory
	RBAC       rbac.Service
	LeaveTypes leavetype.Service
	Allocation allocation.Service
	Leave      leave.Service
}

func newServices(cfg *config.Config, db *gorm.DB, rdb *redis.Client, clk clock.Clock, logger *zap.Logger) (*Services, error) {
	outboxRepo := kafka.NewOutboxRepository(db)
	factory := uow.NewFactory(db, outboxRepo, logger)
	directory := identity.NewDirectory(db, logger)

	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService, err := rbac.NewService(
		directory,
		enforcer,
		rbac.RolePermissions(cfg.Leave.EmployeeRole, cfg.Leave.AdminRole),
		logger,
	)
	if err != nil {
		return nil, err
	}

	return &Services{
		Directory:  directory,
		RBAC:       rbacService,
		LeaveTypes: leavetype.NewService(factory, rdb, clk, logger),
		Allocation: allocation.NewService(factory, directory, clk, cfg.Leave.EmployeeRole, logger),
		Leave:      leave.NewService(factory, clk, logger),
	}, nil
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	services *Services,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	auth := middleware.AuthMiddleware(cfg.Auth.JWTSecret)

	// --- Handlers ---
	leaveTypeHandler := leavetype.NewHandler(services.LeaveTypes, logger)
	allocationHandler := allocation.NewHandler(services.Allocation, logger)
	leaveHandler := leave.NewHandler(services.Leave, services.RBAC, logger)
	rbacHandler := rbac.NewHandler(services.RBAC, services.Directory, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		leavetype.RegisterRoutes(api, leaveTypeHandler, auth, services.RBAC)
		allocation.RegisterRoutes(api, allocationHandler, auth, services.RBAC)
		leave.RegisterRoutes(api, leaveHandler, auth, services.RBAC, rdb)
		rbac.RegisterRoutes(api, rbacHandler, auth)
	}
}
