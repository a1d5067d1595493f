package app

import (
	"errors"
	"net/http"

	"github.com/BavyaVasu/leave-management/internal/config"
	"github.com/BavyaVasu/leave-management/internal/middleware"
	"github.com/BavyaVasu/leave-management/internal/schema"
	"github.com/BavyaVasu/leave-management/internal/shared/clock"
	"github.com/BavyaVasu/leave-management/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Infra holds the process-wide connections. Close releases all of them.
type Infra struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func Connect(cfg *config.Config, logger *zap.Logger) (*Infra, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Database.Driver == "sqlite" {
		if err := db.AutoMigrate(schema.Models...); err != nil {
			return nil, err
		}
		logger.Info("sqlite schema migrated")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, logger)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		logger.Warn("REDIS_ADDR not set, caching and idempotency keys disabled")
	}
	return &Infra{DB: db, Redis: rdb}, nil
}

func (i *Infra) Close() error {
	var errs []error
	if sqlDB, err := i.DB.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	}
	if i.Redis != nil {
		errs = append(errs, i.Redis.Close())
	}
	return errors.Join(errs...)
}

// BuildApp wires every module onto a new gin engine.
func BuildApp(cfg *config.Config, infra *Infra, logger *zap.Logger) (*gin.Engine, error) {
	services, err := newServices(cfg, infra.DB, infra.Redis, clock.NewSystem(), logger)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(logger.Named("http")),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst),
	)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerModules(router, cfg, services, infra.Redis, logger)
	return router, nil
}
