package main

import (
	"github.com/BavyaVasu/leave-management/internal/app"
	"github.com/BavyaVasu/leave-management/internal/bootstrap"
	"github.com/BavyaVasu/leave-management/internal/config"
	"github.com/BavyaVasu/leave-management/internal/shared/apperror"
	"github.com/BavyaVasu/leave-management/internal/shared/clock"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	if cfg.Log.Format == "json" {
		gin.SetMode(gin.ReleaseMode)
	}

	infra, err := app.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("connect infrastructure failed", zap.Error(err))
	}
	defer infra.Close()

	r, err := app.BuildApp(cfg, infra, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger(logger, clock.NewSystem())
	if err := bootstrap.StartHTTPServer(r, cfg.Server, auditLogger, logger); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
