// Command migrate applies or rolls back the Postgres schema.
//
//	migrate up    apply every pending migration
//	migrate down  roll back the latest migration
package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/BavyaVasu/leave-management/internal/bootstrap"
	"github.com/BavyaVasu/leave-management/internal/config"
	"github.com/BavyaVasu/leave-management/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
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

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	db, err := sql.Open("pgx", cfg.Database.PostgresDSN())
	if err != nil {
		logger.Fatal("open database failed", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	switch direction {
	case "up":
		n, err := migrations.Up(ctx, db)
		if err != nil {
			logger.Fatal("migrate up failed", zap.Error(err))
		}
		logger.Info("migrations applied", zap.Int("count", n))
	case "down":
		if err := migrations.Down(ctx, db); err != nil {
			logger.Fatal("migrate down failed", zap.Error(err))
		}
		logger.Info("rolled back one migration")
	default:
		logger.Fatal("unknown direction, want up or down", zap.String("direction", direction))
	}
}
