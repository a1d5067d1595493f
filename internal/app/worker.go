package app

import (
	"context"

	"github.com/BavyaVasu/leave-management/internal/bootstrap"
	"github.com/BavyaVasu/leave-management/internal/config"
	"github.com/BavyaVasu/leave-management/internal/messaging/kafka"
	"github.com/BavyaVasu/leave-management/internal/messaging/kafka/producer"
	"github.com/BavyaVasu/leave-management/internal/shared/clock"
	"github.com/BavyaVasu/leave-management/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays committed outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	infra, err := Connect(cfg, log)
	if err != nil {
		return err
	}
	defer infra.Close()

	writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka, log)
	if err != nil {
		return err
	}
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(
			ctx,
			kafka.NewOutboxRepository(infra.DB),
			writer,
			clock.NewSystem(),
			log,
			producer.WorkerConfig{
				PollInterval: cfg.Leave.OutboxPollInterval,
				BatchSize:    cfg.Leave.OutboxBatchSize,
			},
		)
	}()

	bootstrap.WaitForSignal(cancel, log)
	<-done
	log.Info("worker shut down")
	return nil
}
