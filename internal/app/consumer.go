package app

import (
	"context"

	"github.com/BavyaVasu/leave-management/internal/bootstrap"
	"github.com/BavyaVasu/leave-management/internal/config"
	"github.com/BavyaVasu/leave-management/internal/events"
	"github.com/BavyaVasu/leave-management/internal/messaging/kafka/consumer"
	"github.com/BavyaVasu/leave-management/internal/shared/clock"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer allocates leave for newly created employees until SIGINT or
// SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	infra, err := Connect(cfg, log)
	if err != nil {
		return err
	}
	defer infra.Close()

	clk := clock.NewSystem()
	services, err := newServices(cfg, infra.DB, infra.Redis, clk, log)
	if err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeCreatedTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeEmployeeLifecycle(ctx, reader, services.Allocation, clk, log, consumer.Config{})
	}()

	bootstrap.WaitForSignal(cancel, log)
	<-done
	log.Info("consumer shut down")
	return nil
}
