package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/BavyaVasu/leave-management/internal/allocation"
	"github.com/BavyaVasu/leave-management/internal/events"
	identityerrors "github.com/BavyaVasu/leave-management/internal/identity/errors"
	"github.com/BavyaVasu/leave-management/internal/shared/clock"
	"github.com/BavyaVasu/leave-management/internal/shared/contextutil"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type AllocationGenerator interface {
	GenerateForEmployee(ctx context.Context, employeeID uuid.UUID, period int) (allocation.GenerateResult, error)
}

// Config tunes how a failed message is retried. Offsets are positional, so
// a message is retried in place until it is handled or ctx ends.
type Config struct {
	RetryBackoff    time.Duration
	MaxRetryBackoff time.Duration
}

// ConsumeEmployeeLifecycle handles employee_created messages until ctx is
// done. A message is only committed once it is handled; a failing message
// blocks the partition and is retried with doubling backoff.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	generator AllocationGenerator,
	clk clock.Clock,
	logger *zap.Logger,
	cfg Config,
) {
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = time.Second
	}
	if cfg.MaxRetryBackoff < cfg.RetryBackoff {
		cfg.MaxRetryBackoff = 30 * time.Second
	}

	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if !handleWithRetry(ctx, msg, generator, clk, log, cfg) {
			log.Info("employee lifecycle consumer stopped",
				zap.Int64("uncommitted_offset", msg.Offset),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// handleWithRetry returns false only when ctx ended before msg was handled.
func handleWithRetry(
	ctx context.Context,
	msg kafkago.Message,
	generator AllocationGenerator,
	clk clock.Clock,
	log *zap.Logger,
	cfg Config,
) bool {
	backoff := cfg.RetryBackoff
	for attempt := 1; ; attempt++ {
		if HandleEmployeeCreated(ctx, msg, generator, clk, log) {
			return true
		}
		log.Warn("retrying employee_created message",
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
		if ctx.Err() != nil {
			return false
		}
		backoff = min(backoff*2, cfg.MaxRetryBackoff)
	}
}

// HandleEmployeeCreated reports whether msg is done with and may be
// committed. Transient failures return false so the caller retries it.
func HandleEmployeeCreated(
	ctx context.Context,
	msg kafkago.Message,
	generator AllocationGenerator,
	clk clock.Clock,
	log *zap.Logger,
) bool {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee_created event failed", zap.Error(err))
		return true
	}
	if event.EventType != "" && event.EventType != events.EmployeeCreatedEventType {
		return true
	}

	employeeID, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		log.Warn("employee_created event has invalid employee id",
			zap.String("employee_id", event.EmployeeID),
		)
		return true
	}

	if event.RequestID != "" {
		ctx = contextutil.WithRequestID(ctx, event.RequestID)
	}

	period := clk.Now().Year()
	result, err := generator.GenerateForEmployee(ctx, employeeID, period)
	if err != nil {
		if errors.Is(err, identityerrors.ErrEmployeeNotFound) {
			log.Warn("employee from event not found, skipping",
				zap.String("employee_id", event.EmployeeID),
			)
			return true
		}
		log.Error("generate allocations from employee_created event failed",
			zap.String("employee_id", event.EmployeeID),
			zap.Int("period", period),
			zap.Error(err),
		)
		return false
	}

	log.Info("allocations generated from employee_created event",
		zap.String("employee_id", event.EmployeeID),
		zap.Int("period", period),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
	return true
}
