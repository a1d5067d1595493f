package consumer_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/BavyaVasu/leave-management/internal/allocation"
	allocationMock "github.com/BavyaVasu/leave-management/internal/allocation/mock"
	"github.com/BavyaVasu/leave-management/internal/events"
	identityerrors "github.com/BavyaVasu/leave-management/internal/identity/errors"
	"github.com/BavyaVasu/leave-management/internal/messaging/kafka/consumer"
	"github.com/BavyaVasu/leave-management/internal/shared/clock"
	"github.com/BavyaVasu/leave-management/internal/shared/contextutil"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, time.May, 20, 8, 0, 0, 0, time.UTC)

func employeeCreated(t *testing.T, employeeID string) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(events.EmployeeCreatedEvent{
		EventType:  events.EmployeeCreatedEventType,
		RequestID:  "req-9",
		EmployeeID: employeeID,
		OccurredAt: fixedNow,
	})
	require.NoError(t, err)
	return kafkago.Message{Topic: events.EmployeeCreatedTopic, Value: b}
}

func TestHandleEmployeeCreated(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFixed(fixedNow)
	employeeID := uuid.New()

	t.Run("generates for current year", func(t *testing.T) {
		gen := allocationMock.NewMockService(gomock.NewController(t))
		gen.EXPECT().
			GenerateForEmployee(gomock.Any(), employeeID, 2024).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ int) (allocation.GenerateResult, error) {
				assert.Equal(t, "req-9", contextutil.GetRequestID(ctx))
				return allocation.GenerateResult{Created: 2}, nil
			})

		assert.True(t, consumer.HandleEmployeeCreated(ctx, employeeCreated(t, employeeID.String()), gen, clk, zap.NewNop()))
	})

	t.Run("transient failure leaves message uncommitted", func(t *testing.T) {
		gen := allocationMock.NewMockService(gomock.NewController(t))
		gen.EXPECT().GenerateForEmployee(gomock.Any(), employeeID, 2024).Return(allocation.GenerateResult{}, assert.AnError)

		assert.False(t, consumer.HandleEmployeeCreated(ctx, employeeCreated(t, employeeID.String()), gen, clk, zap.NewNop()))
	})

	t.Run("unknown employee is skipped", func(t *testing.T) {
		gen := allocationMock.NewMockService(gomock.NewController(t))
		gen.EXPECT().GenerateForEmployee(gomock.Any(), employeeID, 2024).Return(allocation.GenerateResult{}, identityerrors.ErrEmployeeNotFound)

		assert.True(t, consumer.HandleEmployeeCreated(ctx, employeeCreated(t, employeeID.String()), gen, clk, zap.NewNop()))
	})

	t.Run("poison messages are committed", func(t *testing.T) {
		gen := allocationMock.NewMockService(gomock.NewController(t))

		assert.True(t, consumer.HandleEmployeeCreated(ctx, kafkago.Message{Value: []byte("{")}, gen, clk, zap.NewNop()))
		assert.True(t, consumer.HandleEmployeeCreated(ctx, employeeCreated(t, "not-a-uuid"), gen, clk, zap.NewNop()))
		assert.True(t, consumer.HandleEmployeeCreated(ctx, kafkago.Message{Value: []byte(`{"event_type":"employee_deleted"}`)}, gen, clk, zap.NewNop()))
	})
}

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

var retryFast = consumer.Config{RetryBackoff: time.Millisecond, MaxRetryBackoff: 2 * time.Millisecond}

func (r *fakeReader) committedValues() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.committed))
	for i, m := range r.committed {
		out[i] = string(m.Value)
	}
	return out
}

func TestConsumeEmployeeLifecycle_RetriesFailedMessageBeforeMovingOn(t *testing.T) {
	failing, ok := uuid.New(), uuid.New()
	gen := allocationMock.NewMockService(gomock.NewController(t))
	gomock.InOrder(
		gen.EXPECT().GenerateForEmployee(gomock.Any(), failing, 2024).Return(allocation.GenerateResult{}, assert.AnError).Times(2),
		gen.EXPECT().GenerateForEmployee(gomock.Any(), failing, 2024).Return(allocation.GenerateResult{Created: 1}, nil),
		gen.EXPECT().GenerateForEmployee(gomock.Any(), ok, 2024).Return(allocation.GenerateResult{Created: 1}, nil),
	)

	ctx, cancel := context.WithCancel(context.Background())
	first, second := employeeCreated(t, failing.String()), employeeCreated(t, ok.String())
	reader := &fakeReader{msgs: []kafkago.Message{first, second}, cancel: cancel}

	consumer.ConsumeEmployeeLifecycle(ctx, reader, gen, clock.NewFixed(fixedNow), zap.NewNop(), retryFast)

	assert.Equal(t, []string{string(first.Value), string(second.Value)}, reader.committedValues())
}

func TestConsumeEmployeeLifecycle_StopsWithoutCommittingWhenCancelledMidRetry(t *testing.T) {
	failing, never := uuid.New(), uuid.New()
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	gen := allocationMock.NewMockService(gomock.NewController(t))
	gen.EXPECT().
		GenerateForEmployee(gomock.Any(), failing, 2024).
		DoAndReturn(func(context.Context, uuid.UUID, int) (allocation.GenerateResult, error) {
			attempts++
			if attempts == 3 {
				cancel()
			}
			return allocation.GenerateResult{}, assert.AnError
		}).
		Times(3)

	reader := &fakeReader{
		msgs:   []kafkago.Message{employeeCreated(t, failing.String()), employeeCreated(t, never.String())},
		cancel: cancel,
	}

	consumer.ConsumeEmployeeLifecycle(ctx, reader, gen, clock.NewFixed(fixedNow), zap.NewNop(), retryFast)

	assert.Empty(t, reader.committedValues())
	assert.Len(t, reader.msgs, 1)
}
