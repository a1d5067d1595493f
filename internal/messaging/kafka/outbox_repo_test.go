package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/BavyaVasu/leave-management/internal/messaging/kafka"
	"github.com/BavyaVasu/leave-management/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	repo := kafka.NewOutboxRepository(db)
	now := time.Date(2024, time.May, 20, 8, 0, 0, 0, time.UTC)

	require.NoError(t, kafka.Enqueue(ctx, repo, "req-1", "leave_request", "agg-1", "leave_request.created", "hr.leave.lifecycle.v1", map[string]string{"a": "b"}))
	require.NoError(t, kafka.Enqueue(ctx, repo, "req-2", "leave_request", "agg-2", "leave_request.approved", "hr.leave.lifecycle.v1", map[string]string{"c": "d"}))

	pending, err := repo.ListPending(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	byAggregate := map[string]kafka.OutboxEvent{}
	for _, e := range pending {
		byAggregate[e.AggregateID] = e
	}
	first, second := byAggregate["agg-1"], byAggregate["agg-2"]
	assert.JSONEq(t, `{"a":"b"}`, string(first.Payload))
	assert.Equal(t, "req-1", first.RequestID)

	require.NoError(t, repo.MarkSent(ctx, first.ID, now))
	require.NoError(t, repo.MarkFailed(ctx, second.ID, now, "broker down"))

	var failed kafka.OutboxEvent
	require.NoError(t, db.First(&failed, "id = ?", second.ID).Error)
	assert.Equal(t, kafka.OutboxStatusFailed, failed.Status)
	assert.Equal(t, 1, failed.RetryCount)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "broker down", *failed.ErrorMessage)

	again, err := repo.ListPending(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, again, "backoff not elapsed and sent events are skipped")

	later, err := repo.ListPending(ctx, now.Add(kafka.NextRetryDelay(1)+time.Second), 10)
	require.NoError(t, err)
	require.Len(t, later, 1)
	assert.Equal(t, second.ID, later[0].ID)
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: uuid.New(), Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusPending}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	noTopic := valid
	noTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(noTopic))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestNextRetryDelay(t *testing.T) {
	assert.Equal(t, 15*time.Second, kafka.NextRetryDelay(0))
	assert.Equal(t, 45*time.Second, kafka.NextRetryDelay(3))
	assert.Equal(t, 150*time.Second, kafka.NextRetryDelay(99))
}
