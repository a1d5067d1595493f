package kafka

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// Enqueue marshals event and stores it as a pending outbox row through
// repo, which must be bound to the caller's transaction.
func Enqueue(ctx context.Context, repo OutboxRepository, requestID, aggregateType, aggregateID, eventType, topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return repo.Create(ctx, OutboxEvent{
		ID:            uuid.New(),
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        OutboxStatusPending,
	})
}
