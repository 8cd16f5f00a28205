package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kampuskart/internal/delivery/context"
	"kampuskart/internal/domain/service"
)

// publishEvent sends a domain event after the state change has been committed.
// Failures are logged and never returned.
func publishEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	eventType service.EventType,
	aggregateID string,
	attributes map[string]string,
) {
	if publisher == nil {
		return
	}

	event := &service.DomainEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		AggregateID: aggregateID,
		Attributes:  attributes,
		OccurredAt:  time.Now().UTC(),
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("type", string(eventType)),
			slog.String("aggregateID", aggregateID),
			slog.Any("error", err))
	}
}
