package service

import (
	"context"
	"time"
)

// EventType names a domain event.
type EventType string

const (
	EventSellerApplicationSubmitted EventType = "seller_application.submitted"
	EventSellerApplicationReviewed  EventType = "seller_application.reviewed"
	EventShopDeleted                EventType = "shop.deleted"
	EventUserDeleted                EventType = "user.deleted"
)

// DomainEvent is published after a state change other systems may care about.
type DomainEvent struct {
	RequestID   string            `json:"request_id,omitempty"` // For distributed tracing
	Type        EventType         `json:"type"`
	AggregateID string            `json:"aggregate_id"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event. Callers treat failures as best effort.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
