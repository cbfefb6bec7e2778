package shared

import (
	"context"
	"time"
)

type OrderEventType string

const (
	EventOrderCreated       OrderEventType = "order.created"
	EventOrderStatusChanged OrderEventType = "order.status_changed"
)

type OrderEvent struct {
	Type          OrderEventType `json:"type"`
	OrderID       int64          `json:"order_id"`
	UserID        int64          `json:"user_id"`
	Status        string         `json:"status"`
	Fulfillment   string         `json:"fulfillment,omitempty"`
	Total         string         `json:"total,omitempty"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

// StatusChange is the committed outcome of a staff status action. It carries
// enough to notify the customer even when the order view cannot be loaded.
type StatusChange struct {
	OrderID int64
	UserID  int64
	Status  string
	At      time.Time
	// Origin is the staff message the action came from.
	Origin *MessageRef
}

type EventPublisher interface {
	Publish(ctx context.Context, ev OrderEvent) error
}
