package service

import (
	"context"
	"time"
)

// Order event types
const (
	OrderEventStatusChanged  = "order.status_changed"
	OrderEventDriverAssigned = "order.driver_assigned"
)

// OrderEvent describes a change in an order's lifecycle
type OrderEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	Barcode    string    `json:"barcode"`
	Status     string    `json:"status"`
	DriverID   string    `json:"driver_id,omitempty"` // Empty when the driver was cleared
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
