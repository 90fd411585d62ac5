package service

import (
	"context"

	"cabinet/internal/domain/entity"
)

// StockEventMessage is the envelope published for each committed stock adjustment.
type StockEventMessage struct {
	RequestID string             `json:"request_id,omitempty"` // For distributed tracing
	Event     *entity.StockEvent `json:"event"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStockEvent publishes a stock event for async processing
	PublishStockEvent(ctx context.Context, msg *StockEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
