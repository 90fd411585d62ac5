package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockLevel is the on-hand quantity of one item in one cabinet.
type StockLevel struct {
	ID          uuid.UUID
	CabinetCode string
	ItemID      uuid.UUID
	Quantity    int // never negative
	UpdatedAt   time.Time
}

// StockMovement is the append-only record of a single adjustment.
type StockMovement struct {
	ID            uuid.UUID
	CabinetCode   string
	ItemID        uuid.UUID
	Delta         int
	QuantityAfter int
	Reason        string
	ActorID       uuid.UUID
	CreatedAt     time.Time
}

// StockEventType identifies the kind of stock event published to subscribers.
type StockEventType string

const (
	// StockEventAdjusted is published after every committed adjustment.
	StockEventAdjusted StockEventType = "stock.adjusted"
)

// StockEvent is the message published after a committed adjustment.
type StockEvent struct {
	EventID       uuid.UUID      `json:"event_id"`
	Type          StockEventType `json:"type"`
	MovementID    uuid.UUID      `json:"movement_id"`
	CabinetCode   string         `json:"cabinet_code"`
	ItemID        uuid.UUID      `json:"item_id"`
	Delta         int            `json:"delta"`
	QuantityAfter int            `json:"quantity_after"`
	ActorID       uuid.UUID      `json:"actor_id"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

// StockAlert flags a cabinet whose quantity fell to or below the item's par level.
type StockAlert struct {
	ID          uuid.UUID
	EventID     uuid.UUID // source event, unique so redelivery is harmless
	CabinetCode string
	ItemID      uuid.UUID
	Quantity    int
	ParLevel    int
	CreatedAt   time.Time
}

// ItemStockSummary aggregates one item across all cabinets for reporting.
type ItemStockSummary struct {
	ItemID        uuid.UUID
	SKU           string
	Name          string
	ParLevel      int
	TotalQuantity int
	CabinetCount  int
	LowCabinets   int // cabinets at or below par level
}
