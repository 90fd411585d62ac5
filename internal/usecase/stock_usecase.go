package usecase

import (
	"context"
	"time"

	"cabinet/internal/domain/entity"

	"github.com/google/uuid"
)

// AdjustStockInput applies a signed delta to one item in one cabinet.
type AdjustStockInput struct {
	CabinetCode string
	ItemID      uuid.UUID
	Delta       int
	Reason      string
	ActorID     uuid.UUID
}

// AdjustStockOutput is the committed result of an adjustment.
type AdjustStockOutput struct {
	Level    *entity.StockLevel
	Movement *entity.StockMovement
}

// StockReport summarises stock across cabinets.
type StockReport struct {
	GeneratedAt time.Time
	// GeneratedAtLocal is GeneratedAt rendered in the configured time zone.
	GeneratedAtLocal string
	Items            []*entity.ItemStockSummary
	// BelowPar lists the items with at least one cabinet at or below par level.
	BelowPar []*entity.ItemStockSummary
}

// StockUsecase records stock movements and reports on them.
type StockUsecase interface {
	Adjust(ctx context.Context, input *AdjustStockInput) (*AdjustStockOutput, error)
	ListLevels(ctx context.Context, cabinetCode string) ([]*entity.StockLevel, error)
	Report(ctx context.Context) (*StockReport, error)
}

// StockAlertUsecase reacts to published stock events.
type StockAlertUsecase interface {
	// ProcessStockEvent records an alert when the event left the cabinet at
	// or below the item's par level. It returns nil when no alert was
	// needed or one already exists for the event.
	ProcessStockEvent(ctx context.Context, event *entity.StockEvent) (*entity.StockAlert, error)
}
