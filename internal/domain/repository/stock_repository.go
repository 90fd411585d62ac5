package repository

import (
	"context"

	"cabinet/internal/domain/entity"
	"cabinet/internal/errors"

	"github.com/google/uuid"
)

// ErrStockLevelNotFound is returned when a cabinet has never held the item.
var ErrStockLevelNotFound = errors.New("stock level not found")

// StockRepository persists per-cabinet stock, its movement log and alerts.
type StockRepository interface {
	// LockLevel returns the level row locked FOR UPDATE, creating an empty
	// one when the cabinet has never held the item. Must run inside a transaction.
	LockLevel(ctx context.Context, cabinetCode string, itemID uuid.UUID) (*entity.StockLevel, error)

	// SaveLevel writes the quantity of a level returned by LockLevel.
	SaveLevel(ctx context.Context, level *entity.StockLevel) error

	// FindLevel returns the current level without locking.
	FindLevel(ctx context.Context, cabinetCode string, itemID uuid.UUID) (*entity.StockLevel, error)

	// ListLevels returns all levels of a cabinet, or of every cabinet when cabinetCode is empty.
	ListLevels(ctx context.Context, cabinetCode string) ([]*entity.StockLevel, error)

	// CreateMovement appends to the movement log.
	CreateMovement(ctx context.Context, movement *entity.StockMovement) error

	// SummarizeByItem aggregates quantities per item across cabinets.
	SummarizeByItem(ctx context.Context) ([]*entity.ItemStockSummary, error)

	// CreateAlert stores an alert. It reports false when an alert for the
	// same event already exists.
	CreateAlert(ctx context.Context, alert *entity.StockAlert) (bool, error)
}
