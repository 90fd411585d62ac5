package usecase

import (
	"context"

	"cabinet/internal/domain/entity"

	"github.com/google/uuid"
)

// ItemInput carries the editable fields of a catalog item.
type ItemInput struct {
	SKU         string
	Name        string
	Category    string
	Unit        string
	Description string
	// ParLevel nil selects the configured default on create and keeps the
	// current value on update.
	ParLevel *int
}

// ItemPage is one page of catalog items with the total count.
type ItemPage struct {
	Items []*entity.Item
	Total int64
}

// ItemUsecase manages the equipment catalog.
type ItemUsecase interface {
	CreateItem(ctx context.Context, input *ItemInput) (*entity.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	ListItems(ctx context.Context, filter entity.ItemFilter) (*ItemPage, error)
	UpdateItem(ctx context.Context, id uuid.UUID, input *ItemInput) (*entity.Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	// GenerateLabel returns the PNG QR label of an item.
	GenerateLabel(ctx context.Context, id uuid.UUID) ([]byte, error)
}
