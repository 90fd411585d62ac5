package repository

import (
	"context"

	"cabinet/internal/domain/entity"
	"cabinet/internal/errors"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when no catalog item matches.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository persists the item catalog.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	List(ctx context.Context, filter entity.ItemFilter) ([]*entity.Item, int64, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}
