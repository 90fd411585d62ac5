package handler

import (
	"time"

	"cabinet/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID        `json:"id"`
	Email     string           `json:"email"`
	Name      string           `json:"name"`
	Role      entity.RoleClaim `json:"role"`
	Ward      string           `json:"ward,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      entity.RoleClaimFor(user.Role),
		Ward:      user.Ward,
		CreatedAt: user.CreatedAt,
	}
}

// ItemResponse is the public view of a catalog item.
type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Description string    `json:"description,omitempty"`
	ParLevel    int       `json:"par_level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newItemResponse(item *entity.Item) *ItemResponse {
	return &ItemResponse{
		ID:          item.ID,
		SKU:         item.SKU,
		Name:        item.Name,
		Category:    item.Category,
		Unit:        item.Unit,
		Description: item.Description,
		ParLevel:    item.ParLevel,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// StockLevelResponse is the on-hand quantity of an item in a cabinet.
type StockLevelResponse struct {
	CabinetCode string    `json:"cabinet_code"`
	ItemID      uuid.UUID `json:"item_id"`
	Quantity    int       `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newStockLevelResponse(level *entity.StockLevel) *StockLevelResponse {
	return &StockLevelResponse{
		CabinetCode: level.CabinetCode,
		ItemID:      level.ItemID,
		Quantity:    level.Quantity,
		UpdatedAt:   level.UpdatedAt,
	}
}

// StockMovementResponse is one recorded adjustment.
type StockMovementResponse struct {
	ID            uuid.UUID `json:"id"`
	CabinetCode   string    `json:"cabinet_code"`
	ItemID        uuid.UUID `json:"item_id"`
	Delta         int       `json:"delta"`
	QuantityAfter int       `json:"quantity_after"`
	Reason        string    `json:"reason,omitempty"`
	ActorID       uuid.UUID `json:"actor_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func newStockMovementResponse(movement *entity.StockMovement) *StockMovementResponse {
	return &StockMovementResponse{
		ID:            movement.ID,
		CabinetCode:   movement.CabinetCode,
		ItemID:        movement.ItemID,
		Delta:         movement.Delta,
		QuantityAfter: movement.QuantityAfter,
		Reason:        movement.Reason,
		ActorID:       movement.ActorID,
		CreatedAt:     movement.CreatedAt,
	}
}

// ItemStockSummaryResponse aggregates one item across cabinets.
type ItemStockSummaryResponse struct {
	ItemID        uuid.UUID `json:"item_id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	ParLevel      int       `json:"par_level"`
	TotalQuantity int       `json:"total_quantity"`
	CabinetCount  int       `json:"cabinet_count"`
	LowCabinets   int       `json:"low_cabinets"`
}

func newItemStockSummaryResponses(summaries []*entity.ItemStockSummary) []*ItemStockSummaryResponse {
	out := make([]*ItemStockSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, &ItemStockSummaryResponse{
			ItemID:        summary.ItemID,
			SKU:           summary.SKU,
			Name:          summary.Name,
			ParLevel:      summary.ParLevel,
			TotalQuantity: summary.TotalQuantity,
			CabinetCount:  summary.CabinetCount,
			LowCabinets:   summary.LowCabinets,
		})
	}

	return out
}

// PageResponse wraps a page of results with the total count.
type PageResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// PageQuery is the common limit/offset query string.
type PageQuery struct {
	Limit  int `query:"limit" validate:"gte=0,lte=200"`
	Offset int `query:"offset" validate:"gte=0"`
}

func mapSlice[S, T any](in []S, fn func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}

	return out
}
