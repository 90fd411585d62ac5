package service

import (
	"cabinet/internal/domain/entity"

	"github.com/google/uuid"
)

// ItemLabelPayload is the content encoded in an item's QR label.
type ItemLabelPayload struct {
	ItemID uuid.UUID `json:"item_id"`
	SKU    string    `json:"sku"`
	Type   string    `json:"type"`
}

// LabelService renders and reads the QR labels stuck on cabinet bins.
type LabelService interface {
	// GenerateItemLabel returns a PNG QR code identifying the item.
	GenerateItemLabel(item *entity.Item) ([]byte, error)

	// ParseItemLabel decodes scanned label content.
	ParseItemLabel(content string) (*ItemLabelPayload, error)
}
