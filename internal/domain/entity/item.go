package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry for a piece of medical equipment or consumable.
type Item struct {
	ID          uuid.UUID
	SKU         string // unique stock keeping unit
	Name        string
	Category    string
	Unit        string // e.g. "box", "piece"
	Description string
	ParLevel    int // restock threshold per cabinet
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemFilter narrows catalog listings.
type ItemFilter struct {
	Category string
	Search   string // matched against name and SKU
	Limit    int
	Offset   int
}
