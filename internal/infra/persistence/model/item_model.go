package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemModel mirrors the 'items' catalog table.
type ItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SKU         string    `gorm:"column:sku;type:varchar(64);unique;not null"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Category    string    `gorm:"type:varchar(50);index"`
	Unit        string    `gorm:"type:varchar(20)"`
	Description string    `gorm:"type:text"`
	ParLevel    int       `gorm:"not null;default:0;check:par_level >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
