package model

import (
	"time"

	"github.com/google/uuid"
)

// StockLevelModel mirrors the 'stock_levels' table, one row per cabinet and item.
type StockLevelModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CabinetCode string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_stock_levels_cabinet_item"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_levels_cabinet_item"`
	Quantity    int       `gorm:"not null;default:0;check:quantity >= 0"`
	UpdatedAt   time.Time

	Item *ItemModel `gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (StockLevelModel) TableName() string {
	return "stock_levels"
}

// StockMovementModel mirrors the append-only 'stock_movements' table.
type StockMovementModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CabinetCode   string    `gorm:"type:varchar(50);not null;index:idx_stock_movements_cabinet_item"`
	ItemID        uuid.UUID `gorm:"type:uuid;not null;index:idx_stock_movements_cabinet_item"`
	Delta         int       `gorm:"not null"`
	QuantityAfter int       `gorm:"not null"`
	Reason        string    `gorm:"type:varchar(255)"`
	ActorID       uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockMovementModel) TableName() string {
	return "stock_movements"
}

// StockAlertModel mirrors the 'stock_alerts' table.
type StockAlertModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;unique"`
	CabinetCode string    `gorm:"type:varchar(50);not null;index"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null"`
	Quantity    int       `gorm:"not null"`
	ParLevel    int       `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockAlertModel) TableName() string {
	return "stock_alerts"
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&CredentialModel{},
		&RefreshTokenModel{},
		&ItemModel{},
		&StockLevelModel{},
		&StockMovementModel{},
		&StockAlertModel{},
	}
}
