package models

import (
	"time"
)

type InventoryItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Category  string    `gorm:"size:100" json:"category"`
	Unit      string    `gorm:"size:30;not null" json:"unit"` // pcs, rim, box, ...
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	MinStock  int       `gorm:"not null;default:0" json:"min_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// StockTransaction is one immutable ledger entry. Rows are only ever inserted;
// corrections are made by appending a compensating entry.
type StockTransaction struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Reference   string        `gorm:"size:36;unique;not null" json:"reference"`
	ItemID      uint          `gorm:"not null;index" json:"item_id"`
	Item        InventoryItem `gorm:"foreignKey:ItemID" json:"item"`
	Direction   string        `gorm:"size:3;not null" json:"direction"` // IN or OUT
	Quantity    int           `gorm:"not null" json:"quantity"`
	Description string        `gorm:"type:text" json:"description"`
	UserID      uint          `gorm:"not null" json:"user_id"`
	User        User          `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt   time.Time     `json:"created_at"`
}
