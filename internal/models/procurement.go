package models

import (
	"time"
)

const (
	RequestStatusPending  = "PENDING"
	RequestStatusApproved = "APPROVED"
	RequestStatusRejected = "REJECTED"
)

type PurchaseRequest struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	RequestNumber string        `gorm:"size:50;unique;not null" json:"request_number"`
	ItemID        uint          `gorm:"not null" json:"item_id"`
	Item          InventoryItem `gorm:"foreignKey:ItemID" json:"item"`
	Quantity      int           `gorm:"not null" json:"quantity"`
	Reason        string        `gorm:"type:text" json:"reason"`
	Status        string        `gorm:"size:10;not null;default:'PENDING'" json:"status"`
	RequestedByID uint          `gorm:"not null" json:"requested_by_id"`
	RequestedBy   User          `gorm:"foreignKey:RequestedByID" json:"requested_by"`
	DecidedByID   *uint         `json:"decided_by_id"`
	DecidedBy     *User         `gorm:"foreignKey:DecidedByID" json:"decided_by,omitempty"`
	DecidedAt     *time.Time    `json:"decided_at"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

const (
	ReceptionStatusComplete  = "COMPLETE"
	ReceptionStatusPartial   = "PARTIAL"
	ReceptionStatusDifferent = "DIFFERENT"
)

type Reception struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	ReceptionNumber    string           `gorm:"size:50;unique;not null" json:"reception_number"`
	PurchaseRequestID  uint             `gorm:"not null" json:"purchase_request_id"`
	PurchaseRequest    PurchaseRequest  `gorm:"foreignKey:PurchaseRequestID" json:"purchase_request"`
	ItemID             uint             `gorm:"not null" json:"item_id"`
	Item               InventoryItem    `gorm:"foreignKey:ItemID" json:"item"`
	ExpectedQuantity   int              `gorm:"not null" json:"expected_quantity"`
	ReceivedQuantity   int              `gorm:"not null" json:"received_quantity"`
	Status             string           `gorm:"size:10;not null" json:"status"` // COMPLETE, PARTIAL, DIFFERENT
	Note               string           `gorm:"type:text" json:"note"`
	ReceivedByID       uint             `gorm:"not null" json:"received_by_id"`
	ReceivedBy         User             `gorm:"foreignKey:ReceivedByID" json:"received_by"`
	StockTransactionID uint             `gorm:"not null" json:"stock_transaction_id"`
	StockTransaction   StockTransaction `gorm:"foreignKey:StockTransactionID" json:"stock_transaction"`
	CreatedAt          time.Time        `json:"created_at"`
}

type Distribution struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	DistributionNumber string           `gorm:"size:50;unique;not null" json:"distribution_number"`
	ItemID             uint             `gorm:"not null" json:"item_id"`
	Item               InventoryItem    `gorm:"foreignKey:ItemID" json:"item"`
	Quantity           int              `gorm:"not null" json:"quantity"`
	Department         string           `gorm:"size:100;not null" json:"department"`
	Note               string           `gorm:"type:text" json:"note"`
	DistributedByID    uint             `gorm:"not null" json:"distributed_by_id"`
	DistributedBy      User             `gorm:"foreignKey:DistributedByID" json:"distributed_by"`
	StockTransactionID uint             `gorm:"not null" json:"stock_transaction_id"`
	StockTransaction   StockTransaction `gorm:"foreignKey:StockTransactionID" json:"stock_transaction"`
	CreatedAt          time.Time        `json:"created_at"`
}
