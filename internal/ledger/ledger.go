// Package ledger maintains item stock balances as the fold of an append-only
// sequence of stock transactions. ApplyMovement is the only sanctioned way to
// change a balance; every other part of the application reads balances only.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrInvalidDirection  = errors.New("direction must be IN or OUT")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnauthorized      = errors.New("acting user not found or inactive")
	ErrConflict          = errors.New("stock update conflicted, retry")
)

const (
	StatusCritical = "critical"
	StatusLow      = "low"
	StatusNormal   = "normal"
)

// ClassifyStatus derives the stock status. The stock <= 0 check dominates, so
// an item with stock 0 and min stock 0 is critical, not low.
func ClassifyStatus(stock, minStock int) string {
	if stock <= 0 {
		return StatusCritical
	}
	if stock <= minStock {
		return StatusLow
	}
	return StatusNormal
}

type MovementInput struct {
	ItemID      uint
	Direction   string
	Quantity    int
	Description string
	UserID      uint
}

// Engine applies stock movements. It holds the storage handle it was
// constructed with; nothing here reads global state.
type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// ApplyMovement validates the movement, adjusts the item balance and appends
// the ledger entry in one transaction. Either both writes commit or neither
// does. The returned entry carries the item and acting-user snapshots so the
// caller can render a confirmation without a second read.
func (e *Engine) ApplyMovement(ctx context.Context, input MovementInput) (*models.StockTransaction, error) {
	tx := e.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}

	entry, err := e.ApplyMovementTx(tx, input)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, translateError(err)
	}
	return entry, nil
}

// ApplyMovementTx runs the movement inside a caller-owned transaction. It is
// used by reception and distribution flows so their record and the ledger
// entry commit as a single unit. The caller commits or rolls back.
func (e *Engine) ApplyMovementTx(tx *gorm.DB, input MovementInput) (*models.StockTransaction, error) {
	if input.Direction != models.DirectionIn && input.Direction != models.DirectionOut {
		return nil, ErrInvalidDirection
	}
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if input.UserID == 0 {
		return nil, ErrUnauthorized
	}

	var user models.User
	if err := tx.First(&user, input.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, translateError(err)
	}
	if !user.IsActive {
		return nil, ErrUnauthorized
	}

	var item models.InventoryItem
	if err := tx.First(&item, input.ItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, translateError(err)
	}

	delta := input.Quantity
	if input.Direction == models.DirectionOut {
		delta = -input.Quantity
	}

	// The guard in the WHERE clause is evaluated under the row lock the UPDATE
	// takes, so two concurrent movements against the same item serialize and
	// the balance can never go below zero.
	res := tx.Model(&models.InventoryItem{}).
		Where("id = ? AND stock + ? >= 0", input.ItemID, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return nil, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrInsufficientStock
	}

	entry := models.StockTransaction{
		Reference:   uuid.NewString(),
		ItemID:      input.ItemID,
		Direction:   input.Direction,
		Quantity:    input.Quantity,
		Description: input.Description,
		UserID:      input.UserID,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, translateError(err)
	}

	// Snapshot of the post-movement balance for the response
	if err := tx.First(&item, input.ItemID).Error; err != nil {
		return nil, translateError(err)
	}
	entry.Item = item
	entry.User = user

	return &entry, nil
}

// MySQL lock wait timeout and deadlock surface as retryable conflicts; the
// caller may retry with a fresh balance read.
func translateError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1205, 1213:
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
	}
	return fmt.Errorf("ledger storage failure: %w", err)
}
