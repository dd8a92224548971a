package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/ledger"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StockHandler struct {
	DB     *gorm.DB
	Engine *ledger.Engine
}

type CreateTransactionRequest struct {
	ItemID      uint   `json:"item_id" binding:"required"`
	Direction   string `json:"direction" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	Description string `json:"description"`
}

func (h *StockHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")

	entry, err := h.Engine.ApplyMovement(c.Request.Context(), ledger.MovementInput{
		ItemID:      req.ItemID,
		Direction:   req.Direction,
		Quantity:    req.Quantity,
		Description: req.Description,
		UserID:      userID,
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *StockHandler) ListTransactions(c *gin.Context) {
	page := 1
	limit := 20
	if c.Query("page") != "" {
		fmt.Sscanf(c.Query("page"), "%d", &page)
	}
	if c.Query("limit") != "" {
		fmt.Sscanf(c.Query("limit"), "%d", &limit)
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := h.DB.Model(&models.StockTransaction{})
	if itemID := c.Query("item_id"); itemID != "" {
		query = query.Where("item_id = ?", itemID)
	}
	if direction := c.Query("direction"); direction != "" {
		query = query.Where("direction = ?", direction)
	}

	var total int64
	query.Count(&total)

	var transactions []models.StockTransaction
	if err := query.Preload("Item").Preload("User").
		Order("created_at desc").Limit(limit).Offset(offset).
		Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  transactions,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *StockHandler) GetTransaction(c *gin.Context) {
	var transaction models.StockTransaction
	if err := h.DB.Preload("Item").Preload("User").First(&transaction, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// respondLedgerError maps the engine's error taxonomy onto HTTP statuses.
func respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrInvalidDirection), errors.Is(err, ledger.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("ledger failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply stock movement"})
	}
}
