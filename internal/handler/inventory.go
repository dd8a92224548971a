package handler

import (
	"net/http"

	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/ledger"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InventoryHandler struct {
	DB *gorm.DB
}

// ItemResponse carries the derived stock status alongside the stored fields.
// The status is never persisted.
type ItemResponse struct {
	models.InventoryItem
	Status string `json:"status"`
}

func toItemResponse(item models.InventoryItem) ItemResponse {
	return ItemResponse{
		InventoryItem: item,
		Status:        ledger.ClassifyStatus(item.Stock, item.MinStock),
	}
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	query := h.DB.Order("name asc")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}

	var items []models.InventoryItem
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
		return
	}

	resp := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toItemResponse(item))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	var item models.InventoryItem
	if err := h.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

type CreateItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Unit     string `json:"unit" binding:"required"`
	MinStock int    `json:"min_stock" binding:"gte=0"`
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// New items always start at zero; stock only ever changes through the
	// ledger engine.
	item := models.InventoryItem{
		Name:     req.Name,
		Category: req.Category,
		Unit:     req.Unit,
		Stock:    0,
		MinStock: req.MinStock,
	}

	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, toItemResponse(item))
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Name     string `json:"name" binding:"required"`
		Category string `json:"category"`
		Unit     string `json:"unit" binding:"required"`
		MinStock int    `json:"min_stock" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.InventoryItem
	if err := h.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	// Stock is deliberately not updatable here
	if err := h.DB.Model(&item).Updates(map[string]interface{}{
		"name":      req.Name,
		"category":  req.Category,
		"unit":      req.Unit,
		"min_stock": req.MinStock,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

// DeleteItem refuses to remove an item that still has ledger entries, so the
// ledger always folds to the balances it recorded.
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id := c.Param("id")

	var item models.InventoryItem
	if err := h.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	var entryCount int64
	if err := h.DB.Model(&models.StockTransaction{}).Where("item_id = ?", item.ID).Count(&entryCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check ledger entries"})
		return
	}
	if entryCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Item has stock transactions and cannot be deleted"})
		return
	}

	if err := h.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// GetStockAlerts lists items whose derived status is low or critical.
func (h *InventoryHandler) GetStockAlerts(c *gin.Context) {
	var items []models.InventoryItem
	if err := h.DB.Where("stock <= min_stock OR stock <= 0").Order("stock asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}

	resp := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toItemResponse(item))
	}
	c.JSON(http.StatusOK, resp)
}
