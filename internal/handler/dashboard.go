package handler

import (
	"net/http"

	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/ledger"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	var totalItems int64
	var pendingRequests int64
	var incomingLetters int64
	var outgoingLetters int64
	var activeArchives int64
	var inactiveArchives int64

	h.DB.Model(&models.InventoryItem{}).Count(&totalItems)
	h.DB.Model(&models.PurchaseRequest{}).Where("status = ?", models.RequestStatusPending).Count(&pendingRequests)
	h.DB.Model(&models.Letter{}).Where("type = ?", models.LetterTypeIncoming).Count(&incomingLetters)
	h.DB.Model(&models.Letter{}).Where("type = ?", models.LetterTypeOutgoing).Count(&outgoingLetters)
	h.DB.Model(&models.Archive{}).Where("status = ?", models.ArchiveStatusActive).Count(&activeArchives)
	h.DB.Model(&models.Archive{}).Where("status = ?", models.ArchiveStatusInactive).Count(&inactiveArchives)

	// Stock status distribution; classification stays in one place, so count
	// in Go rather than duplicating the thresholds in SQL.
	var items []models.InventoryItem
	h.DB.Find(&items)
	statusCounts := map[string]int{
		ledger.StatusCritical: 0,
		ledger.StatusLow:      0,
		ledger.StatusNormal:   0,
	}
	for _, item := range items {
		statusCounts[ledger.ClassifyStatus(item.Stock, item.MinStock)]++
	}

	// Items per category
	type CategoryCount struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}
	var categoryCounts []CategoryCount
	h.DB.Model(&models.InventoryItem{}).
		Select("category, count(id) as count").
		Group("category").
		Scan(&categoryCounts)

	var recentTransactions []models.StockTransaction
	h.DB.Preload("Item").Preload("User").Order("created_at desc").Limit(10).Find(&recentTransactions)

	c.JSON(http.StatusOK, gin.H{
		"metrics": gin.H{
			"total_items":       totalItems,
			"pending_requests":  pendingRequests,
			"incoming_letters":  incomingLetters,
			"outgoing_letters":  outgoingLetters,
			"active_archives":   activeArchives,
			"inactive_archives": inactiveArchives,
		},
		"stock_status":        statusCounts,
		"items_per_category":  categoryCounts,
		"recent_transactions": recentTransactions,
	})
}
