package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/ledger"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProcurementHandler struct {
	DB     *gorm.DB
	Engine *ledger.Engine
}

// Document numbers follow PREFIX-YYYYMMDD-SEQ
func generateDocumentNumber(db *gorm.DB, prefix string, model interface{}) string {
	dateStr := time.Now().Format("20060102")
	var count int64
	db.Model(model).Count(&count)
	return fmt.Sprintf("%s-%s-%04d", prefix, dateStr, count+1)
}

type CreatePurchaseRequestRequest struct {
	ItemID   uint   `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Reason   string `json:"reason"`
}

func (h *ProcurementHandler) CreatePurchaseRequest(c *gin.Context) {
	var req CreatePurchaseRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.InventoryItem
	if err := h.DB.First(&item, req.ItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	request := models.PurchaseRequest{
		RequestNumber: generateDocumentNumber(h.DB, "PR", &models.PurchaseRequest{}),
		ItemID:        req.ItemID,
		Quantity:      req.Quantity,
		Reason:        req.Reason,
		Status:        models.RequestStatusPending,
		RequestedByID: c.GetUint("userID"),
	}

	if err := h.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create purchase request"})
		return
	}

	h.DB.Preload("Item").Preload("RequestedBy").First(&request, request.ID)
	c.JSON(http.StatusCreated, request)
}

func (h *ProcurementHandler) ListPurchaseRequests(c *gin.Context) {
	query := h.DB.Preload("Item").Preload("RequestedBy").Preload("DecidedBy").Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.PurchaseRequest
	if err := query.Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchase requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// DecidePurchaseRequest approves or rejects a pending request.
func (h *ProcurementHandler) DecidePurchaseRequest(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var request models.PurchaseRequest
	if err := h.DB.First(&request, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase request not found"})
		return
	}
	if request.Status != models.RequestStatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Purchase request already decided"})
		return
	}

	actorID := c.GetUint("userID")
	now := time.Now()
	if err := h.DB.Model(&request).Updates(map[string]interface{}{
		"status":        req.Status,
		"decided_by_id": actorID,
		"decided_at":    now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update purchase request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase request " + req.Status})
}

type CreateReceptionRequest struct {
	PurchaseRequestID uint   `json:"purchase_request_id" binding:"required"`
	ReceivedQuantity  int    `json:"received_quantity" binding:"required,gt=0"`
	Note              string `json:"note"`
	// Optional manual flag for goods that do not match the requested item.
	// Only DIFFERENT may be forced; quantity outcomes are computed.
	Status string `json:"status" binding:"omitempty,oneof=DIFFERENT"`
}

// CreateReception records goods received against an approved purchase request
// and applies the IN movement. The reception row and the ledger entry commit
// together or not at all.
func (h *ProcurementHandler) CreateReception(c *gin.Context) {
	var req CreateReceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var request models.PurchaseRequest
	if err := h.DB.First(&request, req.PurchaseRequestID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase request not found"})
		return
	}
	if request.Status != models.RequestStatusApproved {
		c.JSON(http.StatusConflict, gin.H{"error": "Purchase request is not approved"})
		return
	}

	var existing int64
	h.DB.Model(&models.Reception{}).Where("purchase_request_id = ?", request.ID).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Purchase request already has a reception"})
		return
	}

	status := ledger.ClassifyReception(request.Quantity, req.ReceivedQuantity)
	if req.Status == models.ReceptionStatusDifferent {
		status = models.ReceptionStatusDifferent
	}

	userID := c.GetUint("userID")
	receptionNumber := generateDocumentNumber(h.DB, "RCV", &models.Reception{})

	tx := h.DB.WithContext(c.Request.Context()).Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	entry, err := h.Engine.ApplyMovementTx(tx, ledger.MovementInput{
		ItemID:      request.ItemID,
		Direction:   models.DirectionIn,
		Quantity:    req.ReceivedQuantity,
		Description: fmt.Sprintf("Reception %s for request %s", receptionNumber, request.RequestNumber),
		UserID:      userID,
	})
	if err != nil {
		tx.Rollback()
		respondLedgerError(c, err)
		return
	}

	reception := models.Reception{
		ReceptionNumber:    receptionNumber,
		PurchaseRequestID:  request.ID,
		ItemID:             request.ItemID,
		ExpectedQuantity:   request.Quantity,
		ReceivedQuantity:   req.ReceivedQuantity,
		Status:             status,
		Note:               req.Note,
		ReceivedByID:       userID,
		StockTransactionID: entry.ID,
	}
	if err := tx.Create(&reception).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reception"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit reception"})
		return
	}

	h.DB.Preload("PurchaseRequest").Preload("Item").Preload("ReceivedBy").Preload("StockTransaction").First(&reception, reception.ID)
	c.JSON(http.StatusCreated, reception)
}

func (h *ProcurementHandler) ListReceptions(c *gin.Context) {
	query := h.DB.Preload("PurchaseRequest").Preload("Item").Preload("ReceivedBy").Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var receptions []models.Reception
	if err := query.Find(&receptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch receptions"})
		return
	}
	c.JSON(http.StatusOK, receptions)
}

type CreateDistributionRequest struct {
	ItemID     uint   `json:"item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
	Department string `json:"department" binding:"required"`
	Note       string `json:"note"`
}

// CreateDistribution records goods issued to a department and applies the OUT
// movement, atomic with the distribution row.
func (h *ProcurementHandler) CreateDistribution(c *gin.Context) {
	var req CreateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	distributionNumber := generateDocumentNumber(h.DB, "DST", &models.Distribution{})

	tx := h.DB.WithContext(c.Request.Context()).Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	entry, err := h.Engine.ApplyMovementTx(tx, ledger.MovementInput{
		ItemID:      req.ItemID,
		Direction:   models.DirectionOut,
		Quantity:    req.Quantity,
		Description: fmt.Sprintf("Distribution %s to %s", distributionNumber, req.Department),
		UserID:      userID,
	})
	if err != nil {
		tx.Rollback()
		respondLedgerError(c, err)
		return
	}

	distribution := models.Distribution{
		DistributionNumber: distributionNumber,
		ItemID:             req.ItemID,
		Quantity:           req.Quantity,
		Department:         req.Department,
		Note:               req.Note,
		DistributedByID:    userID,
		StockTransactionID: entry.ID,
	}
	if err := tx.Create(&distribution).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create distribution"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit distribution"})
		return
	}

	h.DB.Preload("Item").Preload("DistributedBy").Preload("StockTransaction").First(&distribution, distribution.ID)
	c.JSON(http.StatusCreated, distribution)
}

func (h *ProcurementHandler) ListDistributions(c *gin.Context) {
	query := h.DB.Preload("Item").Preload("DistributedBy").Order("created_at desc")
	if department := c.Query("department"); department != "" {
		query = query.Where("department = ?", department)
	}

	var distributions []models.Distribution
	if err := query.Find(&distributions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch distributions"})
		return
	}
	c.JSON(http.StatusOK, distributions)
}
