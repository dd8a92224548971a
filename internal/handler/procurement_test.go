package handler

import (
	"net/http"
	"testing"

	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/ledger"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func procurementRouter(db *gorm.DB, user models.User) *gin.Engine {
	h := &ProcurementHandler{DB: db, Engine: ledger.NewEngine(db)}
	r := newRouter()
	grp := r.Group("/api/v1/procurement", authAs(user))
	grp.POST("/requests", h.CreatePurchaseRequest)
	grp.PUT("/requests/:id/decision", h.DecidePurchaseRequest)
	grp.POST("/receptions", h.CreateReception)
	grp.POST("/distributions", h.CreateDistribution)
	return r
}

func seedApprovedRequest(t *testing.T, db *gorm.DB, item models.InventoryItem, user models.User, quantity int) models.PurchaseRequest {
	t.Helper()
	decided := user.ID
	request := models.PurchaseRequest{
		RequestNumber: "PR-20260101-0001",
		ItemID:        item.ID,
		Quantity:      quantity,
		Status:        models.RequestStatusApproved,
		RequestedByID: user.ID,
		DecidedByID:   &decided,
	}
	require.NoError(t, db.Create(&request).Error)
	return request
}

func TestCreateReceptionAppliesInMovement(t *testing.T) {
	db := setupTestDB(t)
	user := seedStaff(t, db)
	item := seedTestItem(t, db, 5, 10)
	request := seedApprovedRequest(t, db, item, user, 10)
	router := procurementRouter(db, user)

	w := performJSON(t, router, http.MethodPost, "/api/v1/procurement/receptions", gin.H{
		"purchase_request_id": request.ID,
		"received_quantity":   10,
		"note":                "diterima lengkap",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reception models.Reception
	require.NoError(t, db.Preload("StockTransaction").First(&reception).Error)
	assert.Equal(t, models.ReceptionStatusComplete, reception.Status)
	assert.Equal(t, 10, reception.ReceivedQuantity)
	assert.Equal(t, models.DirectionIn, reception.StockTransaction.Direction)

	var updated models.InventoryItem
	require.NoError(t, db.First(&updated, item.ID).Error)
	assert.Equal(t, 15, updated.Stock)
}

func TestCreateReceptionPartialAndOverDelivery(t *testing.T) {
	db := setupTestDB(t)
	user := seedStaff(t, db)
	router := procurementRouter(db, user)

	itemA := seedTestItem(t, db, 0, 5)
	reqA := seedApprovedRequest(t, db, itemA, user, 10)
	w := performJSON(t, router, http.MethodPost, "/api/v1/procurement/receptions", gin.H{
		"purchase_request_id": reqA.ID,
		"received_quantity":   4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var receptionA models.Reception
	require.NoError(t, db.Where("purchase_request_id = ?", reqA.ID).First(&receptionA).Error)
	assert.Equal(t, models.ReceptionStatusPartial, receptionA.Status)

	itemB := models.InventoryItem{Name: "Boks Arsip", Unit: "pcs"}
	require.NoError(t, db.Create(&itemB).Error)
	reqB := models.PurchaseRequest{
		RequestNumber: "PR-20260101-0002",
		ItemID:        itemB.ID,
		Quantity:      10,
		Status:        models.RequestStatusApproved,
		RequestedByID: user.ID,
	}
	require.NoError(t, db.Create(&reqB).Error)

	// Over-delivery is not silently accepted
	w = performJSON(t, router, http.MethodPost, "/api/v1/procurement/receptions", gin.H{
		"purchase_request_id": reqB.ID,
		"received_quantity":   12,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var receptionB models.Reception
	require.NoError(t, db.Where("purchase_request_id = ?", reqB.ID).First(&receptionB).Error)
	assert.Equal(t, models.ReceptionStatusDifferent, receptionB.Status)
}

func TestCreateReceptionRequiresApprovedRequest(t *testing.T) {
	db := setupTestDB(t)
	user := seedStaff(t, db)
	item := seedTestItem(t, db, 0, 5)
	router := procurementRouter(db, user)

	request := models.PurchaseRequest{
		RequestNumber: "PR-20260101-0003",
		ItemID:        item.ID,
		Quantity:      5,
		Status:        models.RequestStatusPending,
		RequestedByID: user.ID,
	}
	require.NoError(t, db.Create(&request).Error)

	w := performJSON(t, router, http.MethodPost, "/api/v1/procurement/receptions", gin.H{
		"purchase_request_id": request.ID,
		"received_quantity":   5,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.Reception{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateDistributionInsufficientStockLeavesNothingBehind(t *testing.T) {
	db := setupTestDB(t)
	user := seedStaff(t, db)
	item := seedTestItem(t, db, 3, 5)
	router := procurementRouter(db, user)

	w := performJSON(t, router, http.MethodPost, "/api/v1/procurement/distributions", gin.H{
		"item_id":    item.ID,
		"quantity":   10,
		"department": "Bagian Umum",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The rejected distribution must not leave any row or balance change
	var distributions, entries int64
	db.Model(&models.Distribution{}).Count(&distributions)
	db.Model(&models.StockTransaction{}).Count(&entries)
	assert.Equal(t, int64(0), distributions)
	assert.Equal(t, int64(0), entries)

	var updated models.InventoryItem
	require.NoError(t, db.First(&updated, item.ID).Error)
	assert.Equal(t, 3, updated.Stock)
}

func TestCreateDistributionAppliesOutMovement(t *testing.T) {
	db := setupTestDB(t)
	user := seedStaff(t, db)
	item := seedTestItem(t, db, 20, 5)
	router := procurementRouter(db, user)

	w := performJSON(t, router, http.MethodPost, "/api/v1/procurement/distributions", gin.H{
		"item_id":    item.ID,
		"quantity":   8,
		"department": "Tata Usaha",
		"note":       "permintaan rutin",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var distribution models.Distribution
	require.NoError(t, db.Preload("StockTransaction").First(&distribution).Error)
	assert.Equal(t, models.DirectionOut, distribution.StockTransaction.Direction)
	assert.Equal(t, 8, distribution.Quantity)

	var updated models.InventoryItem
	require.NoError(t, db.First(&updated, item.ID).Error)
	assert.Equal(t, 12, updated.Stock)
}

func TestDecidePurchaseRequestOnlyOnce(t *testing.T) {
	db := setupTestDB(t)
	user := seedStaff(t, db)
	item := seedTestItem(t, db, 0, 5)
	router := procurementRouter(db, user)

	request := models.PurchaseRequest{
		RequestNumber: "PR-20260101-0004",
		ItemID:        item.ID,
		Quantity:      5,
		Status:        models.RequestStatusPending,
		RequestedByID: user.ID,
	}
	require.NoError(t, db.Create(&request).Error)

	w := performJSON(t, router, http.MethodPut, "/api/v1/procurement/requests/1/decision", gin.H{
		"status": "APPROVED",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.PurchaseRequest
	require.NoError(t, db.First(&updated, request.ID).Error)
	assert.Equal(t, models.RequestStatusApproved, updated.Status)
	assert.NotNil(t, updated.DecidedAt)

	w = performJSON(t, router, http.MethodPut, "/api/v1/procurement/requests/1/decision", gin.H{
		"status": "REJECTED",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}
