package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/ledger"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func inventoryRouter(db *gorm.DB, user models.User) *gin.Engine {
	h := &InventoryHandler{DB: db}
	r := newRouter()
	grp := r.Group("/api/v1/inventory", authAs(user))
	grp.GET("/items", h.ListItems)
	grp.POST("/items", h.CreateItem)
	grp.GET("/items/:id", h.GetItem)
	grp.PUT("/items/:id", h.UpdateItem)
	grp.DELETE("/items/:id", h.DeleteItem)
	grp.GET("/alerts", h.GetStockAlerts)
	return r
}

func TestCreateItemStartsAtZeroStock(t *testing.T) {
	db := setupTestDB(t)
	user := seedStaff(t, db)
	router := inventoryRouter(db, user)

	w := performJSON(t, router, http.MethodPost, "/api/v1/inventory/items", gin.H{
		"name":      "Kertas F4",
		"category":  "ATK",
		"unit":      "rim",
		"min_stock": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Stock)
	assert.Equal(t, ledger.StatusCritical, resp.Status)
}

func TestGetItemCarriesDerivedStatus(t *testing.T) {
	db := setupTestDB(t)
	user := seedStaff(t, db)
	item := seedTestItem(t, db, 5, 10)
	router := inventoryRouter(db, user)

	w := performJSON(t, router, http.MethodGet, "/api/v1/inventory/items/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, item.Name, resp.Name)
	assert.Equal(t, ledger.StatusLow, resp.Status)
}

func TestDeleteItemRestrictedWhileLedgerEntriesExist(t *testing.T) {
	db := setupTestDB(t)
	user := seedStaff(t, db)
	item := seedTestItem(t, db, 0, 5)
	router := inventoryRouter(db, user)

	engine := ledger.NewEngine(db)
	_, err := engine.ApplyMovement(context.Background(), ledger.MovementInput{
		ItemID:    item.ID,
		Direction: models.DirectionIn,
		Quantity:  5,
		UserID:    user.ID,
	})
	require.NoError(t, err)

	w := performJSON(t, router, http.MethodDelete, "/api/v1/inventory/items/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.InventoryItem{}).Count(&count)
	assert.Equal(t, int64(1), count, "item must survive the rejected delete")
}

func TestDeleteItemWithoutLedgerEntries(t *testing.T) {
	db := setupTestDB(t)
	user := seedStaff(t, db)
	seedTestItem(t, db, 0, 5)
	router := inventoryRouter(db, user)

	w := performJSON(t, router, http.MethodDelete, "/api/v1/inventory/items/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.InventoryItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestStockAlertsListLowAndCriticalOnly(t *testing.T) {
	db := setupTestDB(t)
	user := seedStaff(t, db)
	router := inventoryRouter(db, user)

	seedTestItem(t, db, 0, 0)  // critical
	low := models.InventoryItem{Name: "Ordner", Unit: "pcs", Stock: 3, MinStock: 5}
	require.NoError(t, db.Create(&low).Error)
	normal := models.InventoryItem{Name: "Stapler", Unit: "pcs", Stock: 50, MinStock: 5}
	require.NoError(t, db.Create(&normal).Error)

	w := performJSON(t, router, http.MethodGet, "/api/v1/inventory/alerts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	for _, item := range resp {
		assert.NotEqual(t, ledger.StatusNormal, item.Status)
	}
}
