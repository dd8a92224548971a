package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.InventoryItem{},
		&models.StockTransaction{},
		&models.PurchaseRequest{},
		&models.Reception{},
		&models.Distribution{},
		&models.Letter{},
		&models.Archive{},
	))
	return db
}

func seedStaff(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Username:     "staff.arsip",
		Name:         "Staf Kearsipan",
		PasswordHash: "x",
		Role:         models.RoleStaff,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedTestItem(t *testing.T, db *gorm.DB, stock, minStock int) models.InventoryItem {
	t.Helper()
	item := models.InventoryItem{
		Name:     "Map Arsip",
		Category: "ATK",
		Unit:     "pcs",
		Stock:    stock,
		MinStock: minStock,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

// authAs stands in for the JWT middleware in tests.
func authAs(user models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Next()
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
