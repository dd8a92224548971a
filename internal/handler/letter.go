package handler

import (
	"net/http"
	"time"

	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LetterHandler struct {
	DB *gorm.DB
}

type CreateLetterRequest struct {
	LetterNumber  string `json:"letter_number" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=INCOMING OUTGOING"`
	Subject       string `json:"subject" binding:"required"`
	Correspondent string `json:"correspondent"`
	LetterDate    string `json:"letter_date" binding:"required"` // YYYY-MM-DD
	FilePath      string `json:"file_path"`
}

func (h *LetterHandler) CreateLetter(c *gin.Context) {
	var req CreateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	letterDate, err := time.Parse("2006-01-02", req.LetterDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "letter_date must be YYYY-MM-DD"})
		return
	}

	letter := models.Letter{
		LetterNumber:  req.LetterNumber,
		Type:          req.Type,
		Subject:       req.Subject,
		Correspondent: req.Correspondent,
		LetterDate:    letterDate,
		FilePath:      req.FilePath,
		CreatedByID:   c.GetUint("userID"),
	}

	if err := h.DB.Create(&letter).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create letter"})
		return
	}

	h.DB.Preload("CreatedBy").First(&letter, letter.ID)
	c.JSON(http.StatusCreated, letter)
}

func (h *LetterHandler) ListLetters(c *gin.Context) {
	query := h.DB.Preload("CreatedBy").Order("letter_date desc")
	if letterType := c.Query("type"); letterType != "" {
		query = query.Where("type = ?", letterType)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("subject LIKE ? OR letter_number LIKE ? OR correspondent LIKE ?",
			"%"+q+"%", "%"+q+"%", "%"+q+"%")
	}

	var letters []models.Letter
	if err := query.Find(&letters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch letters"})
		return
	}
	c.JSON(http.StatusOK, letters)
}

func (h *LetterHandler) GetLetter(c *gin.Context) {
	var letter models.Letter
	if err := h.DB.Preload("CreatedBy").First(&letter, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Letter not found"})
		return
	}
	c.JSON(http.StatusOK, letter)
}

func (h *LetterHandler) UpdateLetter(c *gin.Context) {
	id := c.Param("id")
	var req CreateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	letterDate, err := time.Parse("2006-01-02", req.LetterDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "letter_date must be YYYY-MM-DD"})
		return
	}

	var letter models.Letter
	if err := h.DB.First(&letter, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Letter not found"})
		return
	}

	if err := h.DB.Model(&letter).Updates(map[string]interface{}{
		"letter_number": req.LetterNumber,
		"type":          req.Type,
		"subject":       req.Subject,
		"correspondent": req.Correspondent,
		"letter_date":   letterDate,
		"file_path":     req.FilePath,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update letter"})
		return
	}
	c.JSON(http.StatusOK, letter)
}

func (h *LetterHandler) DeleteLetter(c *gin.Context) {
	var letter models.Letter
	if err := h.DB.First(&letter, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Letter not found"})
		return
	}
	if err := h.DB.Delete(&letter).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete letter"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Letter deleted successfully"})
}
