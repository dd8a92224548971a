package handler

import (
	"net/http"

	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArchiveHandler struct {
	DB *gorm.DB
}

type CreateArchiveRequest struct {
	ArchiveCode    string `json:"archive_code" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Category       string `json:"category"`
	Location       string `json:"location"`
	Year           int    `json:"year" binding:"required"`
	RetentionYears int    `json:"retention_years" binding:"gte=0"`
	Description    string `json:"description"`
}

func (h *ArchiveHandler) CreateArchive(c *gin.Context) {
	var req CreateArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	archive := models.Archive{
		ArchiveCode:    req.ArchiveCode,
		Title:          req.Title,
		Category:       req.Category,
		Location:       req.Location,
		Year:           req.Year,
		RetentionYears: req.RetentionYears,
		Status:         models.ArchiveStatusActive,
		Description:    req.Description,
		CreatedByID:    c.GetUint("userID"),
	}

	if err := h.DB.Create(&archive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create archive (code might be duplicate)"})
		return
	}

	h.DB.Preload("CreatedBy").First(&archive, archive.ID)
	c.JSON(http.StatusCreated, archive)
}

func (h *ArchiveHandler) ListArchives(c *gin.Context) {
	query := h.DB.Preload("CreatedBy").Order("year desc, archive_code asc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if year := c.Query("year"); year != "" {
		query = query.Where("year = ?", year)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("title LIKE ? OR archive_code LIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var archives []models.Archive
	if err := query.Find(&archives).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch archives"})
		return
	}
	c.JSON(http.StatusOK, archives)
}

func (h *ArchiveHandler) GetArchive(c *gin.Context) {
	var archive models.Archive
	if err := h.DB.Preload("CreatedBy").First(&archive, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Archive not found"})
		return
	}
	c.JSON(http.StatusOK, archive)
}

func (h *ArchiveHandler) UpdateArchive(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Title          string `json:"title" binding:"required"`
		Category       string `json:"category"`
		Location       string `json:"location"`
		Year           int    `json:"year" binding:"required"`
		RetentionYears int    `json:"retention_years" binding:"gte=0"`
		Status         string `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
		Description    string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var archive models.Archive
	if err := h.DB.First(&archive, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Archive not found"})
		return
	}

	if err := h.DB.Model(&archive).Updates(map[string]interface{}{
		"title":           req.Title,
		"category":        req.Category,
		"location":        req.Location,
		"year":            req.Year,
		"retention_years": req.RetentionYears,
		"status":          req.Status,
		"description":     req.Description,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update archive"})
		return
	}
	c.JSON(http.StatusOK, archive)
}

func (h *ArchiveHandler) DeleteArchive(c *gin.Context) {
	var archive models.Archive
	if err := h.DB.First(&archive, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Archive not found"})
		return
	}
	if err := h.DB.Delete(&archive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete archive"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Archive deleted successfully"})
}
