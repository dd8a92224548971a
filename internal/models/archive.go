package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ArchiveStatusActive   = "ACTIVE"
	ArchiveStatusInactive = "INACTIVE"
)

type Archive struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ArchiveCode    string         `gorm:"size:50;unique;not null" json:"archive_code"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Category       string         `gorm:"size:100" json:"category"`
	Location       string         `gorm:"size:100" json:"location"` // rack/box position
	Year           int            `gorm:"not null" json:"year"`
	RetentionYears int            `gorm:"default:0" json:"retention_years"`
	Status         string         `gorm:"size:10;not null;default:'ACTIVE'" json:"status"` // ACTIVE or INACTIVE
	Description    string         `gorm:"type:text" json:"description"`
	CreatedByID    uint           `gorm:"not null" json:"created_by_id"`
	CreatedBy      User           `gorm:"foreignKey:CreatedByID" json:"created_by"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
