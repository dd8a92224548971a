package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	LetterTypeIncoming = "INCOMING"
	LetterTypeOutgoing = "OUTGOING"
)

type Letter struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	LetterNumber  string         `gorm:"size:100;not null;index" json:"letter_number"`
	Type          string         `gorm:"size:10;not null" json:"type"` // INCOMING or OUTGOING
	Subject       string         `gorm:"size:255;not null" json:"subject"`
	Correspondent string         `gorm:"size:150" json:"correspondent"` // sender or recipient institution
	LetterDate    time.Time      `json:"letter_date"`
	FilePath      string         `gorm:"size:255" json:"file_path"` // stored by external file service
	CreatedByID   uint           `gorm:"not null" json:"created_by_id"`
	CreatedBy     User           `gorm:"foreignKey:CreatedByID" json:"created_by"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
