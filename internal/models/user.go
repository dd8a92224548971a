package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdministrator = "ADMINISTRATOR"
	RoleStaff         = "STAFF"
)

type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"size:50;unique;not null" json:"username"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	PasswordHash   string         `gorm:"size:255;not null" json:"-"`
	Role           string         `gorm:"size:20;not null;default:'STAFF'" json:"role"` // ADMINISTRATOR or STAFF
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	InactiveReason string         `gorm:"type:text" json:"inactive_reason"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
