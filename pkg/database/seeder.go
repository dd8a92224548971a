package database

import (
	"errors"
	"log"

	"github.com/MikeNoppo/UPT-kearsipan-sub001/config"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/utils"

	"gorm.io/gorm"
)

// SeedAdmin creates the initial administrator account when it does not exist.
func SeedAdmin(db *gorm.DB) {
	if config.AppConfig.Defaults.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var admin models.User
	err := db.Where("username = ?", config.AppConfig.Defaults.AdminUsername).First(&admin).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check admin user: %v", err)
		return
	}

	hashedPassword, err := utils.HashPassword(config.AppConfig.Defaults.AdminPassword)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	user := models.User{
		Username:     config.AppConfig.Defaults.AdminUsername,
		Name:         config.AppConfig.Defaults.AdminName,
		PasswordHash: hashedPassword,
		Role:         models.RoleAdministrator,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Println("Admin user seeded successfully.")
}
