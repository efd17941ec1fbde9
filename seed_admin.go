package main

import (
	"log"
	"os"

	"studio-booking-server/database"
	"studio-booking-server/models"
	"studio-booking-server/utils"
)

// seedDefaultAdmin creates the initial admin account when the users
// table is empty. Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD,
// with local-development defaults.
func seedDefaultAdmin() error {
	var count int64
	if err := database.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@studio.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Name:         "Studio Admin",
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("👤 Seeded default admin account (%s)", email)
	return nil
}
