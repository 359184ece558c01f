package main

import (
	"log"
	"os"

	"taxpilot/internal/config"
	"taxpilot/internal/models"
	"taxpilot/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err != nil {
				log.Printf("⚠️ Failed to get SQL DB instance: %v", err)
			} else if err := sqlDB.Close(); err != nil {
				log.Printf("⚠️ Failed to close PostgreSQL connection: %v", err)
			}
		}

		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	var existingAdmin models.User
	result := repositories.DB.Where("email = ?", adminEmail).First(&existingAdmin)
	if result.Error == nil {
		log.Println("Admin user already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	adminUser := models.User{
		Email:        adminEmail,
		Password:     string(hashedPassword),
		FullName:     "TaxPilot Admin",
		Role:         "admin",
		Status:       "active",
		TokenVersion: 1,
	}

	if err := repositories.DB.Create(&adminUser).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	// A demo profile so a fresh install has something to analyze.
	demoProfile := models.CompanyProfile{
		UserID:        adminUser.ID,
		Name:          "Demo Treuhand GmbH",
		LegalForm:     "GmbH",
		Canton:        "ZH",
		Revenue:       850000,
		Profit:        120000,
		Employees:     6,
		Industry:      "consulting",
		VATRegistered: true,
	}
	if err := repositories.DB.Create(&demoProfile).Error; err != nil {
		log.Printf("⚠️ Failed to create demo company profile: %v", err)
	}

	log.Println("✅ Admin account created successfully!")
}
