// FILE: cmd/seed/main.go
package main

import (
	"log"
	"os"

	"devagency-be/internal/config"
	"devagency-be/internal/model"
	"devagency-be/pkg/database"

	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	SeedPlans(db)
	SeedPaymentOptions(db)
	SeedNotificationTypes(db)
	SeedAdminUser(db)

	color.Green("Success: seed data applied.")
}

// SeedPlans inserts the default subscription plans. Existing rows (matched
// by name) are left untouched so price edits in the admin panel survive.
func SeedPlans(db *gorm.DB) {
	plans := []model.Plan{
		{
			Name:         "Starter",
			Price:        49.0,
			OldPrice:     79.0,
			Savings:      "Save 38%",
			Features:     datatypes.NewJSONSlice([]string{"Landing page", "1 revision round", "Email support"}),
			Color:        "emerald",
			DurationDays: 30,
		},
		{
			Name:         "Professional",
			Price:        129.0,
			OldPrice:     199.0,
			Savings:      "Save 35%",
			Features:     datatypes.NewJSONSlice([]string{"Multi-page website", "CMS integration", "3 revision rounds", "Priority support"}),
			Highlight:    true,
			Color:        "indigo",
			DurationDays: 30,
		},
		{
			Name:         "Enterprise",
			Price:        349.0,
			OldPrice:     499.0,
			Savings:      "Save 30%",
			Features:     datatypes.NewJSONSlice([]string{"Custom web application", "Unlimited revisions", "Dedicated team", "24/7 support"}),
			Color:        "amber",
			DurationDays: 30,
		},
	}

	for _, p := range plans {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&p).Error
		if err != nil {
			color.Yellow("Warn: failed to seed plan %s: %v", p.Name, err)
		}
	}
	log.Printf("Seeded %d plans", len(plans))
}

func SeedPaymentOptions(db *gorm.DB) {
	options := []model.PaymentOption{
		{
			Name:         "Bank Transfer",
			Method:       "bank_transfer",
			AccountId:    "001-2345-6789",
			Instructions: "Transfer the exact amount and upload the receipt.",
			IsActive:     true,
		},
		{
			Name:         "QRIS",
			Method:       "qris",
			QRImageURL:   "/uploads/static/qris.png",
			Instructions: "Scan the QR code with any supported wallet app.",
			IsActive:     true,
		},
	}

	for _, o := range options {
		var count int64
		db.Model(&model.PaymentOption{}).Where("method = ?", o.Method).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&o).Error; err != nil {
			color.Yellow("Warn: failed to seed payment option %s: %v", o.Name, err)
		}
	}
	log.Printf("Seeded payment options")
}

// SeedAdminUser creates the initial admin account if no admin exists yet.
// Credentials come from SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
func SeedAdminUser(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		log.Println("Admin user already exists, skipping")
		return
	}

	email := getEnvOr("SEED_ADMIN_EMAIL", "admin@devagency.local")
	password := getEnvOr("SEED_ADMIN_PASSWORD", "changeme123")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Yellow("Warn: failed to hash admin password: %v", err)
		return
	}
	hashStr := string(hash)

	admin := model.User{
		Email:        email,
		PasswordHash: &hashStr,
		FullName:     "Administrator",
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		color.Yellow("Warn: failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %s", email)
}

func getEnvOr(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
