// FILE: cmd/migrate/main.go
package main

import (
	"log"

	"devagency-be/internal/config"
	"devagency-be/internal/model"
	"devagency-be/pkg/database"

	"github.com/fatih/color"
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

	log.Println("Starting GORM migration...")

	// gen_random_uuid() needs pgcrypto on Postgres < 13.
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	models := []interface{}{
		&model.User{},
		&model.PasswordResetToken{},
		&model.Plan{},
		&model.Subscription{},
		&model.Coupon{},
		&model.ProjectRequirement{},
		&model.Complaint{},
		&model.ComplaintMessage{},
		&model.TeamMember{},
		&model.Service{},
		&model.SiteFeature{},
		&model.PaymentOption{},
		&model.NewsletterSubscriber{},
		&model.ContactMessage{},
		&model.NotificationType{},
		&model.Notification{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	color.Green("Success: database migration completed (%d tables).", len(models))
}
