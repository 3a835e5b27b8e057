// FILE: cmd/seed/notification_seeder.go
package main

import (
	"log"

	"devagency-be/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedNotificationTypes populates the notification type catalog. The codes
// must match the event types flowing on the bus or no notification is built.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "USER_REGISTERED",
			DisplayName: "New User Registration",
			Template:    "New user registered: {email}",
			TargetType:  "ROLE",
			TargetRole:  "admin",
			IsActive:    true,
		},
		{
			Code:        "SUBSCRIPTION_CREATED",
			DisplayName: "New Subscription",
			Template:    "New order {unique_id}: {plan_name} plan, awaiting review",
			TargetType:  "ROLE",
			TargetRole:  "admin",
			IsActive:    true,
		},
		{
			Code:        "SUBSCRIPTION_APPROVED",
			DisplayName: "Subscription Approved",
			Template:    "Your {plan_name} subscription is now active until {expires_at}",
			TargetType:  "SELF",
			IsActive:    true,
		},
		{
			Code:        "SUBSCRIPTION_REJECTED",
			DisplayName: "Subscription Rejected",
			Template:    "Your {plan_name} subscription was rejected: {reason}",
			TargetType:  "SELF",
			IsActive:    true,
		},
		{
			Code:        "CANCELLATION_REQUESTED",
			DisplayName: "Cancellation Requested",
			Template:    "Cancellation requested for subscription {subscription_id}. Reason: {reason}",
			TargetType:  "ROLE",
			TargetRole:  "admin",
			IsActive:    true,
		},
		{
			Code:        "CANCELLATION_PROCESSED",
			DisplayName: "Cancellation Decision",
			Template:    "Your cancellation request has been reviewed: {reason}",
			TargetType:  "SELF",
			IsActive:    true,
		},
		{
			Code:        "PROJECT_STATUS_CHANGED",
			DisplayName: "Project Update",
			Template:    "Your project status changed to {status}",
			TargetType:  "SELF",
			IsActive:    true,
		},
		{
			Code:        "COMPLAINT_REPLIED",
			DisplayName: "Support Reply",
			Template:    "Support replied to your complaint",
			TargetType:  "SELF",
			IsActive:    true,
		},
		{
			Code:        "USER_ROLE_CHANGED",
			DisplayName: "Role Updated",
			Template:    "Your account role was changed to {new_role}",
			TargetType:  "SELF",
			IsActive:    true,
		},
		{
			Code:        "CONTACT_MESSAGE_RECEIVED",
			DisplayName: "New Contact Message",
			Template:    "New contact form message from {name} ({email})",
			TargetType:  "ROLE",
			TargetRole:  "admin",
			IsActive:    true,
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "System Announcement",
			Template:    "{message}",
			TargetType:  "BROADCAST",
			IsActive:    true,
		},
	}

	for _, t := range types {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).Create(&t).Error
		if err != nil {
			log.Printf("Warn: failed to seed notification type %s: %v", t.Code, err)
		}
	}
	log.Printf("Seeded %d notification types", len(types))
}
