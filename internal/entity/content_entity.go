// FILE: internal/entity/content_entity.go
// Marketing-site content collections. Public reads, admin CRUD.
package entity

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	Id        uuid.UUID
	Name      string
	Role      string
	PhotoURL  string
	Bio       string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Service struct {
	Id          uuid.UUID
	Title       string
	Description string
	Icon        string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SiteFeature is a "why choose us" highlight on the landing page.
type SiteFeature struct {
	Id          uuid.UUID
	Title       string
	Description string
	Icon        string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PaymentOption describes a manual payment destination (UPI handle, bank
// account) shown on the checkout page alongside its QR image.
type PaymentOption struct {
	Id           uuid.UUID
	Name         string
	Method       string
	AccountId    string
	QRImageURL   string
	Instructions string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type NewsletterSubscriber struct {
	Id        uuid.UUID
	Email     string
	CreatedAt time.Time
}

type ContactMessage struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
