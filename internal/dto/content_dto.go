// FILE: internal/dto/content_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Public Landing-Page Content ---

type TeamMemberResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	SortOrder int       `json:"sort_order"`
}

type ServiceResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	SortOrder   int       `json:"sort_order"`
}

type SiteFeatureResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	SortOrder   int       `json:"sort_order"`
}

type PaymentOptionResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Method       string    `json:"method"`
	AccountId    string    `json:"account_id,omitempty"`
	QRImageURL   string    `json:"qr_image_url,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
}

// --- Public Forms ---

type NewsletterSubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ContactMessageRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// --- Admin Content CRUD ---

type AdminTeamMemberRequest struct {
	Name      string `json:"name" validate:"required"`
	Role      string `json:"role,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty" validate:"omitempty,url"`
	Bio       string `json:"bio,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
}

type AdminServiceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	SortOrder   int    `json:"sort_order,omitempty"`
}

type AdminSiteFeatureRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	SortOrder   int    `json:"sort_order,omitempty"`
}

type AdminPaymentOptionRequest struct {
	Name         string `json:"name" validate:"required"`
	Method       string `json:"method" validate:"required"`
	AccountId    string `json:"account_id,omitempty"`
	QRImageURL   string `json:"qr_image_url,omitempty" validate:"omitempty,url"`
	Instructions string `json:"instructions,omitempty"`
	IsActive     bool   `json:"is_active"`
}

type ContactMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type NewsletterSubscriberResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
