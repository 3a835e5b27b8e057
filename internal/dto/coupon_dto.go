// FILE: internal/dto/coupon_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Admin Coupon Management ---

type AdminCouponCreateRequest struct {
	Code       string     `json:"code" validate:"required,min=3,max=32"`
	Amount     float64    `json:"amount" validate:"required,gt=0"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	UsageLimit int        `json:"usage_limit,omitempty" validate:"omitempty,gte=0"`
	IsActive   bool       `json:"is_active"`
}

type AdminCouponUpdateRequest struct {
	Amount     *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	UsageLimit *int       `json:"usage_limit,omitempty" validate:"omitempty,gte=0"`
	IsActive   *bool      `json:"is_active,omitempty"`
}

type AdminCouponResponse struct {
	Id         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	Amount     float64    `json:"amount"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	UsageLimit int        `json:"usage_limit"`
	UsedCount  int        `json:"used_count"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}
