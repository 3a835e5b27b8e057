// FILE: internal/dto/subscription_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- User-Side Subscribe ---

// SubscribeRequest accompanies a multipart form whose "payment_image" part
// holds the transfer receipt. Plan is referenced by name, matching the
// pricing page the user clicked through from.
type SubscribeRequest struct {
	Plan          string `form:"plan" json:"plan" validate:"required"`
	TransactionId string `form:"transaction_id" json:"transaction_id" validate:"required"`
	PaymentMethod string `form:"payment_method" json:"payment_method" validate:"required"`
	CouponCode    string `form:"coupon_code" json:"coupon_code,omitempty"`
}

type SubscribeResponse struct {
	SubscriptionId uuid.UUID `json:"subscription_id"`
	UniqueId       string    `json:"unique_id"`
	Status         string    `json:"status"`
	AmountCharged  float64   `json:"amount_charged"`
	Discount       float64   `json:"discount,omitempty"`
	Message        string    `json:"message"`
}

// --- User-Side Status ---

// SubscriptionResponse is a single subscription with its effective status
// (expiry and approved cancellations already folded in).
type SubscriptionResponse struct {
	Id                 uuid.UUID  `json:"id"`
	PlanId             uuid.UUID  `json:"plan_id"`
	PlanName           string     `json:"plan_name"`
	Status             string     `json:"status"`
	CancellationStatus string     `json:"cancellation_status"`
	UniqueId           string     `json:"unique_id"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	RejectionReason    string     `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// CurrentSubscriptionResponse wraps the resolved "current" subscription;
// Subscription is nil when the user has never subscribed.
type CurrentSubscriptionResponse struct {
	HasSubscription bool                  `json:"has_subscription"`
	Subscription    *SubscriptionResponse `json:"subscription,omitempty"`
}

// --- Coupon Check ---

type CouponCheckRequest struct {
	Code string `json:"code" validate:"required"`
	Plan string `json:"plan" validate:"required"`
}

type CouponCheckResponse struct {
	Valid      bool    `json:"valid"`
	Discount   float64 `json:"discount,omitempty"`
	FinalPrice float64 `json:"final_price,omitempty"`
	Message    string  `json:"message,omitempty"`
}
