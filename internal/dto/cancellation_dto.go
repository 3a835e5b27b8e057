// FILE: internal/dto/cancellation_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- User-Side Cancellation Request ---

type CancellationRequest struct {
	Reason string `json:"reason" validate:"required,min=10"`
}

type CancellationResponse struct {
	SubscriptionId     uuid.UUID `json:"subscription_id"`
	CancellationStatus string    `json:"cancellation_status"`
	Message            string    `json:"message"`
}

// --- Admin-Side Cancellation Review ---

type AdminCancellationListResponse struct {
	SubscriptionId          uuid.UUID  `json:"subscription_id"`
	UniqueId                string     `json:"unique_id"`
	User                    AdminUserInfo `json:"user"`
	PlanName                string     `json:"plan_name"`
	Reason                  string     `json:"reason"`
	CancellationStatus      string     `json:"cancellation_status"`
	CancellationRequestDate *time.Time `json:"cancellation_request_date,omitempty"`
	ExpiresAt               *time.Time `json:"expires_at,omitempty"`
}

// AdminUserInfo is the embedded owner summary used across admin list views.
type AdminUserInfo struct {
	Id       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}

// AdminSettleCancellationRequest approves or rejects a pending cancellation.
// Reason is required when rejecting.
type AdminSettleCancellationRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Reason string `json:"reason,omitempty"`
}

type AdminSettleCancellationResponse struct {
	SubscriptionId     uuid.UUID  `json:"subscription_id"`
	CancellationStatus string     `json:"cancellation_status"`
	ProcessedAt        time.Time  `json:"processed_at"`
}
