// FILE: internal/entity/subscription_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type CancellationStatus string

const (
	SubscriptionStatusPending  SubscriptionStatus = "pending"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusRejected SubscriptionStatus = "rejected"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"

	CancellationStatusNone     CancellationStatus = "none"
	CancellationStatusPending  CancellationStatus = "pending"
	CancellationStatusApproved CancellationStatus = "approved"
	CancellationStatusRejected CancellationStatus = "rejected"
)

// Subscription is a user's purchase of a Plan. Status moves pending -> active
// or pending -> rejected via admin review; active subscriptions expire by time.
// Cancellation is a secondary sub-state that only exists on active subscriptions.
type Subscription struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	PlanId        uuid.UUID
	Status        SubscriptionStatus
	TransactionId string
	PaymentMethod string
	PaymentImage  string
	// Set exactly once, when the subscription is approved.
	ExpiresAt       *time.Time
	RejectionReason string

	CancellationStatus          CancellationStatus
	CancellationReason          string
	CancellationRequestDate     *time.Time
	CancellationApprovedDate    *time.Time
	CancellationRejectionReason string

	// Short human-facing code shown in the admin review UI.
	UniqueId  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubscriptionReview is a joined view for the admin review surface.
type SubscriptionReview struct {
	Subscription
	UserEmail    string
	UserFullName string
	PlanName     string
	PlanPrice    float64
}
