// FILE: internal/dto/admin_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Admin User Management ---

type AdminUserListResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminUpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user coadmin admin"`
}

// --- Admin Subscription Review ---

type AdminSubscriptionListResponse struct {
	Id            uuid.UUID     `json:"id"`
	UniqueId      string        `json:"unique_id"`
	User          AdminUserInfo `json:"user"`
	PlanName      string        `json:"plan_name"`
	PlanPrice     float64       `json:"plan_price"`
	Status        string        `json:"status"`
	TransactionId string        `json:"transaction_id"`
	PaymentMethod string        `json:"payment_method"`
	PaymentImage  string        `json:"payment_image,omitempty"`
	ExpiresAt     *time.Time    `json:"expires_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// AdminReviewSubscriptionRequest settles a pending subscription. Reason is
// required when rejecting.
type AdminReviewSubscriptionRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Reason string `json:"reason,omitempty"`
}

type AdminReviewSubscriptionResponse struct {
	SubscriptionId uuid.UUID  `json:"subscription_id"`
	Status         string     `json:"status"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	ProcessedAt    time.Time  `json:"processed_at"`
}

// --- Dashboard Stats ---

type AdminStatsResponse struct {
	TotalUsers            int64   `json:"total_users"`
	PendingSubscriptions  int64   `json:"pending_subscriptions"`
	ActiveSubscriptions   int64   `json:"active_subscriptions"`
	PendingCancellations  int64   `json:"pending_cancellations"`
	OpenComplaints        int64   `json:"open_complaints"`
	ProjectsInProgress    int64   `json:"projects_in_progress"`
	ActiveRevenue         float64 `json:"active_revenue"`
}

// --- Permissions ---

// PermissionsResponse tells the frontend which admin surfaces to render.
type PermissionsResponse struct {
	CanManageUsers         bool `json:"can_manage_users"`
	CanReviewSubscriptions bool `json:"can_review_subscriptions"`
	CanManageContent       bool `json:"can_manage_content"`
	CanViewStats           bool `json:"can_view_stats"`
}
