// FILE: internal/dto/complaint_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- User Side ---

type ComplaintCreateRequest struct {
	Subject string `json:"subject" validate:"required,min=3"`
	Message string `json:"message" validate:"required,min=10"`
}

type ComplaintMessageRequest struct {
	Body string `json:"body" validate:"required,min=1"`
}

type ComplaintResponse struct {
	Id           uuid.UUID `json:"id"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	ReopenStatus string    `json:"reopen_status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ComplaintMessageResponse struct {
	Id         uuid.UUID `json:"id"`
	SenderId   uuid.UUID `json:"sender_id"`
	SenderRole string    `json:"sender_role"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// ComplaintDetailResponse is a complaint plus its full message thread.
type ComplaintDetailResponse struct {
	Complaint ComplaintResponse          `json:"complaint"`
	Messages  []ComplaintMessageResponse `json:"messages"`
}

// --- Admin Side ---

type AdminComplaintListResponse struct {
	Id           uuid.UUID     `json:"id"`
	User         AdminUserInfo `json:"user"`
	Subject      string        `json:"subject"`
	Status       string        `json:"status"`
	ReopenStatus string        `json:"reopen_status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// AdminReopenDecisionRequest accepts or rejects a pending reopen request.
type AdminReopenDecisionRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
}
