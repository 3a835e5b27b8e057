// FILE: internal/entity/complaint_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type ComplaintStatus string
type ReopenStatus string

const (
	ComplaintStatusOpen     ComplaintStatus = "open"
	ComplaintStatusResolved ComplaintStatus = "resolved"

	ReopenStatusNone     ReopenStatus = "none"
	ReopenStatusPending  ReopenStatus = "pending"
	ReopenStatusAccepted ReopenStatus = "accepted"
	ReopenStatusRejected ReopenStatus = "rejected"
)

// Complaint is a support ticket. The message thread is plain REST (clients
// poll), there is no realtime channel here.
type Complaint struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Subject      string
	Message      string
	Status       ComplaintStatus
	ReopenStatus ReopenStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ComplaintMessage struct {
	Id          uuid.UUID
	ComplaintId uuid.UUID
	SenderId    uuid.UUID
	SenderRole  UserRole
	Body        string
	CreatedAt   time.Time
}
