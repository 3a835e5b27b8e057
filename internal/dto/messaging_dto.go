// FILE: internal/dto/messaging_dto.go
package dto

import "github.com/google/uuid"

// ReceiptEmailMessage is the payload queued for the receipt-email worker
// after a subscription order is placed.
type ReceiptEmailMessage struct {
	SubscriptionId uuid.UUID `json:"subscription_id"`
	Email          string    `json:"email"`
	PlanName       string    `json:"plan_name"`
	UniqueId       string    `json:"unique_id"`
	Amount         float64   `json:"amount"`
}
