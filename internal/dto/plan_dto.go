// FILE: internal/dto/plan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// PlanResponse is the public pricing-page shape.
type PlanResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	OldPrice     float64   `json:"old_price,omitempty"`
	Savings      string    `json:"savings,omitempty"`
	Features     []string  `json:"features"`
	Highlight    bool      `json:"highlight"`
	Color        string    `json:"color,omitempty"`
	DurationDays int       `json:"duration_days"`
	CreatedAt    time.Time `json:"created_at"`
}

// --- Admin Plan Management ---

type AdminPlanCreateRequest struct {
	Name         string   `json:"name" validate:"required"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	OldPrice     float64  `json:"old_price,omitempty" validate:"omitempty,gte=0"`
	Savings      string   `json:"savings,omitempty"`
	Features     []string `json:"features" validate:"required,min=1"`
	Highlight    bool     `json:"highlight"`
	Color        string   `json:"color,omitempty"`
	DurationDays int      `json:"duration_days" validate:"required,gt=0"`
}

type AdminPlanUpdateRequest struct {
	Name         *string   `json:"name,omitempty"`
	Price        *float64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	OldPrice     *float64  `json:"old_price,omitempty" validate:"omitempty,gte=0"`
	Savings      *string   `json:"savings,omitempty"`
	Features     *[]string `json:"features,omitempty" validate:"omitempty,min=1"`
	Highlight    *bool     `json:"highlight,omitempty"`
	Color        *string   `json:"color,omitempty"`
	DurationDays *int      `json:"duration_days,omitempty" validate:"omitempty,gt=0"`
}
