// FILE: internal/entity/plan_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plan is a priced service tier. Managed by admins, read by everyone.
type Plan struct {
	Id       uuid.UUID
	Name     string
	Price    float64
	OldPrice float64
	Savings  string
	// Ordered display list, e.g. "5 Pages", "Free Domain".
	Features     []string
	Highlight    bool
	Color        string
	DurationDays int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
