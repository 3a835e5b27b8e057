// FILE: internal/entity/coupon_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is a flat-amount discount code. UsageLimit of 0 means unlimited.
type Coupon struct {
	Id         uuid.UUID
	Code       string
	Amount     float64
	ExpiresAt  *time.Time
	UsageLimit int
	UsedCount  int
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Usable reports whether the coupon can still be redeemed at the given time.
func (c *Coupon) Usable(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ExpiresAt != nil && !now.Before(*c.ExpiresAt) {
		return false
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return false
	}
	return true
}
