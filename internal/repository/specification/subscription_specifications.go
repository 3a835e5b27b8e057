package specification

import "gorm.io/gorm"

// ByStatus filters subscriptions by lifecycle status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByCancellationStatus filters subscriptions by the cancellation sub-state
type ByCancellationStatus struct {
	Status string
}

func (s ByCancellationStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("cancellation_status = ?", s.Status)
}

// SubscriptionSearchQuery matches the short code or transaction reference
// shown in the admin review table (case-insensitive)
type SubscriptionSearchQuery struct {
	Query string
}

func (s SubscriptionSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("unique_id ILIKE ? OR transaction_id ILIKE ?", pattern, pattern)
}

// ByPlanName filters coupons/plans by exact name
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// ByCode filters by coupon code
type ByCode struct {
	Code string
}

func (s ByCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("code = ?", s.Code)
}

// ActiveOnly keeps rows flagged is_active
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
