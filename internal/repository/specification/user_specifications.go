package specification

import "gorm.io/gorm"

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

// UserSearchQuery filters users by name or email (case-insensitive)
type UserSearchQuery struct {
	Query string
}

func (s UserSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
}

// Token Specs

type ByToken struct {
	Token string
}

func (s ByToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token = ?", s.Token)
}

type UnusedToken struct{}

func (s UnusedToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("used = ?", false)
}
