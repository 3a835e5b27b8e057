// FILE: internal/model/coupon_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code       string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	Amount     float64    `gorm:"type:decimal(10,2);not null"`
	ExpiresAt  *time.Time
	UsageLimit int       `gorm:"default:0"` // 0 = unlimited
	UsedCount  int       `gorm:"default:0"`
	IsActive   bool      `gorm:"default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Coupon) TableName() string {
	return "coupons"
}
