// FILE: internal/model/subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Plan struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Price        float64                     `gorm:"type:decimal(10,2);not null"`
	OldPrice     float64                     `gorm:"type:decimal(10,2);default:0"`
	Savings      string                      `gorm:"type:varchar(100)"`
	Features     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Highlight    bool                        `gorm:"default:false"`
	Color        string                      `gorm:"type:varchar(50)"`
	DurationDays int                         `gorm:"not null"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
}

func (Plan) TableName() string {
	return "plans"
}

type Subscription struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status          string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	TransactionId   string     `gorm:"type:varchar(255);not null"`
	PaymentMethod   string     `gorm:"type:varchar(50)"`
	PaymentImage    string     `gorm:"type:text;not null"`
	ExpiresAt       *time.Time `gorm:"index"`
	RejectionReason string     `gorm:"type:text"`

	CancellationStatus          string     `gorm:"type:varchar(50);not null;default:'none';index"`
	CancellationReason          string     `gorm:"type:text"`
	CancellationRequestDate     *time.Time
	CancellationApprovedDate    *time.Time
	CancellationRejectionReason string `gorm:"type:text"`

	UniqueId  string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
