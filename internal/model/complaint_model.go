// FILE: internal/model/complaint_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Complaint struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject      string    `gorm:"type:varchar(255)"`
	Message      string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(50);not null;default:'open';index"`
	ReopenStatus string    `gorm:"type:varchar(50);not null;default:'none'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Complaint) TableName() string {
	return "complaints"
}

type ComplaintMessage struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ComplaintId uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderId    uuid.UUID `gorm:"type:uuid;not null"`
	SenderRole  string    `gorm:"type:varchar(50);not null"`
	Body        string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ComplaintMessage) TableName() string {
	return "complaint_messages"
}
