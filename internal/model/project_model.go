// FILE: internal/model/project_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectRequirement struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;index"`
	ProjectIdea       string    `gorm:"type:text;not null"`
	WebsitePreference string    `gorm:"type:text"`
	LinkOption        string    `gorm:"type:text"`
	Status            string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	ProjectLink       string    `gorm:"type:text"`
	AdminNotes        string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (ProjectRequirement) TableName() string {
	return "project_requirements"
}
