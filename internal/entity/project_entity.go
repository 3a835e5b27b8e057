// FILE: internal/entity/project_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusPending          ProjectStatus = "pending"
	ProjectStatusUnderReview      ProjectStatus = "under_review"
	ProjectStatusUnderDevelopment ProjectStatus = "under_development"
	ProjectStatusLastStage        ProjectStatus = "last_stage"
	ProjectStatusFinished         ProjectStatus = "finished"
)

// ValidProjectStatus reports whether s is one of the five tracker stages.
func ValidProjectStatus(s string) bool {
	switch ProjectStatus(s) {
	case ProjectStatusPending, ProjectStatusUnderReview, ProjectStatusUnderDevelopment,
		ProjectStatusLastStage, ProjectStatusFinished:
		return true
	}
	return false
}

// ProjectRequirement is a user's submitted project brief. Admins may set the
// status to any stage (backward moves are allowed as corrections), but
// finishing requires a delivered project link.
type ProjectRequirement struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	ProjectIdea       string
	WebsitePreference string
	LinkOption        string
	Status            ProjectStatus
	ProjectLink       string
	AdminNotes        string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProjectRequirementReview joins the owner for the admin list view.
type ProjectRequirementReview struct {
	ProjectRequirement
	UserEmail    string
	UserFullName string
}
