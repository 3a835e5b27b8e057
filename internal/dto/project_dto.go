// FILE: internal/dto/project_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- User-Side Project Requirements ---

type ProjectRequirementRequest struct {
	ProjectIdea       string `json:"project_idea" validate:"required,min=10"`
	WebsitePreference string `json:"website_preference" validate:"required"`
	LinkOption        string `json:"link_option,omitempty"`
}

type ProjectRequirementResponse struct {
	Id                uuid.UUID `json:"id"`
	ProjectIdea       string    `json:"project_idea"`
	WebsitePreference string    `json:"website_preference"`
	LinkOption        string    `json:"link_option,omitempty"`
	Status            string    `json:"status"`
	ProjectLink       string    `json:"project_link,omitempty"`
	AdminNotes        string    `json:"admin_notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// --- Admin-Side Project Tracker ---

type AdminProjectListResponse struct {
	Id                uuid.UUID     `json:"id"`
	User              AdminUserInfo `json:"user"`
	ProjectIdea       string        `json:"project_idea"`
	WebsitePreference string        `json:"website_preference"`
	Status            string        `json:"status"`
	ProjectLink       string        `json:"project_link,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// AdminProjectUpdateRequest moves a project through the tracker. ProjectLink
// must be set when Status is "finished"; the service enforces that.
type AdminProjectUpdateRequest struct {
	Status      string `json:"status" validate:"required,oneof=pending under_review under_development last_stage finished"`
	ProjectLink string `json:"project_link,omitempty" validate:"omitempty,url"`
	AdminNotes  string `json:"admin_notes,omitempty"`
}
