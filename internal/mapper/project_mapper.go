// FILE: internal/mapper/project_mapper.go
package mapper

import (
	"devagency-be/internal/entity"
	"devagency-be/internal/model"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.ProjectRequirement) *entity.ProjectRequirement {
	if p == nil {
		return nil
	}
	return &entity.ProjectRequirement{
		Id:                p.Id,
		UserId:            p.UserId,
		ProjectIdea:       p.ProjectIdea,
		WebsitePreference: p.WebsitePreference,
		LinkOption:        p.LinkOption,
		Status:            entity.ProjectStatus(p.Status),
		ProjectLink:       p.ProjectLink,
		AdminNotes:        p.AdminNotes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToModel(p *entity.ProjectRequirement) *model.ProjectRequirement {
	if p == nil {
		return nil
	}
	return &model.ProjectRequirement{
		Id:                p.Id,
		UserId:            p.UserId,
		ProjectIdea:       p.ProjectIdea,
		WebsitePreference: p.WebsitePreference,
		LinkOption:        p.LinkOption,
		Status:            string(p.Status),
		ProjectLink:       p.ProjectLink,
		AdminNotes:        p.AdminNotes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
