package project

import (
	"context"

	"devagency-be/internal/dto"
	"devagency-be/internal/entity"
	"devagency-be/internal/pkg/apperror"
	"devagency-be/internal/pkg/logger"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"
	adminEvents "devagency-be/pkg/admin/events"

	"github.com/google/uuid"
)

// Manager moves project requirements through the tracker. Any stage may be
// set in any order (backward moves are corrections), but finishing without
// a delivered link is refused.
type Manager struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

func NewManager(logger logger.ILogger, publisher adminEvents.Publisher) *Manager {
	return &Manager{
		logger:    logger,
		publisher: publisher,
	}
}

// List returns project requirements with their owners for the admin table.
func (m *Manager) List(ctx context.Context, uow unitofwork.UnitOfWork, status string, limit, offset int) ([]*entity.ProjectRequirementReview, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if status != "" {
		if !entity.ValidProjectStatus(status) {
			return nil, apperror.Validation("unknown project status %q", status)
		}
		specs = append(specs, specification.Filter("status", status))
	}
	return uow.ProjectRepository().FindAllForReview(ctx, specs...)
}

// UpdateStatus sets the tracker stage and optional notes and link.
func (m *Manager) UpdateStatus(ctx context.Context, uow unitofwork.UnitOfWork, projectId uuid.UUID, req dto.AdminProjectUpdateRequest) (*entity.ProjectRequirement, error) {
	if !entity.ValidProjectStatus(req.Status) {
		return nil, apperror.Validation("unknown project status %q", req.Status)
	}

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: projectId})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFound("project requirement not found")
	}

	if req.ProjectLink != "" {
		project.ProjectLink = req.ProjectLink
	}
	if entity.ProjectStatus(req.Status) == entity.ProjectStatusFinished && project.ProjectLink == "" {
		return nil, apperror.Validation("a project link is required to mark a project finished")
	}

	project.Status = entity.ProjectStatus(req.Status)
	if req.AdminNotes != "" {
		project.AdminNotes = req.AdminNotes
	}

	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}

	m.logger.Info("ADMIN", "Project status updated", map[string]interface{}{
		"projectId": projectId.String(),
		"status":    req.Status,
	})
	m.publisher.PublishProjectStatusChanged(ctx, project.Id, project.UserId, req.Status, project.ProjectLink)

	return project, nil
}
