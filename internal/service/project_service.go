// FILE: internal/service/project_service.go
package service

import (
	"context"
	"time"

	"devagency-be/internal/dto"
	"devagency-be/internal/entity"
	"devagency-be/internal/pkg/apperror"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProjectService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.ProjectRequirementRequest) (*dto.ProjectRequirementResponse, error)
	GetOwn(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectRequirementResponse, error)
	GetOne(ctx context.Context, userId, projectId uuid.UUID) (*dto.ProjectRequirementResponse, error)
}

type projectService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory) IProjectService {
	return &projectService{uowFactory: uowFactory}
}

func toProjectResponse(p *entity.ProjectRequirement) *dto.ProjectRequirementResponse {
	return &dto.ProjectRequirementResponse{
		Id:                p.Id,
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

func (s *projectService) Create(ctx context.Context, userId uuid.UUID, req *dto.ProjectRequirementRequest) (*dto.ProjectRequirementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Submitting a brief requires having placed a subscription order at
	// some point. The order doesn't have to still be live.
	count, err := uow.SubscriptionRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperror.Authorization("a subscription is required before submitting project requirements")
	}

	project := &entity.ProjectRequirement{
		Id:                uuid.New(),
		UserId:            userId,
		ProjectIdea:       req.ProjectIdea,
		WebsitePreference: req.WebsitePreference,
		LinkOption:        req.LinkOption,
		Status:            entity.ProjectStatusPending,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, err
	}

	return toProjectResponse(project), nil
}

func (s *projectService) GetOwn(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectRequirementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProjectRequirementResponse, 0, len(projects))
	for _, p := range projects {
		result = append(result, toProjectResponse(p))
	}
	return result, nil
}

func (s *projectService) GetOne(ctx context.Context, userId, projectId uuid.UUID) (*dto.ProjectRequirementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: projectId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFound("project not found")
	}

	return toProjectResponse(project), nil
}
