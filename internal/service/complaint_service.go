// FILE: internal/service/complaint_service.go
package service

import (
	"context"
	"time"

	"devagency-be/internal/dto"
	"devagency-be/internal/entity"
	"devagency-be/internal/pkg/apperror"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"
	adminEvents "devagency-be/pkg/admin/events"

	"github.com/google/uuid"
)

type IComplaintService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.ComplaintCreateRequest) (*dto.ComplaintResponse, error)
	GetOwn(ctx context.Context, userId uuid.UUID) ([]*dto.ComplaintResponse, error)
	GetDetail(ctx context.Context, userId, complaintId uuid.UUID) (*dto.ComplaintDetailResponse, error)
	AddMessage(ctx context.Context, userId uuid.UUID, userRole entity.UserRole, complaintId uuid.UUID, req *dto.ComplaintMessageRequest) (*dto.ComplaintMessageResponse, error)
	RequestReopen(ctx context.Context, userId, complaintId uuid.UUID) (*dto.ComplaintResponse, error)
}

type complaintService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher adminEvents.Publisher
}

func NewComplaintService(uowFactory unitofwork.RepositoryFactory, eventPublisher adminEvents.Publisher) IComplaintService {
	return &complaintService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func toComplaintResponse(c *entity.Complaint) *dto.ComplaintResponse {
	return &dto.ComplaintResponse{
		Id:           c.Id,
		Subject:      c.Subject,
		Message:      c.Message,
		Status:       string(c.Status),
		ReopenStatus: string(c.ReopenStatus),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (s *complaintService) Create(ctx context.Context, userId uuid.UUID, req *dto.ComplaintCreateRequest) (*dto.ComplaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaint := &entity.Complaint{
		Id:           uuid.New(),
		UserId:       userId,
		Subject:      req.Subject,
		Message:      req.Message,
		Status:       entity.ComplaintStatusOpen,
		ReopenStatus: entity.ReopenStatusNone,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.ComplaintRepository().Create(ctx, complaint); err != nil {
		return nil, err
	}

	return toComplaintResponse(complaint), nil
}

func (s *complaintService) GetOwn(ctx context.Context, userId uuid.UUID) ([]*dto.ComplaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaints, err := uow.ComplaintRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		result = append(result, toComplaintResponse(c))
	}
	return result, nil
}

func (s *complaintService) GetDetail(ctx context.Context, userId, complaintId uuid.UUID) (*dto.ComplaintDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaint, err := uow.ComplaintRepository().FindOne(ctx,
		specification.ByID{ID: complaintId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, apperror.NotFound("complaint not found")
	}

	messages, err := uow.ComplaintRepository().FindMessages(ctx, complaintId)
	if err != nil {
		return nil, err
	}

	msgResponses := make([]dto.ComplaintMessageResponse, 0, len(messages))
	for _, m := range messages {
		msgResponses = append(msgResponses, dto.ComplaintMessageResponse{
			Id:         m.Id,
			SenderId:   m.SenderId,
			SenderRole: string(m.SenderRole),
			Body:       m.Body,
			CreatedAt:  m.CreatedAt,
		})
	}

	return &dto.ComplaintDetailResponse{
		Complaint: *toComplaintResponse(complaint),
		Messages:  msgResponses,
	}, nil
}

func (s *complaintService) AddMessage(ctx context.Context, userId uuid.UUID, userRole entity.UserRole, complaintId uuid.UUID, req *dto.ComplaintMessageRequest) (*dto.ComplaintMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.ByID{ID: complaintId}}
	// Admins can reply to any thread, users only to their own.
	if userRole == entity.UserRoleUser {
		specs = append(specs, specification.UserOwnedBy{UserID: userId})
	}

	complaint, err := uow.ComplaintRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, apperror.NotFound("complaint not found")
	}
	if complaint.Status == entity.ComplaintStatusResolved {
		return nil, apperror.InvalidState("this complaint is resolved, request a reopen to continue the thread")
	}

	message := &entity.ComplaintMessage{
		Id:          uuid.New(),
		ComplaintId: complaintId,
		SenderId:    userId,
		SenderRole:  userRole,
		Body:        req.Body,
		CreatedAt:   time.Now(),
	}

	if err := uow.ComplaintRepository().CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil && userRole != entity.UserRoleUser {
		s.eventPublisher.PublishComplaintReplied(ctx, complaintId, complaint.UserId, string(userRole))
	}

	return &dto.ComplaintMessageResponse{
		Id:         message.Id,
		SenderId:   message.SenderId,
		SenderRole: string(message.SenderRole),
		Body:       message.Body,
		CreatedAt:  message.CreatedAt,
	}, nil
}

func (s *complaintService) RequestReopen(ctx context.Context, userId, complaintId uuid.UUID) (*dto.ComplaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaint, err := uow.ComplaintRepository().FindOne(ctx,
		specification.ByID{ID: complaintId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, apperror.NotFound("complaint not found")
	}

	ok, err := uow.ComplaintRepository().RequestReopen(ctx, complaintId, userId)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.InvalidState("this complaint cannot be reopened right now")
	}

	complaint.ReopenStatus = entity.ReopenStatusPending
	return toComplaintResponse(complaint), nil
}
