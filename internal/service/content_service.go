// FILE: internal/service/content_service.go
package service

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"devagency-be/internal/dto"
	"devagency-be/internal/entity"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"
	adminContent "devagency-be/pkg/admin/content"
	adminEvents "devagency-be/pkg/admin/events"

	"github.com/google/uuid"
)

type IContentService interface {
	GetTeamMembers(ctx context.Context) ([]*dto.TeamMemberResponse, error)
	GetServices(ctx context.Context) ([]*dto.ServiceResponse, error)
	GetSiteFeatures(ctx context.Context) ([]*dto.SiteFeatureResponse, error)
	GetPaymentOptions(ctx context.Context) ([]*dto.PaymentOptionResponse, error)
	SubscribeNewsletter(ctx context.Context, req *dto.NewsletterSubscribeRequest) error
	SubmitContactMessage(ctx context.Context, req *dto.ContactMessageRequest) error
}

// contentService serves the public landing page. Every collection is read
// through the shared cache; admin writes invalidate the matching key.
type contentService struct {
	uowFactory     unitofwork.RepositoryFactory
	cache          *gocache.Cache
	eventPublisher adminEvents.Publisher
}

func NewContentService(uowFactory unitofwork.RepositoryFactory, cache *gocache.Cache, eventPublisher adminEvents.Publisher) IContentService {
	return &contentService{
		uowFactory:     uowFactory,
		cache:          cache,
		eventPublisher: eventPublisher,
	}
}

func (s *contentService) GetTeamMembers(ctx context.Context) ([]*dto.TeamMemberResponse, error) {
	if cached, found := s.cache.Get(adminContent.CacheKeyTeam); found {
		if members, ok := cached.([]*dto.TeamMemberResponse); ok {
			return members, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	members, err := uow.ContentRepository().FindAllTeamMembers(ctx, specification.OrderBy{Field: "sort_order"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, &dto.TeamMemberResponse{
			Id:        m.Id,
			Name:      m.Name,
			Role:      m.Role,
			PhotoURL:  m.PhotoURL,
			Bio:       m.Bio,
			SortOrder: m.SortOrder,
		})
	}

	s.cache.Set(adminContent.CacheKeyTeam, result, gocache.DefaultExpiration)
	return result, nil
}

func (s *contentService) GetServices(ctx context.Context) ([]*dto.ServiceResponse, error) {
	if cached, found := s.cache.Get(adminContent.CacheKeyServices); found {
		if services, ok := cached.([]*dto.ServiceResponse); ok {
			return services, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	services, err := uow.ContentRepository().FindAllServices(ctx, specification.OrderBy{Field: "sort_order"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ServiceResponse, 0, len(services))
	for _, svc := range services {
		result = append(result, &dto.ServiceResponse{
			Id:          svc.Id,
			Title:       svc.Title,
			Description: svc.Description,
			Icon:        svc.Icon,
			SortOrder:   svc.SortOrder,
		})
	}

	s.cache.Set(adminContent.CacheKeyServices, result, gocache.DefaultExpiration)
	return result, nil
}

func (s *contentService) GetSiteFeatures(ctx context.Context) ([]*dto.SiteFeatureResponse, error) {
	if cached, found := s.cache.Get(adminContent.CacheKeySiteFeatures); found {
		if features, ok := cached.([]*dto.SiteFeatureResponse); ok {
			return features, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	features, err := uow.ContentRepository().FindAllSiteFeatures(ctx, specification.OrderBy{Field: "sort_order"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SiteFeatureResponse, 0, len(features))
	for _, f := range features {
		result = append(result, &dto.SiteFeatureResponse{
			Id:          f.Id,
			Title:       f.Title,
			Description: f.Description,
			Icon:        f.Icon,
			SortOrder:   f.SortOrder,
		})
	}

	s.cache.Set(adminContent.CacheKeySiteFeatures, result, gocache.DefaultExpiration)
	return result, nil
}

func (s *contentService) GetPaymentOptions(ctx context.Context) ([]*dto.PaymentOptionResponse, error) {
	if cached, found := s.cache.Get(adminContent.CacheKeyPaymentOptions); found {
		if options, ok := cached.([]*dto.PaymentOptionResponse); ok {
			return options, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	options, err := uow.ContentRepository().FindAllPaymentOptions(ctx, specification.Filter("is_active", true))
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PaymentOptionResponse, 0, len(options))
	for _, o := range options {
		result = append(result, &dto.PaymentOptionResponse{
			Id:           o.Id,
			Name:         o.Name,
			Method:       o.Method,
			AccountId:    o.AccountId,
			QRImageURL:   o.QRImageURL,
			Instructions: o.Instructions,
		})
	}

	s.cache.Set(adminContent.CacheKeyPaymentOptions, result, gocache.DefaultExpiration)
	return result, nil
}

func (s *contentService) SubscribeNewsletter(ctx context.Context, req *dto.NewsletterSubscribeRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Duplicate signups succeed quietly, the form shouldn't leak whether
	// an address is already on the list.
	existing, err := uow.ContentRepository().FindNewsletterSubscriber(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	return uow.ContentRepository().CreateNewsletterSubscriber(ctx, &entity.NewsletterSubscriber{
		Id:        uuid.New(),
		Email:     req.Email,
		CreatedAt: time.Now(),
	})
}

func (s *contentService) SubmitContactMessage(ctx context.Context, req *dto.ContactMessageRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	msg := &entity.ContactMessage{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := uow.ContentRepository().CreateContactMessage(ctx, msg); err != nil {
		return err
	}

	s.eventPublisher.PublishContactMessageReceived(ctx, msg.Id, msg.Name, msg.Email)
	return nil
}
