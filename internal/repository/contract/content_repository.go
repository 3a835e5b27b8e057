package contract

import (
	"context"

	"devagency-be/internal/entity"
	"devagency-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ContentRepository covers the marketing-site collections. They share CRUD
// shape, so each collection gets its own method family instead of a
// generic-over-type repository.
type ContentRepository interface {
	// Team members
	CreateTeamMember(ctx context.Context, m *entity.TeamMember) error
	UpdateTeamMember(ctx context.Context, m *entity.TeamMember) error
	DeleteTeamMember(ctx context.Context, id uuid.UUID) error
	FindAllTeamMembers(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error)

	// Services
	CreateService(ctx context.Context, s *entity.Service) error
	UpdateService(ctx context.Context, s *entity.Service) error
	DeleteService(ctx context.Context, id uuid.UUID) error
	FindAllServices(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error)

	// Site features
	CreateSiteFeature(ctx context.Context, f *entity.SiteFeature) error
	UpdateSiteFeature(ctx context.Context, f *entity.SiteFeature) error
	DeleteSiteFeature(ctx context.Context, id uuid.UUID) error
	FindAllSiteFeatures(ctx context.Context, specs ...specification.Specification) ([]*entity.SiteFeature, error)

	// Payment options
	CreatePaymentOption(ctx context.Context, p *entity.PaymentOption) error
	UpdatePaymentOption(ctx context.Context, p *entity.PaymentOption) error
	DeletePaymentOption(ctx context.Context, id uuid.UUID) error
	FindAllPaymentOptions(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentOption, error)

	// Newsletter & contact
	CreateNewsletterSubscriber(ctx context.Context, n *entity.NewsletterSubscriber) error
	FindNewsletterSubscriber(ctx context.Context, email string) (*entity.NewsletterSubscriber, error)
	FindAllNewsletterSubscribers(ctx context.Context, specs ...specification.Specification) ([]*entity.NewsletterSubscriber, error)
	CreateContactMessage(ctx context.Context, c *entity.ContactMessage) error
	FindAllContactMessages(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error)
}
