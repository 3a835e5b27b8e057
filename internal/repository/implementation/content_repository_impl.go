package implementation

import (
	"context"
	"errors"

	"devagency-be/internal/entity"
	"devagency-be/internal/mapper"
	"devagency-be/internal/model"
	"devagency-be/internal/repository/contract"
	"devagency-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewContentRepository(db *gorm.DB) contract.ContentRepository {
	return &ContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ContentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Team members

func (r *ContentRepositoryImpl) CreateTeamMember(ctx context.Context, m *entity.TeamMember) error {
	row := r.mapper.TeamMemberToModel(m)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*m = *r.mapper.TeamMemberToEntity(row)
	return nil
}

func (r *ContentRepositoryImpl) UpdateTeamMember(ctx context.Context, m *entity.TeamMember) error {
	row := r.mapper.TeamMemberToModel(m)
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return err
	}
	*m = *r.mapper.TeamMemberToEntity(row)
	return nil
}

func (r *ContentRepositoryImpl) DeleteTeamMember(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TeamMember{}).Error
}

func (r *ContentRepositoryImpl) FindAllTeamMembers(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error) {
	var rows []*model.TeamMember
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.TeamMember, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.mapper.TeamMemberToEntity(row))
	}
	return out, nil
}

// Services

func (r *ContentRepositoryImpl) CreateService(ctx context.Context, s *entity.Service) error {
	row := r.mapper.ServiceToModel(s)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*s = *r.mapper.ServiceToEntity(row)
	return nil
}

func (r *ContentRepositoryImpl) UpdateService(ctx context.Context, s *entity.Service) error {
	row := r.mapper.ServiceToModel(s)
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return err
	}
	*s = *r.mapper.ServiceToEntity(row)
	return nil
}

func (r *ContentRepositoryImpl) DeleteService(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Service{}).Error
}

func (r *ContentRepositoryImpl) FindAllServices(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error) {
	var rows []*model.Service
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Service, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.mapper.ServiceToEntity(row))
	}
	return out, nil
}

// Site features

func (r *ContentRepositoryImpl) CreateSiteFeature(ctx context.Context, f *entity.SiteFeature) error {
	row := r.mapper.SiteFeatureToModel(f)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*f = *r.mapper.SiteFeatureToEntity(row)
	return nil
}

func (r *ContentRepositoryImpl) UpdateSiteFeature(ctx context.Context, f *entity.SiteFeature) error {
	row := r.mapper.SiteFeatureToModel(f)
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return err
	}
	*f = *r.mapper.SiteFeatureToEntity(row)
	return nil
}

func (r *ContentRepositoryImpl) DeleteSiteFeature(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SiteFeature{}).Error
}

func (r *ContentRepositoryImpl) FindAllSiteFeatures(ctx context.Context, specs ...specification.Specification) ([]*entity.SiteFeature, error) {
	var rows []*model.SiteFeature
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.SiteFeature, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.mapper.SiteFeatureToEntity(row))
	}
	return out, nil
}

// Payment options

func (r *ContentRepositoryImpl) CreatePaymentOption(ctx context.Context, p *entity.PaymentOption) error {
	row := r.mapper.PaymentOptionToModel(p)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*p = *r.mapper.PaymentOptionToEntity(row)
	return nil
}

func (r *ContentRepositoryImpl) UpdatePaymentOption(ctx context.Context, p *entity.PaymentOption) error {
	row := r.mapper.PaymentOptionToModel(p)
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return err
	}
	*p = *r.mapper.PaymentOptionToEntity(row)
	return nil
}

func (r *ContentRepositoryImpl) DeletePaymentOption(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PaymentOption{}).Error
}

func (r *ContentRepositoryImpl) FindAllPaymentOptions(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentOption, error) {
	var rows []*model.PaymentOption
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.PaymentOption, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.mapper.PaymentOptionToEntity(row))
	}
	return out, nil
}

// Newsletter & contact

func (r *ContentRepositoryImpl) CreateNewsletterSubscriber(ctx context.Context, n *entity.NewsletterSubscriber) error {
	row := r.mapper.NewsletterSubscriberToModel(n)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*n = *r.mapper.NewsletterSubscriberToEntity(row)
	return nil
}

func (r *ContentRepositoryImpl) FindNewsletterSubscriber(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	var row model.NewsletterSubscriber
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.NewsletterSubscriberToEntity(&row), nil
}

func (r *ContentRepositoryImpl) FindAllNewsletterSubscribers(ctx context.Context, specs ...specification.Specification) ([]*entity.NewsletterSubscriber, error) {
	var rows []*model.NewsletterSubscriber
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.NewsletterSubscriber, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.mapper.NewsletterSubscriberToEntity(row))
	}
	return out, nil
}

func (r *ContentRepositoryImpl) CreateContactMessage(ctx context.Context, c *entity.ContactMessage) error {
	row := r.mapper.ContactMessageToModel(c)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*c = *r.mapper.ContactMessageToEntity(row)
	return nil
}

func (r *ContentRepositoryImpl) FindAllContactMessages(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error) {
	var rows []*model.ContactMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.ContactMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.mapper.ContactMessageToEntity(row))
	}
	return out, nil
}
