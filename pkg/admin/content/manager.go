package content

import (
	"context"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"devagency-be/internal/dto"
	"devagency-be/internal/entity"
	"devagency-be/internal/pkg/apperror"
	"devagency-be/internal/pkg/logger"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"
)

// Cache keys for the public landing-page reads.
const (
	CacheKeyTeam           = "public:team"
	CacheKeyServices       = "public:services"
	CacheKeySiteFeatures   = "public:site_features"
	CacheKeyPaymentOptions = "public:payment_options"
)

// Manager handles the marketing-site collections plus coupons.
type Manager struct {
	logger logger.ILogger
	cache  *gocache.Cache
}

func NewManager(logger logger.ILogger, cache *gocache.Cache) *Manager {
	return &Manager{
		logger: logger,
		cache:  cache,
	}
}

// Team members

func (m *Manager) CreateTeamMember(ctx context.Context, uow unitofwork.UnitOfWork, req dto.AdminTeamMemberRequest) (*entity.TeamMember, error) {
	member := &entity.TeamMember{
		Name:      req.Name,
		Role:      req.Role,
		PhotoURL:  req.PhotoURL,
		Bio:       req.Bio,
		SortOrder: req.SortOrder,
	}
	if err := uow.ContentRepository().CreateTeamMember(ctx, member); err != nil {
		return nil, err
	}
	m.cache.Delete(CacheKeyTeam)
	return member, nil
}

func (m *Manager) UpdateTeamMember(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.AdminTeamMemberRequest) (*entity.TeamMember, error) {
	members, err := uow.ContentRepository().FindAllTeamMembers(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, apperror.NotFound("team member not found")
	}

	member := members[0]
	member.Name = req.Name
	member.Role = req.Role
	member.PhotoURL = req.PhotoURL
	member.Bio = req.Bio
	member.SortOrder = req.SortOrder

	if err := uow.ContentRepository().UpdateTeamMember(ctx, member); err != nil {
		return nil, err
	}
	m.cache.Delete(CacheKeyTeam)
	return member, nil
}

func (m *Manager) DeleteTeamMember(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	if err := uow.ContentRepository().DeleteTeamMember(ctx, id); err != nil {
		return err
	}
	m.cache.Delete(CacheKeyTeam)
	return nil
}

// Services

func (m *Manager) CreateService(ctx context.Context, uow unitofwork.UnitOfWork, req dto.AdminServiceRequest) (*entity.Service, error) {
	svc := &entity.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
	}
	if err := uow.ContentRepository().CreateService(ctx, svc); err != nil {
		return nil, err
	}
	m.cache.Delete(CacheKeyServices)
	return svc, nil
}

func (m *Manager) UpdateService(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.AdminServiceRequest) (*entity.Service, error) {
	services, err := uow.ContentRepository().FindAllServices(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, apperror.NotFound("service not found")
	}

	svc := services[0]
	svc.Title = req.Title
	svc.Description = req.Description
	svc.Icon = req.Icon
	svc.SortOrder = req.SortOrder

	if err := uow.ContentRepository().UpdateService(ctx, svc); err != nil {
		return nil, err
	}
	m.cache.Delete(CacheKeyServices)
	return svc, nil
}

func (m *Manager) DeleteService(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	if err := uow.ContentRepository().DeleteService(ctx, id); err != nil {
		return err
	}
	m.cache.Delete(CacheKeyServices)
	return nil
}

// Site features

func (m *Manager) CreateSiteFeature(ctx context.Context, uow unitofwork.UnitOfWork, req dto.AdminSiteFeatureRequest) (*entity.SiteFeature, error) {
	feature := &entity.SiteFeature{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
	}
	if err := uow.ContentRepository().CreateSiteFeature(ctx, feature); err != nil {
		return nil, err
	}
	m.cache.Delete(CacheKeySiteFeatures)
	return feature, nil
}

func (m *Manager) UpdateSiteFeature(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.AdminSiteFeatureRequest) (*entity.SiteFeature, error) {
	features, err := uow.ContentRepository().FindAllSiteFeatures(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if len(features) == 0 {
		return nil, apperror.NotFound("site feature not found")
	}

	feature := features[0]
	feature.Title = req.Title
	feature.Description = req.Description
	feature.Icon = req.Icon
	feature.SortOrder = req.SortOrder

	if err := uow.ContentRepository().UpdateSiteFeature(ctx, feature); err != nil {
		return nil, err
	}
	m.cache.Delete(CacheKeySiteFeatures)
	return feature, nil
}

func (m *Manager) DeleteSiteFeature(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	if err := uow.ContentRepository().DeleteSiteFeature(ctx, id); err != nil {
		return err
	}
	m.cache.Delete(CacheKeySiteFeatures)
	return nil
}

// Payment options

func (m *Manager) CreatePaymentOption(ctx context.Context, uow unitofwork.UnitOfWork, req dto.AdminPaymentOptionRequest) (*entity.PaymentOption, error) {
	option := &entity.PaymentOption{
		Name:         req.Name,
		Method:       req.Method,
		AccountId:    req.AccountId,
		QRImageURL:   req.QRImageURL,
		Instructions: req.Instructions,
		IsActive:     req.IsActive,
	}
	if err := uow.ContentRepository().CreatePaymentOption(ctx, option); err != nil {
		return nil, err
	}
	m.cache.Delete(CacheKeyPaymentOptions)
	return option, nil
}

func (m *Manager) UpdatePaymentOption(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.AdminPaymentOptionRequest) (*entity.PaymentOption, error) {
	options, err := uow.ContentRepository().FindAllPaymentOptions(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, apperror.NotFound("payment option not found")
	}

	option := options[0]
	option.Name = req.Name
	option.Method = req.Method
	option.AccountId = req.AccountId
	option.QRImageURL = req.QRImageURL
	option.Instructions = req.Instructions
	option.IsActive = req.IsActive

	if err := uow.ContentRepository().UpdatePaymentOption(ctx, option); err != nil {
		return nil, err
	}
	m.cache.Delete(CacheKeyPaymentOptions)
	return option, nil
}

func (m *Manager) DeletePaymentOption(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	if err := uow.ContentRepository().DeletePaymentOption(ctx, id); err != nil {
		return err
	}
	m.cache.Delete(CacheKeyPaymentOptions)
	return nil
}

// Coupons

func (m *Manager) CreateCoupon(ctx context.Context, uow unitofwork.UnitOfWork, req dto.AdminCouponCreateRequest) (*entity.Coupon, error) {
	existing, err := uow.CouponRepository().FindOne(ctx, specification.ByCode{Code: req.Code})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Validation("a coupon with code %q already exists", req.Code)
	}

	coupon := &entity.Coupon{
		Code:       req.Code,
		Amount:     req.Amount,
		ExpiresAt:  req.ExpiresAt,
		UsageLimit: req.UsageLimit,
		IsActive:   req.IsActive,
	}
	if err := uow.CouponRepository().Create(ctx, coupon); err != nil {
		return nil, err
	}

	m.logger.Info("ADMIN", "Coupon created", map[string]interface{}{"code": coupon.Code})
	return coupon, nil
}

func (m *Manager) UpdateCoupon(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.AdminCouponUpdateRequest) (*entity.Coupon, error) {
	coupon, err := uow.CouponRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperror.NotFound("coupon not found")
	}

	if req.Amount != nil {
		coupon.Amount = *req.Amount
	}
	if req.ExpiresAt != nil {
		coupon.ExpiresAt = req.ExpiresAt
	}
	if req.UsageLimit != nil {
		coupon.UsageLimit = *req.UsageLimit
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}

	if err := uow.CouponRepository().Update(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (m *Manager) DeleteCoupon(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	coupon, err := uow.CouponRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if coupon == nil {
		return apperror.NotFound("coupon not found")
	}
	return uow.CouponRepository().Delete(ctx, id)
}

func (m *Manager) ListCoupons(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Coupon, error) {
	return uow.CouponRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
}
