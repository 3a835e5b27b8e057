// FILE: internal/service/admin_service.go
package service

import (
	"context"
	"time"

	"devagency-be/internal/dto"
	"devagency-be/internal/entity"
	"devagency-be/internal/pkg/apperror"
	"devagency-be/internal/pkg/logger"
	"devagency-be/internal/pkg/serverutils"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"
	"devagency-be/pkg/admin/content"
	"devagency-be/pkg/admin/dashboard"
	adminEvents "devagency-be/pkg/admin/events"
	"devagency-be/pkg/admin/plan"
	"devagency-be/pkg/admin/project"
	"devagency-be/pkg/admin/user"
	"devagency-be/pkg/lifecycle"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetPermissions(role entity.UserRole) *dto.PermissionsResponse
	GetStats(ctx context.Context) (*dto.AdminStatsResponse, error)
	GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)

	// User management
	GetUsers(ctx context.Context, search string, limit, offset int) ([]*dto.AdminUserListResponse, error)
	UpdateUserRole(ctx context.Context, actorRole entity.UserRole, userId uuid.UUID, req dto.AdminUpdateUserRoleRequest) (*dto.AdminUserListResponse, error)

	// Subscription review
	GetSubscriptions(ctx context.Context, status, search string, limit, offset int) ([]*dto.AdminSubscriptionListResponse, error)
	ReviewSubscription(ctx context.Context, subscriptionId uuid.UUID, req dto.AdminReviewSubscriptionRequest) (*dto.AdminReviewSubscriptionResponse, error)

	// Cancellation review
	GetCancellations(ctx context.Context, limit, offset int) ([]*dto.AdminCancellationListResponse, error)
	ProcessCancellation(ctx context.Context, subscriptionId uuid.UUID, req dto.AdminSettleCancellationRequest) (*dto.AdminSettleCancellationResponse, error)

	// Project tracker
	GetProjects(ctx context.Context, status string, limit, offset int) ([]*dto.AdminProjectListResponse, error)
	UpdateProject(ctx context.Context, projectId uuid.UUID, req dto.AdminProjectUpdateRequest) (*dto.ProjectRequirementResponse, error)

	// Complaints
	GetComplaints(ctx context.Context, status string, limit, offset int) ([]*dto.AdminComplaintListResponse, error)
	ResolveComplaint(ctx context.Context, complaintId uuid.UUID) (*dto.ComplaintResponse, error)
	DecideReopen(ctx context.Context, complaintId uuid.UUID, req dto.AdminReopenDecisionRequest) (*dto.ComplaintResponse, error)

	// Plan management
	GetPlans(ctx context.Context) ([]*dto.PlanResponse, error)
	CreatePlan(ctx context.Context, req dto.AdminPlanCreateRequest) (*dto.PlanResponse, error)
	UpdatePlan(ctx context.Context, planId uuid.UUID, req dto.AdminPlanUpdateRequest) (*dto.PlanResponse, error)
	DeletePlan(ctx context.Context, planId uuid.UUID) error

	// Coupon management
	GetCoupons(ctx context.Context) ([]*dto.AdminCouponResponse, error)
	CreateCoupon(ctx context.Context, req dto.AdminCouponCreateRequest) (*dto.AdminCouponResponse, error)
	UpdateCoupon(ctx context.Context, couponId uuid.UUID, req dto.AdminCouponUpdateRequest) (*dto.AdminCouponResponse, error)
	DeleteCoupon(ctx context.Context, couponId uuid.UUID) error

	// Content management
	CreateTeamMember(ctx context.Context, req dto.AdminTeamMemberRequest) (*dto.TeamMemberResponse, error)
	UpdateTeamMember(ctx context.Context, id uuid.UUID, req dto.AdminTeamMemberRequest) (*dto.TeamMemberResponse, error)
	DeleteTeamMember(ctx context.Context, id uuid.UUID) error
	CreateService(ctx context.Context, req dto.AdminServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, id uuid.UUID, req dto.AdminServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
	CreateSiteFeature(ctx context.Context, req dto.AdminSiteFeatureRequest) (*dto.SiteFeatureResponse, error)
	UpdateSiteFeature(ctx context.Context, id uuid.UUID, req dto.AdminSiteFeatureRequest) (*dto.SiteFeatureResponse, error)
	DeleteSiteFeature(ctx context.Context, id uuid.UUID) error
	CreatePaymentOption(ctx context.Context, req dto.AdminPaymentOptionRequest) (*dto.PaymentOptionResponse, error)
	UpdatePaymentOption(ctx context.Context, id uuid.UUID, req dto.AdminPaymentOptionRequest) (*dto.PaymentOptionResponse, error)
	DeletePaymentOption(ctx context.Context, id uuid.UUID) error

	// Inbound forms
	GetNewsletterSubscribers(ctx context.Context, limit, offset int) ([]*dto.NewsletterSubscriberResponse, error)
	GetContactMessages(ctx context.Context, limit, offset int) ([]*dto.ContactMessageResponse, error)
}

type adminService struct {
	uowFactory     unitofwork.RepositoryFactory
	engine         *lifecycle.Engine
	userManager    *user.Manager
	projectManager *project.Manager
	planManager    *plan.Manager
	contentManager *content.Manager
	dashboard      *dashboard.Aggregator
	eventPublisher adminEvents.Publisher
	logger         logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	engine *lifecycle.Engine,
	userManager *user.Manager,
	projectManager *project.Manager,
	planManager *plan.Manager,
	contentManager *content.Manager,
	dashboardAggregator *dashboard.Aggregator,
	eventPublisher adminEvents.Publisher,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:     uowFactory,
		engine:         engine,
		userManager:    userManager,
		projectManager: projectManager,
		planManager:    planManager,
		contentManager: contentManager,
		dashboard:      dashboardAggregator,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *adminService) GetPermissions(role entity.UserRole) *dto.PermissionsResponse {
	p := serverutils.PermissionsFor(role)
	return &dto.PermissionsResponse{
		CanManageUsers:         p.CanManageUsers,
		CanReviewSubscriptions: p.CanReviewSubscriptions,
		CanManageContent:       p.CanManageContent,
		CanViewStats:           p.CanViewStats,
	}
}

func (s *adminService) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.dashboard.GetStats(ctx, uow, time.Now())
}

func (s *adminService) GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	return s.logger.GetLogs(level, limit, offset)
}

// --- User management ---

func (s *adminService) GetUsers(ctx context.Context, search string, limit, offset int) ([]*dto.AdminUserListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := s.userManager.List(ctx, uow, search, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminUserListResponse, 0, len(users))
	for _, u := range users {
		result = append(result, &dto.AdminUserListResponse{
			Id:        u.Id,
			Email:     u.Email,
			FullName:  u.FullName,
			Role:      string(u.Role),
			CreatedAt: u.CreatedAt,
		})
	}
	return result, nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, actorRole entity.UserRole, userId uuid.UUID, req dto.AdminUpdateUserRoleRequest) (*dto.AdminUserListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	updated, err := s.userManager.UpdateRole(ctx, uow, actorRole, userId, req)
	if err != nil {
		return nil, err
	}

	return &dto.AdminUserListResponse{
		Id:        updated.Id,
		Email:     updated.Email,
		FullName:  updated.FullName,
		Role:      string(updated.Role),
		CreatedAt: updated.CreatedAt,
	}, nil
}

// --- Subscription review ---

func (s *adminService) GetSubscriptions(ctx context.Context, status, search string, limit, offset int) ([]*dto.AdminSubscriptionListResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "subscriptions.created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}
	if search != "" {
		specs = append(specs, specification.SubscriptionSearchQuery{Query: search})
	}

	reviews, err := uow.SubscriptionRepository().FindAllForReview(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminSubscriptionListResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, &dto.AdminSubscriptionListResponse{
			Id:       r.Id,
			UniqueId: r.UniqueId,
			User: dto.AdminUserInfo{
				Id:       r.UserId,
				Email:    r.UserEmail,
				FullName: r.UserFullName,
			},
			PlanName:      r.PlanName,
			PlanPrice:     r.PlanPrice,
			Status:        string(lifecycle.EffectiveStatus(&r.Subscription, now)),
			TransactionId: r.TransactionId,
			PaymentMethod: r.PaymentMethod,
			PaymentImage:  r.PaymentImage,
			ExpiresAt:     r.ExpiresAt,
			CreatedAt:     r.CreatedAt,
		})
	}
	return result, nil
}

func (s *adminService) ReviewSubscription(ctx context.Context, subscriptionId uuid.UUID, req dto.AdminReviewSubscriptionRequest) (*dto.AdminReviewSubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var sub *entity.Subscription
	var err error
	switch req.Action {
	case "approve":
		sub, err = s.engine.Approve(ctx, uow, subscriptionId)
	case "reject":
		sub, err = s.engine.Reject(ctx, uow, subscriptionId, req.Reason)
	default:
		return nil, apperror.Validation("unknown action %q", req.Action)
	}
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		planName := ""
		if p, planErr := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: sub.PlanId}); planErr == nil && p != nil {
			planName = p.Name
		}
		switch req.Action {
		case "approve":
			if sub.ExpiresAt != nil {
				s.eventPublisher.PublishSubscriptionApproved(ctx, sub.Id, sub.UserId, planName, *sub.ExpiresAt)
			}
		case "reject":
			s.eventPublisher.PublishSubscriptionRejected(ctx, sub.Id, sub.UserId, planName, req.Reason)
		}
	}

	return &dto.AdminReviewSubscriptionResponse{
		SubscriptionId: sub.Id,
		Status:         string(sub.Status),
		ExpiresAt:      sub.ExpiresAt,
		ProcessedAt:    time.Now(),
	}, nil
}

// --- Cancellation review ---

func (s *adminService) GetCancellations(ctx context.Context, limit, offset int) ([]*dto.AdminCancellationListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reviews, err := uow.SubscriptionRepository().FindAllForReview(ctx,
		specification.ByCancellationStatus{Status: string(entity.CancellationStatusPending)},
		specification.OrderBy{Field: "cancellation_request_date", Desc: false},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminCancellationListResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, &dto.AdminCancellationListResponse{
			SubscriptionId: r.Id,
			UniqueId:       r.UniqueId,
			User: dto.AdminUserInfo{
				Id:       r.UserId,
				Email:    r.UserEmail,
				FullName: r.UserFullName,
			},
			PlanName:                r.PlanName,
			Reason:                  r.CancellationReason,
			CancellationStatus:      string(r.CancellationStatus),
			CancellationRequestDate: r.CancellationRequestDate,
			ExpiresAt:               r.ExpiresAt,
		})
	}
	return result, nil
}

func (s *adminService) ProcessCancellation(ctx context.Context, subscriptionId uuid.UUID, req dto.AdminSettleCancellationRequest) (*dto.AdminSettleCancellationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	approve := req.Action == "approve"
	sub, err := s.engine.SettleCancellation(ctx, uow, subscriptionId, approve, req.Reason)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.PublishCancellationProcessed(ctx, sub.Id, sub.UserId, approve, req.Reason)
	}

	return &dto.AdminSettleCancellationResponse{
		SubscriptionId:     sub.Id,
		CancellationStatus: string(sub.CancellationStatus),
		ProcessedAt:        time.Now(),
	}, nil
}

// --- Project tracker ---

func (s *adminService) GetProjects(ctx context.Context, status string, limit, offset int) ([]*dto.AdminProjectListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reviews, err := s.projectManager.List(ctx, uow, status, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminProjectListResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, &dto.AdminProjectListResponse{
			Id: r.Id,
			User: dto.AdminUserInfo{
				Id:       r.UserId,
				Email:    r.UserEmail,
				FullName: r.UserFullName,
			},
			ProjectIdea:       r.ProjectIdea,
			WebsitePreference: r.WebsitePreference,
			Status:            string(r.Status),
			ProjectLink:       r.ProjectLink,
			CreatedAt:         r.CreatedAt,
			UpdatedAt:         r.UpdatedAt,
		})
	}
	return result, nil
}

func (s *adminService) UpdateProject(ctx context.Context, projectId uuid.UUID, req dto.AdminProjectUpdateRequest) (*dto.ProjectRequirementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	updated, err := s.projectManager.UpdateStatus(ctx, uow, projectId, req)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(updated), nil
}

// --- Complaints ---

func (s *adminService) GetComplaints(ctx context.Context, status string, limit, offset int) ([]*dto.AdminComplaintListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if status != "" {
		specs = append(specs, specification.Filter("status", status))
	}

	complaints, err := uow.ComplaintRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	// Resolve the owners in one query.
	ids := make([]uuid.UUID, 0, len(complaints))
	for _, c := range complaints {
		ids = append(ids, c.UserId)
	}
	owners := map[uuid.UUID]*entity.User{}
	if len(ids) > 0 {
		users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			owners[u.Id] = u
		}
	}

	result := make([]*dto.AdminComplaintListResponse, 0, len(complaints))
	for _, c := range complaints {
		info := dto.AdminUserInfo{Id: c.UserId}
		if owner, ok := owners[c.UserId]; ok {
			info.Email = owner.Email
			info.FullName = owner.FullName
		}
		result = append(result, &dto.AdminComplaintListResponse{
			Id:           c.Id,
			User:         info,
			Subject:      c.Subject,
			Status:       string(c.Status),
			ReopenStatus: string(c.ReopenStatus),
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
		})
	}
	return result, nil
}

func (s *adminService) ResolveComplaint(ctx context.Context, complaintId uuid.UUID) (*dto.ComplaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaint, err := uow.ComplaintRepository().FindOne(ctx, specification.ByID{ID: complaintId})
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, apperror.NotFound("complaint not found")
	}
	if complaint.Status == entity.ComplaintStatusResolved {
		return nil, apperror.InvalidState("complaint is already resolved")
	}

	complaint.Status = entity.ComplaintStatusResolved
	if err := uow.ComplaintRepository().Update(ctx, complaint); err != nil {
		return nil, err
	}

	return toComplaintResponse(complaint), nil
}

func (s *adminService) DecideReopen(ctx context.Context, complaintId uuid.UUID, req dto.AdminReopenDecisionRequest) (*dto.ComplaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	accept := req.Action == "accept"
	ok, err := uow.ComplaintRepository().SettleReopen(ctx, complaintId, accept)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.InvalidState("no reopen request is pending on this complaint")
	}

	complaint, err := uow.ComplaintRepository().FindOne(ctx, specification.ByID{ID: complaintId})
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, apperror.NotFound("complaint not found")
	}
	return toComplaintResponse(complaint), nil
}

// --- Plan management ---

func (s *adminService) GetPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := uow.PlanRepository().FindAll(ctx, specification.OrderBy{Field: "price", Desc: false})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		result = append(result, toPlanResponse(p))
	}
	return result, nil
}

func (s *adminService) CreatePlan(ctx context.Context, req dto.AdminPlanCreateRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	created, err := s.planManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(created), nil
}

func (s *adminService) UpdatePlan(ctx context.Context, planId uuid.UUID, req dto.AdminPlanUpdateRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	updated, err := s.planManager.Update(ctx, uow, planId, req)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(updated), nil
}

func (s *adminService) DeletePlan(ctx context.Context, planId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.planManager.Delete(ctx, uow, planId)
}

// --- Coupon management ---

func toCouponResponse(c *entity.Coupon) *dto.AdminCouponResponse {
	return &dto.AdminCouponResponse{
		Id:         c.Id,
		Code:       c.Code,
		Amount:     c.Amount,
		ExpiresAt:  c.ExpiresAt,
		UsageLimit: c.UsageLimit,
		UsedCount:  c.UsedCount,
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt,
	}
}

func (s *adminService) GetCoupons(ctx context.Context) ([]*dto.AdminCouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	coupons, err := s.contentManager.ListCoupons(ctx, uow)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminCouponResponse, 0, len(coupons))
	for _, c := range coupons {
		result = append(result, toCouponResponse(c))
	}
	return result, nil
}

func (s *adminService) CreateCoupon(ctx context.Context, req dto.AdminCouponCreateRequest) (*dto.AdminCouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	created, err := s.contentManager.CreateCoupon(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	return toCouponResponse(created), nil
}

func (s *adminService) UpdateCoupon(ctx context.Context, couponId uuid.UUID, req dto.AdminCouponUpdateRequest) (*dto.AdminCouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	updated, err := s.contentManager.UpdateCoupon(ctx, uow, couponId, req)
	if err != nil {
		return nil, err
	}
	return toCouponResponse(updated), nil
}

func (s *adminService) DeleteCoupon(ctx context.Context, couponId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.contentManager.DeleteCoupon(ctx, uow, couponId)
}

// --- Content management ---

func toTeamMemberResponse(m *entity.TeamMember) *dto.TeamMemberResponse {
	return &dto.TeamMemberResponse{
		Id:        m.Id,
		Name:      m.Name,
		Role:      m.Role,
		PhotoURL:  m.PhotoURL,
		Bio:       m.Bio,
		SortOrder: m.SortOrder,
	}
}

func (s *adminService) CreateTeamMember(ctx context.Context, req dto.AdminTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	created, err := s.contentManager.CreateTeamMember(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	return toTeamMemberResponse(created), nil
}

func (s *adminService) UpdateTeamMember(ctx context.Context, id uuid.UUID, req dto.AdminTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.contentManager.UpdateTeamMember(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return toTeamMemberResponse(updated), nil
}

func (s *adminService) DeleteTeamMember(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.contentManager.DeleteTeamMember(ctx, uow, id)
}

func toServiceResponse(svc *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		Id:          svc.Id,
		Title:       svc.Title,
		Description: svc.Description,
		Icon:        svc.Icon,
		SortOrder:   svc.SortOrder,
	}
}

func (s *adminService) CreateService(ctx context.Context, req dto.AdminServiceRequest) (*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	created, err := s.contentManager.CreateService(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	return toServiceResponse(created), nil
}

func (s *adminService) UpdateService(ctx context.Context, id uuid.UUID, req dto.AdminServiceRequest) (*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.contentManager.UpdateService(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return toServiceResponse(updated), nil
}

func (s *adminService) DeleteService(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.contentManager.DeleteService(ctx, uow, id)
}

func toSiteFeatureResponse(f *entity.SiteFeature) *dto.SiteFeatureResponse {
	return &dto.SiteFeatureResponse{
		Id:          f.Id,
		Title:       f.Title,
		Description: f.Description,
		Icon:        f.Icon,
		SortOrder:   f.SortOrder,
	}
}

func (s *adminService) CreateSiteFeature(ctx context.Context, req dto.AdminSiteFeatureRequest) (*dto.SiteFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	created, err := s.contentManager.CreateSiteFeature(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	return toSiteFeatureResponse(created), nil
}

func (s *adminService) UpdateSiteFeature(ctx context.Context, id uuid.UUID, req dto.AdminSiteFeatureRequest) (*dto.SiteFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.contentManager.UpdateSiteFeature(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return toSiteFeatureResponse(updated), nil
}

func (s *adminService) DeleteSiteFeature(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.contentManager.DeleteSiteFeature(ctx, uow, id)
}

func toPaymentOptionResponse(o *entity.PaymentOption) *dto.PaymentOptionResponse {
	return &dto.PaymentOptionResponse{
		Id:           o.Id,
		Name:         o.Name,
		Method:       o.Method,
		AccountId:    o.AccountId,
		QRImageURL:   o.QRImageURL,
		Instructions: o.Instructions,
	}
}

func (s *adminService) CreatePaymentOption(ctx context.Context, req dto.AdminPaymentOptionRequest) (*dto.PaymentOptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	created, err := s.contentManager.CreatePaymentOption(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	return toPaymentOptionResponse(created), nil
}

func (s *adminService) UpdatePaymentOption(ctx context.Context, id uuid.UUID, req dto.AdminPaymentOptionRequest) (*dto.PaymentOptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.contentManager.UpdatePaymentOption(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return toPaymentOptionResponse(updated), nil
}

func (s *adminService) DeletePaymentOption(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.contentManager.DeletePaymentOption(ctx, uow, id)
}

// --- Inbound forms ---

func (s *adminService) GetNewsletterSubscribers(ctx context.Context, limit, offset int) ([]*dto.NewsletterSubscriberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.ContentRepository().FindAllNewsletterSubscribers(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NewsletterSubscriberResponse, 0, len(subs))
	for _, n := range subs {
		result = append(result, &dto.NewsletterSubscriberResponse{
			Id:        n.Id,
			Email:     n.Email,
			CreatedAt: n.CreatedAt,
		})
	}
	return result, nil
}

func (s *adminService) GetContactMessages(ctx context.Context, limit, offset int) ([]*dto.ContactMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ContentRepository().FindAllContactMessages(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, &dto.ContactMessageResponse{
			Id:        m.Id,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return result, nil
}
