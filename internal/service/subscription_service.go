// FILE: internal/service/subscription_service.go
package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"devagency-be/internal/dto"
	"devagency-be/internal/entity"
	"devagency-be/internal/pkg/apperror"
	"devagency-be/internal/pkg/storage"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"
	adminEvents "devagency-be/pkg/admin/events"
	"devagency-be/pkg/lifecycle"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	Subscribe(ctx context.Context, userId uuid.UUID, req *dto.SubscribeRequest, receipt *multipart.FileHeader) (*dto.SubscribeResponse, error)
	GetCurrent(ctx context.Context, userId uuid.UUID) (*dto.CurrentSubscriptionResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.SubscriptionResponse, error)
	RequestCancellation(ctx context.Context, userId, subscriptionId uuid.UUID, req *dto.CancellationRequest) (*dto.CancellationResponse, error)
	CheckCoupon(ctx context.Context, req *dto.CouponCheckRequest) (*dto.CouponCheckResponse, error)
}

type subscriptionService struct {
	uowFactory       unitofwork.RepositoryFactory
	engine           *lifecycle.Engine
	store            *storage.LocalStore
	eventPublisher   adminEvents.Publisher
	publisherService IPublisherService
}

func NewSubscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	engine *lifecycle.Engine,
	store *storage.LocalStore,
	eventPublisher adminEvents.Publisher,
	publisherService IPublisherService,
) ISubscriptionService {
	return &subscriptionService{
		uowFactory:       uowFactory,
		engine:           engine,
		store:            store,
		eventPublisher:   eventPublisher,
		publisherService: publisherService,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, userId uuid.UUID, req *dto.SubscribeRequest, receipt *multipart.FileHeader) (*dto.SubscribeResponse, error) {
	if receipt == nil {
		return nil, apperror.Validation("a payment receipt image is required")
	}

	// Store the receipt before opening the transaction. If the order fails
	// the file is removed again so the uploads dir doesn't collect orphans.
	imageURL, err := s.store.SaveReceipt(userId, receipt)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	out, err := s.engine.Subscribe(ctx, uow, lifecycle.SubscribeInput{
		UserId:        userId,
		PlanName:      req.Plan,
		TransactionId: req.TransactionId,
		PaymentMethod: req.PaymentMethod,
		PaymentImage:  imageURL,
		CouponCode:    req.CouponCode,
	})
	if err != nil {
		if removeErr := s.store.Remove(imageURL); removeErr != nil {
			fmt.Printf("[WARN] Failed to remove orphaned receipt %s: %v\n", imageURL, removeErr)
		}
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.PublishSubscriptionCreated(ctx, out.Subscription.Id, userId, out.Plan.Name, out.Subscription.UniqueId, out.AmountCharged)
	}

	if s.publisherService != nil {
		user, userErr := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		if userErr == nil && user != nil {
			if pubErr := s.publisherService.PublishReceiptEmail(ctx, dto.ReceiptEmailMessage{
				SubscriptionId: out.Subscription.Id,
				Email:          user.Email,
				PlanName:       out.Plan.Name,
				UniqueId:       out.Subscription.UniqueId,
				Amount:         out.AmountCharged,
			}); pubErr != nil {
				fmt.Printf("[WARN] Failed to queue receipt email for %s: %v\n", out.Subscription.UniqueId, pubErr)
			}
		}
	}

	return &dto.SubscribeResponse{
		SubscriptionId: out.Subscription.Id,
		UniqueId:       out.Subscription.UniqueId,
		Status:         string(out.Subscription.Status),
		AmountCharged:  out.AmountCharged,
		Discount:       out.Discount,
		Message:        "order received, awaiting payment verification",
	}, nil
}

func (s *subscriptionService) toResponse(ctx context.Context, uow unitofwork.UnitOfWork, sub *entity.Subscription, now time.Time) (*dto.SubscriptionResponse, error) {
	planName := ""
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return nil, err
	}
	if plan != nil {
		planName = plan.Name
	}

	return &dto.SubscriptionResponse{
		Id:                 sub.Id,
		PlanId:             sub.PlanId,
		PlanName:           planName,
		Status:             string(lifecycle.EffectiveStatus(sub, now)),
		CancellationStatus: string(sub.CancellationStatus),
		UniqueId:           sub.UniqueId,
		ExpiresAt:          sub.ExpiresAt,
		RejectionReason:    sub.RejectionReason,
		CreatedAt:          sub.CreatedAt,
	}, nil
}

func (s *subscriptionService) GetCurrent(ctx context.Context, userId uuid.UUID) (*dto.CurrentSubscriptionResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := s.engine.ResolveCurrent(ctx, uow, userId, now)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return &dto.CurrentSubscriptionResponse{HasSubscription: false}, nil
	}

	resp, err := s.toResponse(ctx, uow, current, now)
	if err != nil {
		return nil, err
	}
	return &dto.CurrentSubscriptionResponse{HasSubscription: true, Subscription: resp}, nil
}

func (s *subscriptionService) GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.SubscriptionResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		resp, err := s.toResponse(ctx, uow, sub, now)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *subscriptionService) RequestCancellation(ctx context.Context, userId, subscriptionId uuid.UUID, req *dto.CancellationRequest) (*dto.CancellationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.engine.RequestCancellation(ctx, uow, subscriptionId, userId, req.Reason)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.PublishCancellationRequested(ctx, sub.Id, userId, req.Reason)
	}

	return &dto.CancellationResponse{
		SubscriptionId:     sub.Id,
		CancellationStatus: string(sub.CancellationStatus),
		Message:            "cancellation request submitted, awaiting review",
	}, nil
}

func (s *subscriptionService) CheckCoupon(ctx context.Context, req *dto.CouponCheckRequest) (*dto.CouponCheckResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByName{Name: req.Plan})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan %q not found", req.Plan)
	}

	coupon, err := uow.CouponRepository().FindOne(ctx, specification.ByCode{Code: req.Code})
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return &dto.CouponCheckResponse{Valid: false, Message: "invalid coupon code"}, nil
	}
	if !coupon.Usable(now) {
		return &dto.CouponCheckResponse{Valid: false, Message: "this coupon can no longer be used"}, nil
	}

	discount := coupon.Amount
	if discount > plan.Price {
		discount = plan.Price
	}

	return &dto.CouponCheckResponse{
		Valid:      true,
		Discount:   discount,
		FinalPrice: plan.Price - discount,
	}, nil
}
