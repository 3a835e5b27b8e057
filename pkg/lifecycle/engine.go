package lifecycle

import (
	"context"
	"time"

	"devagency-be/internal/entity"
	"devagency-be/internal/pkg/apperror"
	"devagency-be/internal/pkg/logger"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Engine owns every subscription state transition. All writes that race
// with admin review go through conditional updates, so concurrent settles
// resolve to exactly one winner and the loser gets an invalid-state error.
type Engine struct {
	logger logger.ILogger
}

func NewEngine(logger logger.ILogger) *Engine {
	return &Engine{logger: logger}
}

// SubscribeInput carries everything the checkout form submits. PaymentImage
// is the already-stored receipt URL.
type SubscribeInput struct {
	UserId        uuid.UUID
	PlanName      string
	TransactionId string
	PaymentMethod string
	PaymentImage  string
	CouponCode    string
}

type SubscribeOutput struct {
	Subscription  *entity.Subscription
	Plan          *entity.Plan
	AmountCharged float64
	Discount      float64
}

// Subscribe creates a pending subscription. A user with a live (pending or
// active) subscription cannot open another one; rejected, expired and
// cancelled histories do not block re-subscribing.
func (e *Engine) Subscribe(ctx context.Context, uow unitofwork.UnitOfWork, in SubscribeInput) (*SubscribeOutput, error) {
	now := time.Now()

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByName{Name: in.PlanName})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan %q not found", in.PlanName)
	}

	current, err := e.ResolveCurrent(ctx, uow, in.UserId, now)
	if err != nil {
		return nil, err
	}
	if current != nil {
		switch EffectiveStatus(current, now) {
		case entity.SubscriptionStatusActive, entity.SubscriptionStatusPending:
			return nil, apperror.InvalidState("you already have a %s subscription", EffectiveStatus(current, now))
		}
	}

	var coupon *entity.Coupon
	if in.CouponCode != "" {
		coupon, err = uow.CouponRepository().FindOne(ctx, specification.ByCode{Code: in.CouponCode})
		if err != nil {
			return nil, err
		}
		if coupon == nil {
			return nil, apperror.Coupon("invalid coupon code")
		}
		if !coupon.Usable(now) {
			return nil, apperror.Coupon("coupon %s can no longer be used", coupon.Code)
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	discount := 0.0
	if coupon != nil {
		// Conditional increment keeps a coupon at its limit from being
		// redeemed twice by racing checkouts.
		ok, err := uow.CouponRepository().Consume(ctx, coupon.Id, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperror.Coupon("coupon %s is no longer available", coupon.Code)
		}
		discount = coupon.Amount
		if discount > plan.Price {
			discount = plan.Price
		}
	}

	code, err := NewOrderCode()
	if err != nil {
		return nil, err
	}

	sub := &entity.Subscription{
		UserId:             in.UserId,
		PlanId:             plan.Id,
		Status:             entity.SubscriptionStatusPending,
		TransactionId:      in.TransactionId,
		PaymentMethod:      in.PaymentMethod,
		PaymentImage:       in.PaymentImage,
		CancellationStatus: entity.CancellationStatusNone,
		UniqueId:           code,
	}
	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	e.logger.Info("LIFECYCLE", "Subscription created", map[string]interface{}{
		"subscriptionId": sub.Id.String(),
		"uniqueId":       sub.UniqueId,
		"plan":           plan.Name,
		"discount":       discount,
	})

	return &SubscribeOutput{
		Subscription:  sub,
		Plan:          plan,
		AmountCharged: plan.Price - discount,
		Discount:      discount,
	}, nil
}

// Approve activates a pending subscription and stamps its expiry from the
// plan duration. The expiry is set exactly once and never moves afterwards.
func (e *Engine) Approve(ctx context.Context, uow unitofwork.UnitOfWork, subId uuid.UUID) (*entity.Subscription, error) {
	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: subId})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription not found")
	}
	if sub.Status != entity.SubscriptionStatusPending {
		return nil, apperror.InvalidState("subscription is %s, only pending subscriptions can be approved", sub.Status)
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan for subscription not found")
	}

	now := time.Now()
	expiresAt := ExpiryFor(now, plan.DurationDays)

	ok, err := uow.SubscriptionRepository().TransitionStatus(ctx, subId,
		entity.SubscriptionStatusPending, entity.SubscriptionStatusActive,
		map[string]interface{}{"expires_at": expiresAt})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.InvalidState("subscription was already settled")
	}

	sub.Status = entity.SubscriptionStatusActive
	sub.ExpiresAt = &expiresAt

	e.logger.Info("LIFECYCLE", "Subscription approved", map[string]interface{}{
		"subscriptionId": subId.String(),
		"expiresAt":      expiresAt,
	})
	return sub, nil
}

// Reject settles a pending subscription with a reason the user will see on
// their dashboard.
func (e *Engine) Reject(ctx context.Context, uow unitofwork.UnitOfWork, subId uuid.UUID, reason string) (*entity.Subscription, error) {
	if reason == "" {
		return nil, apperror.Validation("a rejection reason is required")
	}

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: subId})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription not found")
	}
	if sub.Status != entity.SubscriptionStatusPending {
		return nil, apperror.InvalidState("subscription is %s, only pending subscriptions can be rejected", sub.Status)
	}

	ok, err := uow.SubscriptionRepository().TransitionStatus(ctx, subId,
		entity.SubscriptionStatusPending, entity.SubscriptionStatusRejected,
		map[string]interface{}{"rejection_reason": reason})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.InvalidState("subscription was already settled")
	}

	sub.Status = entity.SubscriptionStatusRejected
	sub.RejectionReason = reason

	e.logger.Info("LIFECYCLE", "Subscription rejected", map[string]interface{}{
		"subscriptionId": subId.String(),
	})
	return sub, nil
}

// RequestCancellation opens a cancellation on the caller's own active
// subscription. Expiry is checked first, so a subscription that lapsed
// since the last read cannot enter cancellation review.
func (e *Engine) RequestCancellation(ctx context.Context, uow unitofwork.UnitOfWork, subId, userId uuid.UUID, reason string) (*entity.Subscription, error) {
	now := time.Now()

	sub, err := uow.SubscriptionRepository().FindOne(ctx,
		specification.ByID{ID: subId}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription not found")
	}

	if err := e.expireIfDue(ctx, uow, sub, now); err != nil {
		return nil, err
	}
	if sub.Status != entity.SubscriptionStatusActive {
		return nil, apperror.InvalidState("only active subscriptions can be cancelled, this one is %s", EffectiveStatus(sub, now))
	}
	// A rejected request does not block a new one; the user may ask again.
	if sub.CancellationStatus != entity.CancellationStatusNone &&
		sub.CancellationStatus != entity.CancellationStatusRejected {
		return nil, apperror.InvalidState("a cancellation was already requested for this subscription")
	}

	ok, err := uow.SubscriptionRepository().RequestCancellation(ctx, subId, userId, reason, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.InvalidState("subscription state changed, please refresh and retry")
	}

	sub.CancellationStatus = entity.CancellationStatusPending
	sub.CancellationReason = reason
	sub.CancellationRequestDate = &now
	sub.CancellationRejectionReason = ""

	e.logger.Info("LIFECYCLE", "Cancellation requested", map[string]interface{}{
		"subscriptionId": subId.String(),
	})
	return sub, nil
}

// SettleCancellation approves or rejects a pending cancellation. Approval
// ends the subscription immediately; rejection returns it to plain active
// with the admin's reason recorded.
func (e *Engine) SettleCancellation(ctx context.Context, uow unitofwork.UnitOfWork, subId uuid.UUID, approve bool, reason string) (*entity.Subscription, error) {
	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: subId})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription not found")
	}
	if sub.CancellationStatus != entity.CancellationStatusPending {
		return nil, apperror.InvalidState("no cancellation is pending on this subscription")
	}

	now := time.Now()
	var to entity.CancellationStatus
	updates := map[string]interface{}{}
	if approve {
		to = entity.CancellationStatusApproved
		updates["cancellation_approved_date"] = now
	} else {
		if reason == "" {
			return nil, apperror.Validation("a reason is required when rejecting a cancellation")
		}
		to = entity.CancellationStatusRejected
		updates["cancellation_rejection_reason"] = reason
	}

	ok, err := uow.SubscriptionRepository().SettleCancellation(ctx, subId, to, updates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.InvalidState("cancellation was already settled")
	}

	sub.CancellationStatus = to
	if approve {
		sub.CancellationApprovedDate = &now
	} else {
		sub.CancellationRejectionReason = reason
	}

	e.logger.Info("LIFECYCLE", "Cancellation settled", map[string]interface{}{
		"subscriptionId": subId.String(),
		"approved":       approve,
	})
	return sub, nil
}

// ResolveCurrent returns the subscription a user's dashboard should show,
// lazily persisting expiry on any active row that has lapsed. Returns nil
// when the user has never subscribed.
func (e *Engine) ResolveCurrent(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, now time.Time) (*entity.Subscription, error) {
	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	for _, sub := range subs {
		if err := e.expireIfDue(ctx, uow, sub, now); err != nil {
			return nil, err
		}
	}

	return PickCurrent(subs, now), nil
}

// expireIfDue persists the expired status for an active row that is past
// its expiry. Losing the conditional update just means another request
// already did the same flip.
func (e *Engine) expireIfDue(ctx context.Context, uow unitofwork.UnitOfWork, sub *entity.Subscription, now time.Time) error {
	if !IsExpired(sub, now) {
		return nil
	}
	// An approved cancellation already ended this subscription; keep it
	// reading as cancelled rather than expired.
	if sub.CancellationStatus == entity.CancellationStatusApproved {
		return nil
	}
	_, err := uow.SubscriptionRepository().TransitionStatus(ctx, sub.Id,
		entity.SubscriptionStatusActive, entity.SubscriptionStatusExpired, nil)
	if err != nil {
		return err
	}
	sub.Status = entity.SubscriptionStatusExpired
	return nil
}
