package lifecycle

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devagency-be/internal/entity"
	"devagency-be/internal/pkg/apperror"
	"devagency-be/internal/pkg/logger"
	"devagency-be/internal/repository/contract"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"
)

// --- test doubles ---

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
func (nopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}

type fakeSubscriptionRepo struct {
	subs map[uuid.UUID]*entity.Subscription
	// when set, conditional updates report zero rows affected, standing in
	// for a concurrent writer winning the race
	loseRaces bool
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: map[uuid.UUID]*entity.Subscription{}}
}

func (r *fakeSubscriptionRepo) matches(sub *entity.Subscription, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByID:
			if sub.Id != spec.ID {
				return false
			}
		case specification.UserOwnedBy:
			if sub.UserId != spec.UserID {
				return false
			}
		case specification.OrderBy:
			// ordering handled in FindAll
		default:
			// unknown filters fail closed so tests notice
			return false
		}
	}
	return true
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *entity.Subscription) error {
	sub.Id = uuid.New()
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	clone := *sub
	r.subs[sub.Id] = &clone
	return nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, sub *entity.Subscription) error {
	clone := *sub
	r.subs[sub.Id] = &clone
	return nil
}

func (r *fakeSubscriptionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	for _, sub := range r.subs {
		if r.matches(sub, specs) {
			clone := *sub
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, sub := range r.subs {
		if r.matches(sub, specs) {
			clone := *sub
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSubscriptionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	subs, _ := r.FindAll(ctx, specs...)
	return int64(len(subs)), nil
}

func (r *fakeSubscriptionRepo) FindAllForReview(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionReview, error) {
	return nil, nil
}

func (r *fakeSubscriptionRepo) applyUpdates(sub *entity.Subscription, updates map[string]interface{}) {
	for k, v := range updates {
		switch k {
		case "expires_at":
			t := v.(time.Time)
			sub.ExpiresAt = &t
		case "rejection_reason":
			sub.RejectionReason = v.(string)
		case "cancellation_approved_date":
			t := v.(time.Time)
			sub.CancellationApprovedDate = &t
		case "cancellation_rejection_reason":
			sub.CancellationRejectionReason = v.(string)
		}
	}
}

func (r *fakeSubscriptionRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.SubscriptionStatus, updates map[string]interface{}) (bool, error) {
	if r.loseRaces {
		return false, nil
	}
	sub, ok := r.subs[id]
	if !ok || sub.Status != from {
		return false, nil
	}
	sub.Status = to
	r.applyUpdates(sub, updates)
	return true, nil
}

func (r *fakeSubscriptionRepo) RequestCancellation(ctx context.Context, id, userId uuid.UUID, reason string, now time.Time) (bool, error) {
	if r.loseRaces {
		return false, nil
	}
	sub, ok := r.subs[id]
	if !ok || sub.UserId != userId ||
		sub.Status != entity.SubscriptionStatusActive ||
		(sub.CancellationStatus != entity.CancellationStatusNone &&
			sub.CancellationStatus != entity.CancellationStatusRejected) {
		return false, nil
	}
	sub.CancellationStatus = entity.CancellationStatusPending
	sub.CancellationReason = reason
	sub.CancellationRequestDate = &now
	sub.CancellationRejectionReason = ""
	return true, nil
}

func (r *fakeSubscriptionRepo) SettleCancellation(ctx context.Context, id uuid.UUID, to entity.CancellationStatus, updates map[string]interface{}) (bool, error) {
	if r.loseRaces {
		return false, nil
	}
	sub, ok := r.subs[id]
	if !ok || sub.CancellationStatus != entity.CancellationStatusPending {
		return false, nil
	}
	sub.CancellationStatus = to
	r.applyUpdates(sub, updates)
	return true, nil
}

func (r *fakeSubscriptionRepo) CountByStatus(ctx context.Context, status entity.SubscriptionStatus) (int64, error) {
	return 0, nil
}

func (r *fakeSubscriptionRepo) CountPendingCancellations(ctx context.Context) (int64, error) {
	return 0, nil
}

func (r *fakeSubscriptionRepo) ActiveRevenue(ctx context.Context, now time.Time) (float64, error) {
	return 0, nil
}

type fakePlanRepo struct {
	plans []*entity.Plan
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *entity.Plan) error { return nil }
func (r *fakePlanRepo) Update(ctx context.Context, plan *entity.Plan) error { return nil }
func (r *fakePlanRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func (r *fakePlanRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error) {
	for _, plan := range r.plans {
		ok := true
		for _, s := range specs {
			switch spec := s.(type) {
			case specification.ByID:
				if plan.Id != spec.ID {
					ok = false
				}
			case specification.ByName:
				if plan.Name != spec.Name {
					ok = false
				}
			}
		}
		if ok {
			return plan, nil
		}
	}
	return nil, nil
}

func (r *fakePlanRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error) {
	return r.plans, nil
}

type fakeCouponRepo struct {
	coupons []*entity.Coupon
}

func (r *fakeCouponRepo) Create(ctx context.Context, c *entity.Coupon) error { return nil }
func (r *fakeCouponRepo) Update(ctx context.Context, c *entity.Coupon) error { return nil }
func (r *fakeCouponRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }

func (r *fakeCouponRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Coupon, error) {
	for _, c := range r.coupons {
		for _, s := range specs {
			if spec, ok := s.(specification.ByCode); ok && c.Code == spec.Code {
				return c, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeCouponRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Coupon, error) {
	return r.coupons, nil
}

func (r *fakeCouponRepo) Consume(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	for _, c := range r.coupons {
		if c.Id == id && c.Usable(now) {
			c.UsedCount++
			return true, nil
		}
	}
	return false, nil
}

type fakeUow struct {
	subs    *fakeSubscriptionRepo
	plans   *fakePlanRepo
	coupons *fakeCouponRepo
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		subs:    newFakeSubscriptionRepo(),
		plans:   &fakePlanRepo{},
		coupons: &fakeCouponRepo{},
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository                 { return nil }
func (u *fakeUow) PlanRepository() contract.PlanRepository                 { return u.plans }
func (u *fakeUow) SubscriptionRepository() contract.SubscriptionRepository { return u.subs }
func (u *fakeUow) ProjectRepository() contract.ProjectRepository           { return nil }
func (u *fakeUow) ComplaintRepository() contract.ComplaintRepository       { return nil }
func (u *fakeUow) CouponRepository() contract.CouponRepository             { return u.coupons }
func (u *fakeUow) ContentRepository() contract.ContentRepository           { return nil }

var _ unitofwork.UnitOfWork = (*fakeUow)(nil)

// --- fixtures ---

func starterPlan() *entity.Plan {
	return &entity.Plan{
		Id:           uuid.New(),
		Name:         "Starter",
		Price:        499,
		DurationDays: 30,
	}
}

func subscribeInput(userId uuid.UUID) SubscribeInput {
	return SubscribeInput{
		UserId:        userId,
		PlanName:      "Starter",
		TransactionId: "TXN-1001",
		PaymentMethod: "bank_transfer",
		PaymentImage:  "http://localhost:3000/uploads/receipts/x.png",
	}
}

// --- tests ---

func TestSubscribeCreatesPendingSubscription(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	engine := NewEngine(nopLogger{})
	userId := uuid.New()

	out, err := engine.Subscribe(context.Background(), uow, subscribeInput(userId))
	require.NoError(t, err)

	assert.Equal(t, entity.SubscriptionStatusPending, out.Subscription.Status)
	assert.Equal(t, entity.CancellationStatusNone, out.Subscription.CancellationStatus)
	assert.Nil(t, out.Subscription.ExpiresAt, "expiry must not be set before approval")
	assert.True(t, strings.HasPrefix(out.Subscription.UniqueId, "WD-"))
	assert.Equal(t, 499.0, out.AmountCharged)
	assert.Zero(t, out.Discount)
}

func TestSubscribeRejectsUnknownPlan(t *testing.T) {
	uow := newFakeUow()
	engine := NewEngine(nopLogger{})

	_, err := engine.Subscribe(context.Background(), uow, subscribeInput(uuid.New()))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestSubscribeBlockedWhileLiveSubscriptionExists(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	engine := NewEngine(nopLogger{})
	userId := uuid.New()

	_, err := engine.Subscribe(context.Background(), uow, subscribeInput(userId))
	require.NoError(t, err)

	_, err = engine.Subscribe(context.Background(), uow, subscribeInput(userId))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidState))
}

func TestSubscribeAllowedAfterRejection(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	engine := NewEngine(nopLogger{})
	userId := uuid.New()

	out, err := engine.Subscribe(context.Background(), uow, subscribeInput(userId))
	require.NoError(t, err)
	_, err = engine.Reject(context.Background(), uow, out.Subscription.Id, "unreadable payment proof")
	require.NoError(t, err)

	_, err = engine.Subscribe(context.Background(), uow, subscribeInput(userId))
	assert.NoError(t, err, "a rejected history must not block re-subscribing")
}

func TestSubscribeWithCoupon(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	coupon := &entity.Coupon{Id: uuid.New(), Code: "LAUNCH50", Amount: 50, IsActive: true, UsageLimit: 1}
	uow.coupons.coupons = []*entity.Coupon{coupon}
	engine := NewEngine(nopLogger{})

	in := subscribeInput(uuid.New())
	in.CouponCode = "LAUNCH50"

	out, err := engine.Subscribe(context.Background(), uow, in)
	require.NoError(t, err)
	assert.Equal(t, 50.0, out.Discount)
	assert.Equal(t, 449.0, out.AmountCharged)
	assert.Equal(t, 1, coupon.UsedCount)

	// The limit is spent now; the next redemption fails.
	in2 := subscribeInput(uuid.New())
	in2.CouponCode = "LAUNCH50"
	_, err = engine.Subscribe(context.Background(), uow, in2)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindCoupon))
}

func TestSubscribeCouponDiscountCappedAtPlanPrice(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	uow.coupons.coupons = []*entity.Coupon{
		{Id: uuid.New(), Code: "BIG", Amount: 10000, IsActive: true},
	}
	engine := NewEngine(nopLogger{})

	in := subscribeInput(uuid.New())
	in.CouponCode = "BIG"

	out, err := engine.Subscribe(context.Background(), uow, in)
	require.NoError(t, err)
	assert.Equal(t, 499.0, out.Discount)
	assert.Zero(t, out.AmountCharged)
}

func TestSubscribeUnknownCoupon(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	engine := NewEngine(nopLogger{})

	in := subscribeInput(uuid.New())
	in.CouponCode = "NOPE"

	_, err := engine.Subscribe(context.Background(), uow, in)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindCoupon))
}

func TestApproveStampsExpiryOnce(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	engine := NewEngine(nopLogger{})

	out, err := engine.Subscribe(context.Background(), uow, subscribeInput(uuid.New()))
	require.NoError(t, err)

	approved, err := engine.Approve(context.Background(), uow, out.Subscription.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusActive, approved.Status)
	require.NotNil(t, approved.ExpiresAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *approved.ExpiresAt, 5*time.Second)

	// Approving again must fail, not move the expiry.
	_, err = engine.Approve(context.Background(), uow, out.Subscription.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidState))
}

func TestApproveLosingRaceReturnsInvalidState(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	engine := NewEngine(nopLogger{})

	out, err := engine.Subscribe(context.Background(), uow, subscribeInput(uuid.New()))
	require.NoError(t, err)

	uow.subs.loseRaces = true
	_, err = engine.Approve(context.Background(), uow, out.Subscription.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidState))
}

func TestRejectRequiresReason(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	engine := NewEngine(nopLogger{})

	out, err := engine.Subscribe(context.Background(), uow, subscribeInput(uuid.New()))
	require.NoError(t, err)

	_, err = engine.Reject(context.Background(), uow, out.Subscription.Id, "")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	rejected, err := engine.Reject(context.Background(), uow, out.Subscription.Id, "mismatched transfer amount")
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusRejected, rejected.Status)
	assert.Equal(t, "mismatched transfer amount", rejected.RejectionReason)
}

func TestRequestCancellationFlow(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	engine := NewEngine(nopLogger{})
	userId := uuid.New()

	out, err := engine.Subscribe(context.Background(), uow, subscribeInput(userId))
	require.NoError(t, err)
	_, err = engine.Approve(context.Background(), uow, out.Subscription.Id)
	require.NoError(t, err)

	sub, err := engine.RequestCancellation(context.Background(), uow, out.Subscription.Id, userId, "no longer needed")
	require.NoError(t, err)
	assert.Equal(t, entity.CancellationStatusPending, sub.CancellationStatus)
	assert.NotNil(t, sub.CancellationRequestDate)

	// A second request while one is pending is refused.
	_, err = engine.RequestCancellation(context.Background(), uow, out.Subscription.Id, userId, "again")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidState))
}

func TestRequestCancellationRefusedForOtherUsers(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	engine := NewEngine(nopLogger{})
	owner := uuid.New()

	out, err := engine.Subscribe(context.Background(), uow, subscribeInput(owner))
	require.NoError(t, err)
	_, err = engine.Approve(context.Background(), uow, out.Subscription.Id)
	require.NoError(t, err)

	_, err = engine.RequestCancellation(context.Background(), uow, out.Subscription.Id, uuid.New(), "not mine")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRequestCancellationOnLapsedSubscription(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	engine := NewEngine(nopLogger{})
	userId := uuid.New()

	out, err := engine.Subscribe(context.Background(), uow, subscribeInput(userId))
	require.NoError(t, err)
	_, err = engine.Approve(context.Background(), uow, out.Subscription.Id)
	require.NoError(t, err)

	// Backdate the expiry well into the past.
	stored := uow.subs.subs[out.Subscription.Id]
	past := time.Now().Add(-24 * time.Hour)
	stored.ExpiresAt = &past

	_, err = engine.RequestCancellation(context.Background(), uow, out.Subscription.Id, userId, "too late")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidState))
	assert.Equal(t, entity.SubscriptionStatusExpired, uow.subs.subs[out.Subscription.Id].Status,
		"lapsed expiry must be persisted on the way")
}

func TestSettleCancellation(t *testing.T) {
	setup := func(t *testing.T) (*fakeUow, *Engine, uuid.UUID, uuid.UUID) {
		uow := newFakeUow()
		uow.plans.plans = []*entity.Plan{starterPlan()}
		engine := NewEngine(nopLogger{})
		userId := uuid.New()

		out, err := engine.Subscribe(context.Background(), uow, subscribeInput(userId))
		require.NoError(t, err)
		_, err = engine.Approve(context.Background(), uow, out.Subscription.Id)
		require.NoError(t, err)
		_, err = engine.RequestCancellation(context.Background(), uow, out.Subscription.Id, userId, "moving abroad")
		require.NoError(t, err)
		return uow, engine, out.Subscription.Id, userId
	}

	t.Run("approve ends the subscription", func(t *testing.T) {
		uow, engine, subId, _ := setup(t)
		sub, err := engine.SettleCancellation(context.Background(), uow, subId, true, "")
		require.NoError(t, err)
		assert.Equal(t, entity.CancellationStatusApproved, sub.CancellationStatus)
		assert.NotNil(t, sub.CancellationApprovedDate)
		assert.Equal(t, StatusCancelled, EffectiveStatus(sub, time.Now()))
	})

	t.Run("reject requires a reason and reactivates", func(t *testing.T) {
		uow, engine, subId, _ := setup(t)

		_, err := engine.SettleCancellation(context.Background(), uow, subId, false, "")
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))

		sub, err := engine.SettleCancellation(context.Background(), uow, subId, false, "retention offer accepted")
		require.NoError(t, err)
		assert.Equal(t, entity.CancellationStatusRejected, sub.CancellationStatus)
		assert.Equal(t, entity.SubscriptionStatusActive, EffectiveStatus(sub, time.Now()))
	})

	t.Run("settling twice fails", func(t *testing.T) {
		uow, engine, subId, _ := setup(t)
		_, err := engine.SettleCancellation(context.Background(), uow, subId, true, "")
		require.NoError(t, err)
		_, err = engine.SettleCancellation(context.Background(), uow, subId, true, "")
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidState))
	})

	t.Run("rejected cancellation can be requested again", func(t *testing.T) {
		uow, engine, subId, userId := setup(t)
		_, err := engine.SettleCancellation(context.Background(), uow, subId, false, "retention offer accepted")
		require.NoError(t, err)

		stored := uow.subs.subs[subId]
		assert.Equal(t, entity.CancellationStatusRejected, stored.CancellationStatus)

		// A fresh request resets the rejected sub-state to pending and
		// drops the stale rejection reason.
		sub, err := engine.RequestCancellation(context.Background(), uow, subId, userId, "still want out")
		require.NoError(t, err)
		assert.Equal(t, entity.CancellationStatusPending, sub.CancellationStatus)
		assert.Equal(t, "still want out", sub.CancellationReason)
		assert.Empty(t, sub.CancellationRejectionReason)
		assert.Equal(t, entity.CancellationStatusPending, stored.CancellationStatus)
		assert.Empty(t, stored.CancellationRejectionReason)
	})
}

func TestResolveCurrentPersistsLazyExpiry(t *testing.T) {
	uow := newFakeUow()
	uow.plans.plans = []*entity.Plan{starterPlan()}
	engine := NewEngine(nopLogger{})
	userId := uuid.New()

	out, err := engine.Subscribe(context.Background(), uow, subscribeInput(userId))
	require.NoError(t, err)
	_, err = engine.Approve(context.Background(), uow, out.Subscription.Id)
	require.NoError(t, err)

	stored := uow.subs.subs[out.Subscription.Id]
	past := time.Now().Add(-time.Hour)
	stored.ExpiresAt = &past

	current, err := engine.ResolveCurrent(context.Background(), uow, userId, time.Now())
	require.NoError(t, err)
	require.NotNil(t, current, "history exists, so the most recent row is returned")
	assert.Equal(t, entity.SubscriptionStatusExpired, current.Status)
	assert.Equal(t, entity.SubscriptionStatusExpired, uow.subs.subs[out.Subscription.Id].Status,
		"the expiry flip must be written back")
}

func TestResolveCurrentForNewUser(t *testing.T) {
	uow := newFakeUow()
	engine := NewEngine(nopLogger{})

	current, err := engine.ResolveCurrent(context.Background(), uow, uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, current)
}
