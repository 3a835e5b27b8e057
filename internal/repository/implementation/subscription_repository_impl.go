package implementation

import (
	"context"
	"errors"
	"time"

	"devagency-be/internal/entity"
	"devagency-be/internal/mapper"
	"devagency-be/internal/model"
	"devagency-be/internal/repository/contract"
	"devagency-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.Subscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscription *entity.Subscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	var m model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var models []*model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	subs := make([]*entity.Subscription, 0, len(models))
	for _, m := range models {
		subs = append(subs, r.mapper.ToEntity(m))
	}
	return subs, nil
}

func (r *SubscriptionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// subscriptionReviewRow is the flat scan target for the admin join.
type subscriptionReviewRow struct {
	model.Subscription
	UserEmail    string
	UserFullName string
	PlanName     string
	PlanPrice    float64
}

func (r *SubscriptionRepositoryImpl) FindAllForReview(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionReview, error) {
	var rows []subscriptionReviewRow

	query := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Select("subscriptions.*, users.email AS user_email, users.full_name AS user_full_name, plans.name AS plan_name, plans.price AS plan_price").
		Joins("JOIN users ON users.id = subscriptions.user_id").
		Joins("JOIN plans ON plans.id = subscriptions.plan_id")
	query = r.applySpecifications(query, specs...)

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	reviews := make([]*entity.SubscriptionReview, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, &entity.SubscriptionReview{
			Subscription: *r.mapper.ToEntity(&rows[i].Subscription),
			UserEmail:    rows[i].UserEmail,
			UserFullName: rows[i].UserFullName,
			PlanName:     rows[i].PlanName,
			PlanPrice:    rows[i].PlanPrice,
		})
	}
	return reviews, nil
}

func (r *SubscriptionRepositoryImpl) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.SubscriptionStatus, updates map[string]interface{}) (bool, error) {
	values := map[string]interface{}{"status": string(to)}
	for k, v := range updates {
		values[k] = v
	}

	result := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(values)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SubscriptionRepositoryImpl) RequestCancellation(ctx context.Context, id, userId uuid.UUID, reason string, now time.Time) (bool, error) {
	// A rejected sub-state is re-requestable; the stale rejection reason is
	// cleared so the admin queue shows only the fresh request.
	result := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ? AND user_id = ? AND status = ? AND cancellation_status IN ?",
			id, userId, string(entity.SubscriptionStatusActive),
			[]string{string(entity.CancellationStatusNone), string(entity.CancellationStatusRejected)}).
		Updates(map[string]interface{}{
			"cancellation_status":           string(entity.CancellationStatusPending),
			"cancellation_reason":           reason,
			"cancellation_request_date":     now,
			"cancellation_rejection_reason": "",
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SubscriptionRepositoryImpl) SettleCancellation(ctx context.Context, id uuid.UUID, to entity.CancellationStatus, updates map[string]interface{}) (bool, error) {
	values := map[string]interface{}{"cancellation_status": string(to)}
	for k, v := range updates {
		values[k] = v
	}

	result := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ? AND cancellation_status = ?", id, string(entity.CancellationStatusPending)).
		Updates(values)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Stats

func (r *SubscriptionRepositoryImpl) CountByStatus(ctx context.Context, status entity.SubscriptionStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) CountPendingCancellations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("cancellation_status = ?", string(entity.CancellationStatusPending)).
		Count(&count).Error
	return count, err
}

// ActiveRevenue sums plan prices over subscriptions that are active and not
// yet past their expiry at the given instant.
func (r *SubscriptionRepositoryImpl) ActiveRevenue(ctx context.Context, now time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Select("COALESCE(SUM(plans.price), 0)").
		Joins("JOIN plans ON plans.id = subscriptions.plan_id").
		Where("subscriptions.status = ?", string(entity.SubscriptionStatusActive)).
		Where("subscriptions.cancellation_status <> ?", string(entity.CancellationStatusApproved)).
		Where("subscriptions.expires_at IS NULL OR subscriptions.expires_at > ?", now).
		Scan(&total).Error
	return total, err
}
