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

type CouponRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CouponMapper
}

func NewCouponRepository(db *gorm.DB) contract.CouponRepository {
	return &CouponRepositoryImpl{
		db:     db,
		mapper: mapper.NewCouponMapper(),
	}
}

func (r *CouponRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CouponRepositoryImpl) Create(ctx context.Context, coupon *entity.Coupon) error {
	m := r.mapper.ToModel(coupon)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*coupon = *r.mapper.ToEntity(m)
	return nil
}

func (r *CouponRepositoryImpl) Update(ctx context.Context, coupon *entity.Coupon) error {
	m := r.mapper.ToModel(coupon)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*coupon = *r.mapper.ToEntity(m)
	return nil
}

func (r *CouponRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Coupon{}).Error
}

func (r *CouponRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Coupon, error) {
	var m model.Coupon
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *CouponRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Coupon, error) {
	var models []*model.Coupon
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	coupons := make([]*entity.Coupon, 0, len(models))
	for _, m := range models {
		coupons = append(coupons, r.mapper.ToEntity(m))
	}
	return coupons, nil
}

// Consume is a conditional increment so a coupon at its usage limit cannot
// be redeemed twice by racing checkouts.
func (r *CouponRepositoryImpl) Consume(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Coupon{}).
		Where("id = ? AND is_active = ?", id, true).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Where("usage_limit = 0 OR used_count < usage_limit").
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
