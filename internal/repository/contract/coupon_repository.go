package contract

import (
	"context"
	"time"

	"devagency-be/internal/entity"
	"devagency-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Coupon, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Coupon, error)

	// Consume increments used_count only while the coupon is still active,
	// unexpired and under its usage limit. Returns false when the coupon
	// cannot be redeemed.
	Consume(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}
