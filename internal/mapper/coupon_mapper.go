// FILE: internal/mapper/coupon_mapper.go
package mapper

import (
	"devagency-be/internal/entity"
	"devagency-be/internal/model"
)

type CouponMapper struct{}

func NewCouponMapper() *CouponMapper {
	return &CouponMapper{}
}

func (m *CouponMapper) ToEntity(c *model.Coupon) *entity.Coupon {
	if c == nil {
		return nil
	}
	return &entity.Coupon{
		Id:         c.Id,
		Code:       c.Code,
		Amount:     c.Amount,
		ExpiresAt:  c.ExpiresAt,
		UsageLimit: c.UsageLimit,
		UsedCount:  c.UsedCount,
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *CouponMapper) ToModel(c *entity.Coupon) *model.Coupon {
	if c == nil {
		return nil
	}
	return &model.Coupon{
		Id:         c.Id,
		Code:       c.Code,
		Amount:     c.Amount,
		ExpiresAt:  c.ExpiresAt,
		UsageLimit: c.UsageLimit,
		UsedCount:  c.UsedCount,
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
