// FILE: internal/mapper/subscription_mapper.go
package mapper

import (
	"devagency-be/internal/entity"
	"devagency-be/internal/model"

	"gorm.io/datatypes"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) PlanToEntity(p *model.Plan) *entity.Plan {
	if p == nil {
		return nil
	}
	return &entity.Plan{
		Id:           p.Id,
		Name:         p.Name,
		Price:        p.Price,
		OldPrice:     p.OldPrice,
		Savings:      p.Savings,
		Features:     []string(p.Features),
		Highlight:    p.Highlight,
		Color:        p.Color,
		DurationDays: p.DurationDays,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *SubscriptionMapper) PlanToModel(p *entity.Plan) *model.Plan {
	if p == nil {
		return nil
	}
	return &model.Plan{
		Id:           p.Id,
		Name:         p.Name,
		Price:        p.Price,
		OldPrice:     p.OldPrice,
		Savings:      p.Savings,
		Features:     datatypes.NewJSONSlice(p.Features),
		Highlight:    p.Highlight,
		Color:        p.Color,
		DurationDays: p.DurationDays,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:                          s.Id,
		UserId:                      s.UserId,
		PlanId:                      s.PlanId,
		Status:                      entity.SubscriptionStatus(s.Status),
		TransactionId:               s.TransactionId,
		PaymentMethod:               s.PaymentMethod,
		PaymentImage:                s.PaymentImage,
		ExpiresAt:                   s.ExpiresAt,
		RejectionReason:             s.RejectionReason,
		CancellationStatus:          entity.CancellationStatus(s.CancellationStatus),
		CancellationReason:          s.CancellationReason,
		CancellationRequestDate:     s.CancellationRequestDate,
		CancellationApprovedDate:    s.CancellationApprovedDate,
		CancellationRejectionReason: s.CancellationRejectionReason,
		UniqueId:                    s.UniqueId,
		CreatedAt:                   s.CreatedAt,
		UpdatedAt:                   s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:                          s.Id,
		UserId:                      s.UserId,
		PlanId:                      s.PlanId,
		Status:                      string(s.Status),
		TransactionId:               s.TransactionId,
		PaymentMethod:               s.PaymentMethod,
		PaymentImage:                s.PaymentImage,
		ExpiresAt:                   s.ExpiresAt,
		RejectionReason:             s.RejectionReason,
		CancellationStatus:          string(s.CancellationStatus),
		CancellationReason:          s.CancellationReason,
		CancellationRequestDate:     s.CancellationRequestDate,
		CancellationApprovedDate:    s.CancellationApprovedDate,
		CancellationRejectionReason: s.CancellationRejectionReason,
		UniqueId:                    s.UniqueId,
		CreatedAt:                   s.CreatedAt,
		UpdatedAt:                   s.UpdatedAt,
	}
}
