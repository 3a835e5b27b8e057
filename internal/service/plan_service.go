// FILE: internal/service/plan_service.go
package service

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"devagency-be/internal/dto"
	"devagency-be/internal/entity"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"
	adminPlan "devagency-be/pkg/admin/plan"
)

type IPlanService interface {
	GetAll(ctx context.Context) ([]*dto.PlanResponse, error)
}

// planService serves the public pricing page. Reads go through the shared
// in-process cache; the admin plan manager invalidates on every write.
type planService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory, cache *gocache.Cache) IPlanService {
	return &planService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func toPlanResponse(plan *entity.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		Id:           plan.Id,
		Name:         plan.Name,
		Price:        plan.Price,
		OldPrice:     plan.OldPrice,
		Savings:      plan.Savings,
		Features:     plan.Features,
		Highlight:    plan.Highlight,
		Color:        plan.Color,
		DurationDays: plan.DurationDays,
		CreatedAt:    plan.CreatedAt,
	}
}

func (s *planService) GetAll(ctx context.Context) ([]*dto.PlanResponse, error) {
	if cached, found := s.cache.Get(adminPlan.CacheKey); found {
		if plans, ok := cached.([]*dto.PlanResponse); ok {
			return plans, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.PlanRepository().FindAll(ctx, specification.OrderBy{Field: "price", Desc: false})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		result = append(result, toPlanResponse(plan))
	}

	s.cache.Set(adminPlan.CacheKey, result, gocache.DefaultExpiration)
	return result, nil
}
