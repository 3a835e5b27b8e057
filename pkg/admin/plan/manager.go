package plan

import (
	"context"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"devagency-be/internal/dto"
	"devagency-be/internal/entity"
	"devagency-be/internal/pkg/apperror"
	"devagency-be/internal/pkg/logger"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"
)

// CacheKey is where the public pricing page caches the plan list.
const CacheKey = "public:plans"

// Manager handles admin plan CRUD and keeps the public cache honest.
type Manager struct {
	logger logger.ILogger
	cache  *gocache.Cache
}

func NewManager(logger logger.ILogger, cache *gocache.Cache) *Manager {
	return &Manager{
		logger: logger,
		cache:  cache,
	}
}

func (m *Manager) invalidate() {
	m.cache.Delete(CacheKey)
}

func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.AdminPlanCreateRequest) (*entity.Plan, error) {
	existing, err := uow.PlanRepository().FindOne(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Validation("a plan named %q already exists", req.Name)
	}

	plan := &entity.Plan{
		Name:         req.Name,
		Price:        req.Price,
		OldPrice:     req.OldPrice,
		Savings:      req.Savings,
		Features:     req.Features,
		Highlight:    req.Highlight,
		Color:        req.Color,
		DurationDays: req.DurationDays,
	}
	if err := uow.PlanRepository().Create(ctx, plan); err != nil {
		return nil, err
	}

	m.invalidate()
	m.logger.Info("ADMIN", "Plan created", map[string]interface{}{"plan": plan.Name})
	return plan, nil
}

func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, planId uuid.UUID, req dto.AdminPlanUpdateRequest) (*entity.Plan, error) {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan not found")
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.OldPrice != nil {
		plan.OldPrice = *req.OldPrice
	}
	if req.Savings != nil {
		plan.Savings = *req.Savings
	}
	if req.Features != nil {
		plan.Features = *req.Features
	}
	if req.Highlight != nil {
		plan.Highlight = *req.Highlight
	}
	if req.Color != nil {
		plan.Color = *req.Color
	}
	if req.DurationDays != nil {
		plan.DurationDays = *req.DurationDays
	}

	if err := uow.PlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}

	m.invalidate()
	m.logger.Info("ADMIN", "Plan updated", map[string]interface{}{"planId": planId.String()})
	return plan, nil
}

// Delete removes a plan. Existing subscriptions keep their plan_id; history
// rendering falls back to the stored id when the plan is gone.
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, planId uuid.UUID) error {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return err
	}
	if plan == nil {
		return apperror.NotFound("plan not found")
	}

	if err := uow.PlanRepository().Delete(ctx, planId); err != nil {
		return err
	}

	m.invalidate()
	m.logger.Info("ADMIN", "Plan deleted", map[string]interface{}{"planId": planId.String()})
	return nil
}
