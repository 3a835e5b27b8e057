package unitofwork

import (
	"context"

	"devagency-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PlanRepository() contract.PlanRepository
	SubscriptionRepository() contract.SubscriptionRepository
	ProjectRepository() contract.ProjectRepository
	ComplaintRepository() contract.ComplaintRepository
	CouponRepository() contract.CouponRepository
	ContentRepository() contract.ContentRepository
}
