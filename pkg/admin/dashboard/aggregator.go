// FILE: pkg/admin/dashboard/aggregator.go
package dashboard

import (
	"context"
	"time"

	"devagency-be/internal/dto"
	"devagency-be/internal/entity"
	"devagency-be/internal/pkg/logger"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"
)

// Aggregator assembles the admin dashboard counters. Reads go straight to
// the repositories, no caching, the dashboard tolerates slightly stale data
// between page loads anyway.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{logger: logger}
}

func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork, now time.Time) (*dto.AdminStatsResponse, error) {
	stats := &dto.AdminStatsResponse{}

	var err error
	if stats.TotalUsers, err = uow.UserRepository().Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingSubscriptions, err = uow.SubscriptionRepository().CountByStatus(ctx, entity.SubscriptionStatusPending); err != nil {
		return nil, err
	}
	if stats.ActiveSubscriptions, err = uow.SubscriptionRepository().CountByStatus(ctx, entity.SubscriptionStatusActive); err != nil {
		return nil, err
	}
	if stats.PendingCancellations, err = uow.SubscriptionRepository().CountPendingCancellations(ctx); err != nil {
		return nil, err
	}
	if stats.OpenComplaints, err = uow.ComplaintRepository().Count(ctx, specification.Filter("status", string(entity.ComplaintStatusOpen))); err != nil {
		return nil, err
	}
	if stats.ProjectsInProgress, err = uow.ProjectRepository().CountInProgress(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveRevenue, err = uow.SubscriptionRepository().ActiveRevenue(ctx, now); err != nil {
		return nil, err
	}

	return stats, nil
}
