package contract

import (
	"context"
	"time"

	"devagency-be/internal/entity"
	"devagency-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindAllForReview joins owner and plan details for the admin table.
	FindAllForReview(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionReview, error)

	// TransitionStatus performs a conditional single-row update: the status
	// column moves from -> to only if it still equals from. Extra column
	// writes ride along in updates. Returns false when the row was already
	// settled by a concurrent writer.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.SubscriptionStatus, updates map[string]interface{}) (bool, error)

	// RequestCancellation flips cancellation_status none -> pending for the
	// caller's own active subscription. Returns false if the row is not in
	// that state anymore.
	RequestCancellation(ctx context.Context, id, userId uuid.UUID, reason string, now time.Time) (bool, error)

	// SettleCancellation resolves a pending cancellation to approved or
	// rejected. Returns false if no cancellation is pending.
	SettleCancellation(ctx context.Context, id uuid.UUID, to entity.CancellationStatus, updates map[string]interface{}) (bool, error)

	// Stats
	CountByStatus(ctx context.Context, status entity.SubscriptionStatus) (int64, error)
	CountPendingCancellations(ctx context.Context) (int64, error)
	ActiveRevenue(ctx context.Context, now time.Time) (float64, error)
}
