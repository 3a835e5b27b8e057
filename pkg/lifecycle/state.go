package lifecycle

import (
	"time"

	"devagency-be/internal/entity"
)

// StatusCancelled is a derived status. It is never stored; an approved
// cancellation on an active row reads back as cancelled.
const StatusCancelled entity.SubscriptionStatus = "cancelled"

// IsExpired reports whether an active subscription is past its expiry.
// Only active rows expire; pending and rejected rows have no expiry date.
func IsExpired(sub *entity.Subscription, now time.Time) bool {
	if sub.Status != entity.SubscriptionStatusActive {
		return false
	}
	return sub.ExpiresAt != nil && !now.Before(*sub.ExpiresAt)
}

// EffectiveStatus folds the cancellation sub-state and time-based expiry
// into the stored status. Approved cancellation wins over expiry.
func EffectiveStatus(sub *entity.Subscription, now time.Time) entity.SubscriptionStatus {
	if sub.Status == entity.SubscriptionStatusActive &&
		sub.CancellationStatus == entity.CancellationStatusApproved {
		return StatusCancelled
	}
	if IsExpired(sub, now) {
		return entity.SubscriptionStatusExpired
	}
	return sub.Status
}

// ExpiryFor computes the expiry instant for a subscription approved at the
// given time.
func ExpiryFor(approvedAt time.Time, durationDays int) time.Time {
	return approvedAt.AddDate(0, 0, durationDays)
}

// PickCurrent selects the subscription the dashboard should show. A live
// one (effectively active or pending) wins; otherwise the most recent row
// so the user sees why their last attempt ended. Subscriptions must be
// ordered newest first. Returns nil when the user never subscribed.
func PickCurrent(subs []*entity.Subscription, now time.Time) *entity.Subscription {
	for _, sub := range subs {
		switch EffectiveStatus(sub, now) {
		case entity.SubscriptionStatusActive, entity.SubscriptionStatusPending:
			return sub
		}
	}
	if len(subs) > 0 {
		return subs[0]
	}
	return nil
}
