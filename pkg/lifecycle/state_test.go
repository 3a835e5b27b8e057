package lifecycle

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"devagency-be/internal/entity"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func sub(status entity.SubscriptionStatus, cancellation entity.CancellationStatus, expiresAt *time.Time) *entity.Subscription {
	return &entity.Subscription{
		Id:                 uuid.New(),
		Status:             status,
		CancellationStatus: cancellation,
		ExpiresAt:          expiresAt,
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := ts("2026-06-01T12:00:00Z")
	past := ts("2026-05-01T00:00:00Z")
	future := ts("2026-07-01T00:00:00Z")

	tests := []struct {
		name string
		sub  *entity.Subscription
		want entity.SubscriptionStatus
	}{
		{
			name: "pending stays pending",
			sub:  sub(entity.SubscriptionStatusPending, entity.CancellationStatusNone, nil),
			want: entity.SubscriptionStatusPending,
		},
		{
			name: "active before expiry stays active",
			sub:  sub(entity.SubscriptionStatusActive, entity.CancellationStatusNone, &future),
			want: entity.SubscriptionStatusActive,
		},
		{
			name: "active past expiry reads expired",
			sub:  sub(entity.SubscriptionStatusActive, entity.CancellationStatusNone, &past),
			want: entity.SubscriptionStatusExpired,
		},
		{
			name: "active exactly at expiry reads expired",
			sub:  sub(entity.SubscriptionStatusActive, entity.CancellationStatusNone, &now),
			want: entity.SubscriptionStatusExpired,
		},
		{
			name: "approved cancellation reads cancelled",
			sub:  sub(entity.SubscriptionStatusActive, entity.CancellationStatusApproved, &future),
			want: StatusCancelled,
		},
		{
			name: "approved cancellation wins over expiry",
			sub:  sub(entity.SubscriptionStatusActive, entity.CancellationStatusApproved, &past),
			want: StatusCancelled,
		},
		{
			name: "pending cancellation still reads active",
			sub:  sub(entity.SubscriptionStatusActive, entity.CancellationStatusPending, &future),
			want: entity.SubscriptionStatusActive,
		},
		{
			name: "rejected cancellation still reads active",
			sub:  sub(entity.SubscriptionStatusActive, entity.CancellationStatusRejected, &future),
			want: entity.SubscriptionStatusActive,
		},
		{
			name: "rejected stays rejected",
			sub:  sub(entity.SubscriptionStatusRejected, entity.CancellationStatusNone, nil),
			want: entity.SubscriptionStatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveStatus(tt.sub, now))
		})
	}
}

func TestIsExpired(t *testing.T) {
	now := ts("2026-06-01T12:00:00Z")
	past := ts("2026-05-01T00:00:00Z")

	assert.False(t, IsExpired(sub(entity.SubscriptionStatusPending, entity.CancellationStatusNone, &past), now),
		"pending rows never expire")
	assert.False(t, IsExpired(sub(entity.SubscriptionStatusActive, entity.CancellationStatusNone, nil), now),
		"active without expiry never expires")
	assert.True(t, IsExpired(sub(entity.SubscriptionStatusActive, entity.CancellationStatusNone, &past), now))
}

func TestExpiryFor(t *testing.T) {
	approvedAt := ts("2026-01-15T09:30:00Z")
	assert.Equal(t, ts("2026-02-14T09:30:00Z"), ExpiryFor(approvedAt, 30))
	assert.Equal(t, ts("2027-01-15T09:30:00Z"), ExpiryFor(approvedAt, 365))
}

func TestPickCurrent(t *testing.T) {
	now := ts("2026-06-01T12:00:00Z")
	past := ts("2026-05-01T00:00:00Z")
	future := ts("2026-07-01T00:00:00Z")

	t.Run("empty history returns nil", func(t *testing.T) {
		assert.Nil(t, PickCurrent(nil, now))
	})

	t.Run("live subscription wins over newer rejected one", func(t *testing.T) {
		rejected := sub(entity.SubscriptionStatusRejected, entity.CancellationStatusNone, nil)
		active := sub(entity.SubscriptionStatusActive, entity.CancellationStatusNone, &future)
		got := PickCurrent([]*entity.Subscription{rejected, active}, now)
		assert.Equal(t, active, got)
	})

	t.Run("no live subscription falls back to most recent", func(t *testing.T) {
		newest := sub(entity.SubscriptionStatusRejected, entity.CancellationStatusNone, nil)
		older := sub(entity.SubscriptionStatusActive, entity.CancellationStatusNone, &past) // effectively expired
		got := PickCurrent([]*entity.Subscription{newest, older}, now)
		assert.Equal(t, newest, got)
	})

	t.Run("pending counts as live", func(t *testing.T) {
		pending := sub(entity.SubscriptionStatusPending, entity.CancellationStatusNone, nil)
		got := PickCurrent([]*entity.Subscription{pending}, now)
		assert.Equal(t, pending, got)
	})
}
