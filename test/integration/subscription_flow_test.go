package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"devagency-be/internal/entity"
	"devagency-be/internal/pkg/logger"
	"devagency-be/internal/repository/unitofwork"
	"devagency-be/pkg/database"
	"devagency-be/pkg/lifecycle"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		t.Log("No .env file found, using system env")
	}
	if os.Getenv("DB_HOST") == "" {
		t.Skip("Skipping integration test: DB_HOST not set")
	}

	db, err := database.NewGormDB(database.GormConfig{
		Host:     os.Getenv("DB_HOST"),
		Port:     getenvOr("DB_PORT", "5432"),
		User:     getenvOr("DB_USER", "postgres"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   getenvOr("DB_NAME", "devagency"),
		SSLMode:  getenvOr("DB_SSLMODE", "disable"),
	})
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return unitofwork.NewRepositoryFactory(db)
}

func getenvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func seedUserAndPlan(t *testing.T, uow unitofwork.UnitOfWork) (*entity.User, *entity.Plan) {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{
		Id:       uuid.New(),
		Email:    "flow-" + uuid.New().String() + "@example.com",
		FullName: "Flow Test User",
		Role:     entity.UserRoleUser,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	plan := &entity.Plan{
		Id:           uuid.New(),
		Name:         "Flow Plan " + uuid.New().String(),
		Price:        99.0,
		DurationDays: 30,
	}
	require.NoError(t, uow.PlanRepository().Create(ctx, plan))

	return user, plan
}

func TestSubscriptionLifecycle(t *testing.T) {
	uowFactory := setupDB(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)
	engine := lifecycle.NewEngine(logger.NewZapLogger("test.log.csv", false))

	user, plan := seedUserAndPlan(t, uow)

	out, err := engine.Subscribe(ctx, uow, lifecycle.SubscribeInput{
		UserId:        user.Id,
		PlanName:      plan.Name,
		TransactionId: "tx-" + uuid.New().String(),
		PaymentMethod: "bank_transfer",
		PaymentImage:  "/uploads/test-receipt.png",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Subscription)
	assert.Equal(t, entity.SubscriptionStatusPending, out.Subscription.Status)
	assert.NotEmpty(t, out.Subscription.UniqueId)
	assert.Equal(t, plan.Price, out.AmountCharged)

	t.Run("Pending blocks a second order", func(t *testing.T) {
		_, err := engine.Subscribe(ctx, uow, lifecycle.SubscribeInput{
			UserId:        user.Id,
			PlanName:      plan.Name,
			TransactionId: "tx-" + uuid.New().String(),
			PaymentImage:  "/uploads/test-receipt-2.png",
		})
		assert.Error(t, err)
	})

	t.Run("Approve activates with expiry", func(t *testing.T) {
		sub, err := engine.Approve(ctx, uow, out.Subscription.Id)
		require.NoError(t, err)
		assert.Equal(t, entity.SubscriptionStatusActive, sub.Status)
		require.NotNil(t, sub.ExpiresAt)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, plan.DurationDays), *sub.ExpiresAt, time.Minute)
	})

	t.Run("Cancellation round trip", func(t *testing.T) {
		sub, err := engine.RequestCancellation(ctx, uow, out.Subscription.Id, user.Id, "no longer needed")
		require.NoError(t, err)
		assert.Equal(t, entity.CancellationStatusPending, sub.CancellationStatus)

		sub, err = engine.SettleCancellation(ctx, uow, out.Subscription.Id, true, "approved by test")
		require.NoError(t, err)
		assert.Equal(t, entity.CancellationStatusApproved, sub.CancellationStatus)
		require.NotNil(t, sub.CancellationApprovedDate)
	})

	t.Run("Resubscribe after cancellation", func(t *testing.T) {
		out2, err := engine.Subscribe(ctx, uow, lifecycle.SubscribeInput{
			UserId:        user.Id,
			PlanName:      plan.Name,
			TransactionId: "tx-" + uuid.New().String(),
			PaymentImage:  "/uploads/test-receipt-3.png",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.SubscriptionStatusPending, out2.Subscription.Status)
		assert.NotEqual(t, out.Subscription.UniqueId, out2.Subscription.UniqueId)
	})
}

func TestSubscriptionRejectFlow(t *testing.T) {
	uowFactory := setupDB(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)
	engine := lifecycle.NewEngine(logger.NewZapLogger("test.log.csv", false))

	user, plan := seedUserAndPlan(t, uow)

	out, err := engine.Subscribe(ctx, uow, lifecycle.SubscribeInput{
		UserId:        user.Id,
		PlanName:      plan.Name,
		TransactionId: "tx-" + uuid.New().String(),
		PaymentImage:  "/uploads/test-receipt.png",
	})
	require.NoError(t, err)

	sub, err := engine.Reject(ctx, uow, out.Subscription.Id, "unreadable receipt")
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusRejected, sub.Status)
	assert.Equal(t, "unreadable receipt", sub.RejectionReason)

	// A rejected order does not block a fresh one.
	_, err = engine.Subscribe(ctx, uow, lifecycle.SubscribeInput{
		UserId:        user.Id,
		PlanName:      plan.Name,
		TransactionId: "tx-" + uuid.New().String(),
		PaymentImage:  "/uploads/test-receipt-2.png",
	})
	assert.NoError(t, err)
}
