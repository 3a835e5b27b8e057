package events

import (
	"context"
	"time"

	"devagency-be/internal/pkg/logger"
	pkgEvents "devagency-be/pkg/events"
	pkgNats "devagency-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts event publishing for lifecycle and admin operations.
type Publisher interface {
	PublishSubscriptionCreated(ctx context.Context, subscriptionId, userId uuid.UUID, planName, uniqueId string, amount float64)
	PublishSubscriptionApproved(ctx context.Context, subscriptionId, userId uuid.UUID, planName string, expiresAt time.Time)
	PublishSubscriptionRejected(ctx context.Context, subscriptionId, userId uuid.UUID, planName, reason string)
	PublishCancellationRequested(ctx context.Context, subscriptionId, userId uuid.UUID, reason string)
	PublishCancellationProcessed(ctx context.Context, subscriptionId, userId uuid.UUID, approved bool, reason string)
	PublishProjectStatusChanged(ctx context.Context, projectId, userId uuid.UUID, status, projectLink string)
	PublishComplaintReplied(ctx context.Context, complaintId, userId uuid.UUID, senderRole string)
	PublishUserRoleChanged(ctx context.Context, userId uuid.UUID, email, newRole string)
	PublishContactMessageReceived(ctx context.Context, messageId uuid.UUID, name, email string)
}

// NatsPublisher implements Publisher on the JetStream bus.
type NatsPublisher struct {
	publisher *pkgNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pkgNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}
	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *NatsPublisher) PublishSubscriptionCreated(ctx context.Context, subscriptionId, userId uuid.UUID, planName, uniqueId string, amount float64) {
	p.emit(ctx, "SUBSCRIPTION_CREATED", map[string]interface{}{
		"subscription_id": subscriptionId,
		"user_id":         userId,
		"plan_name":       planName,
		"unique_id":       uniqueId,
		"amount":          amount,
	})
}

func (p *NatsPublisher) PublishSubscriptionApproved(ctx context.Context, subscriptionId, userId uuid.UUID, planName string, expiresAt time.Time) {
	p.emit(ctx, "SUBSCRIPTION_APPROVED", map[string]interface{}{
		"subscription_id": subscriptionId,
		"user_id":         userId,
		"plan_name":       planName,
		"expires_at":      expiresAt,
	})
}

func (p *NatsPublisher) PublishSubscriptionRejected(ctx context.Context, subscriptionId, userId uuid.UUID, planName, reason string) {
	p.emit(ctx, "SUBSCRIPTION_REJECTED", map[string]interface{}{
		"subscription_id": subscriptionId,
		"user_id":         userId,
		"plan_name":       planName,
		"reason":          reason,
	})
}

func (p *NatsPublisher) PublishCancellationRequested(ctx context.Context, subscriptionId, userId uuid.UUID, reason string) {
	p.emit(ctx, "CANCELLATION_REQUESTED", map[string]interface{}{
		"subscription_id": subscriptionId,
		"user_id":         userId,
		"reason":          reason,
	})
}

func (p *NatsPublisher) PublishCancellationProcessed(ctx context.Context, subscriptionId, userId uuid.UUID, approved bool, reason string) {
	p.emit(ctx, "CANCELLATION_PROCESSED", map[string]interface{}{
		"subscription_id": subscriptionId,
		"user_id":         userId,
		"approved":        approved,
		"reason":          reason,
	})
}

func (p *NatsPublisher) PublishProjectStatusChanged(ctx context.Context, projectId, userId uuid.UUID, status, projectLink string) {
	p.emit(ctx, "PROJECT_STATUS_CHANGED", map[string]interface{}{
		"project_id":   projectId,
		"user_id":      userId,
		"status":       status,
		"project_link": projectLink,
	})
}

func (p *NatsPublisher) PublishComplaintReplied(ctx context.Context, complaintId, userId uuid.UUID, senderRole string) {
	p.emit(ctx, "COMPLAINT_REPLIED", map[string]interface{}{
		"complaint_id": complaintId,
		"user_id":      userId,
		"sender_role":  senderRole,
	})
}

func (p *NatsPublisher) PublishUserRoleChanged(ctx context.Context, userId uuid.UUID, email, newRole string) {
	p.emit(ctx, "USER_ROLE_CHANGED", map[string]interface{}{
		"user_id":  userId,
		"email":    email,
		"new_role": newRole,
	})
}

func (p *NatsPublisher) PublishContactMessageReceived(ctx context.Context, messageId uuid.UUID, name, email string) {
	p.emit(ctx, "CONTACT_MESSAGE_RECEIVED", map[string]interface{}{
		"message_id": messageId,
		"name":       name,
		"email":      email,
	})
}
