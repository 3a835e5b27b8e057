// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"devagency-be/internal/dto"
	"devagency-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the receipt-email topic and sends the order
// confirmation out of band, so the checkout request never waits on SMTP.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	adminEmail   string
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, emailService mailer.IEmailService, adminEmail string) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		adminEmail:   adminEmail,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.ReceiptEmailMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal receipt email message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Sending receipt email for order %s to %s", payload.UniqueId, payload.Email)

	if err := cs.emailService.SendSubscriptionReceipt(payload.Email, payload.PlanName, payload.UniqueId, payload.Amount); err != nil {
		log.Printf("[ERROR] Failed to send receipt email for order %s: %v", payload.UniqueId, err)
		msg.Nack()
		return
	}

	// Admin alert is best effort, the user receipt is the one that matters.
	if cs.adminEmail != "" {
		subject := fmt.Sprintf("New order awaiting review: %s", payload.UniqueId)
		body := fmt.Sprintf("Order %s (%s plan, %.2f) was submitted by %s and is waiting for review.",
			payload.UniqueId, payload.PlanName, payload.Amount, payload.Email)
		if err := cs.emailService.SendAdminAlert(cs.adminEmail, subject, body); err != nil {
			log.Printf("[WARN] Failed to send admin alert for order %s: %v", payload.UniqueId, err)
		}
	}

	msg.Ack()
}
