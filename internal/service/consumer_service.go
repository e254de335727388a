package service

import (
	"context"

	"chitty-gateway/internal/pkg/logger"
	"chitty-gateway/pkg/events"
	pktNats "chitty-gateway/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
)

const consumerDurableName = "chitty-job-worker"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains background jobs. Anchoring, minting and PDF
// generation happen elsewhere; this worker only records receipt.
type consumerService struct {
	subscriber message.Subscriber
	natsSub    *pktNats.Subscriber
	topicName  string
	logger     logger.ILogger
	handled    func(events.Event)
}

// NewConsumerService reads from the watermill topic, and also from the NATS
// JOBS stream when natsSub is non-nil.
func NewConsumerService(subscriber message.Subscriber, natsSub *pktNats.Subscriber, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		natsSub:    natsSub,
		topicName:  topicName,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	if cs.natsSub != nil {
		if err := cs.natsSub.Subscribe(ctx, pktNats.SubjectPrefix+">", consumerDurableName, cs.handle); err != nil {
			return err
		}
	}

	if cs.subscriber == nil {
		return nil
	}

	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	event, err := events.Decode(msg.Payload)
	if err != nil {
		cs.logger.Error("QUEUE", "Failed to decode job", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite redelivery
		return
	}

	if err := cs.handle(ctx, event); err != nil {
		msg.Nack()
		return
	}
	msg.Ack()
}

func (cs *consumerService) handle(ctx context.Context, event events.Event) error {
	cs.logger.Info("QUEUE", "Job received", map[string]interface{}{
		"type":        event.EventType(),
		"payload":     event.Payload(),
		"occurred_at": event.Timestamp(),
	})
	if cs.handled != nil {
		cs.handled(event)
	}
	return nil
}
