package service

import (
	"context"
	"encoding/json"

	"chitty-gateway/pkg/events"
	pktNats "chitty-gateway/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// IPublisherService enqueues fire-and-forget background jobs.
type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

// NewPublisherService publishes onto an in-process watermill topic.
func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (ps *publisherService) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(events.Envelope(event))
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("type", event.EventType())
	msg.SetContext(ctx)

	return ps.publisher.Publish(ps.topicName, msg)
}

type natsPublisherService struct {
	publisher *pktNats.Publisher
}

// NewNatsPublisherService publishes onto the JetStream JOBS stream.
func NewNatsPublisherService(publisher *pktNats.Publisher) IPublisherService {
	return &natsPublisherService{publisher: publisher}
}

func (ps *natsPublisherService) Publish(ctx context.Context, event events.Event) error {
	return ps.publisher.Publish(ctx, event)
}
