package service

import (
	"context"
	"testing"
	"time"

	"chitty-gateway/internal/pkg/logger"
	"chitty-gateway/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherAndConsumer_InProcess(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	const topic = "chitty.jobs.test"
	received := make(chan events.Event, 1)

	consumer := NewConsumerService(pubSub, nil, topic, logger.NewNopLogger()).(*consumerService)
	consumer.handled = func(e events.Event) { received <- e }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(topic, pubSub)
	require.NoError(t, publisher.Publish(ctx, events.BaseEvent{
		Type:       JobAnchor,
		Data:       map[string]interface{}{"record_id": "CHITTY-CASE-1"},
		OccurredAt: time.Now(),
	}))

	select {
	case evt := <-received:
		assert.Equal(t, JobAnchor, evt.EventType())
		assert.Equal(t, "CHITTY-CASE-1", evt.Payload()["record_id"])
	case <-time.After(2 * time.Second):
		t.Fatal("job was not consumed")
	}
}
