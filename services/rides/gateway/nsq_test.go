package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"costera/internal/pkg/models"
)

type capturingPublisher struct {
	topic   string
	message interface{}
	err     error
}

func (p *capturingPublisher) Publish(topic string, message interface{}) error {
	p.topic = topic
	p.message = message
	return p.err
}

func TestPublishRideEvent(t *testing.T) {
	pub := &capturingPublisher{}
	gw := NewRideGW(pub)

	event := models.RideEvent{
		Type:       models.EventPassengerJoined,
		RideID:     7,
		ActorID:    20,
		Direction:  models.DirectionReturn,
		Status:     models.RideStatusOpen,
		Seats:      2,
		OccurredAt: time.Now(),
	}
	require.NoError(t, gw.PublishRideEvent(context.Background(), event))

	assert.Equal(t, TopicRideEvents, pub.topic)
	assert.Equal(t, event, pub.message)
}

func TestPublishRideEventError(t *testing.T) {
	pub := &capturingPublisher{err: errors.New("nsqd unreachable")}
	gw := NewRideGW(pub)

	err := gw.PublishRideEvent(context.Background(), models.RideEvent{Type: models.EventRideCreated})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	gw := NewRideGW(NoopPublisher{})
	assert.NoError(t, gw.PublishRideEvent(context.Background(), models.RideEvent{Type: models.EventRideDeleted}))
}
