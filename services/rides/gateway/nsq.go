package gateway

import (
	"context"

	"costera/internal/pkg/models"
	nsqpkg "costera/internal/pkg/nsq"
)

// TopicRideEvents is the NSQ topic carrying ride lifecycle events
const TopicRideEvents = "ride.events"

// Publisher is the subset of the NSQ producer the gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// RideGW publishes ride lifecycle events to NSQ
type RideGW struct {
	producer Publisher
}

// NewRideGW creates a new ride gateway
func NewRideGW(producer Publisher) *RideGW {
	return &RideGW{producer: producer}
}

var _ Publisher = (*nsqpkg.Producer)(nil)

// NoopPublisher discards events. Used when NSQ is disabled in config.
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, interface{}) error { return nil }

// PublishRideEvent publishes one lifecycle event
func (g *RideGW) PublishRideEvent(_ context.Context, event models.RideEvent) error {
	return g.producer.Publish(TopicRideEvents, event)
}
