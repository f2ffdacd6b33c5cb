package rides

import (
	"context"

	"costera/internal/pkg/models"
)

// RideGW defines the interface for publishing ride lifecycle events
type RideGW interface {
	PublishRideEvent(ctx context.Context, event models.RideEvent) error
}
