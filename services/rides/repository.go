package rides

import (
	"context"

	"costera/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations.
// A ride and its passenger records form one consistency unit: implementations
// must keep the cached passenger counter in step with the authoritative sum.
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error)
	GetRide(ctx context.Context, rideID int64) (*models.Ride, error)
	GetRideDetail(ctx context.Context, rideID int64) (*models.RideDetail, error)
	ListRideDetails(ctx context.Context) ([]models.RideDetail, error)
	UpdateRide(ctx context.Context, ride *models.Ride) error
	// DeleteRide removes the ride and cascades removal of its passenger rows.
	DeleteRide(ctx context.Context, rideID int64) error

	AddPassenger(ctx context.Context, passenger *models.RidePassenger) (*models.RidePassenger, error)
	GetPassenger(ctx context.Context, passengerID int64) (*models.RidePassenger, error)
	// ListPassengers returns the ride's passenger records in creation order.
	ListPassengers(ctx context.Context, rideID int64) ([]models.RidePassenger, error)
	ListPassengerDetails(ctx context.Context, rideID int64) ([]models.PassengerDetail, error)
	RemovePassenger(ctx context.Context, passengerID int64) error
	UpdateSequences(ctx context.Context, rideID int64, assignments []models.SequenceAssignment) error

	// SyncPassengerCount recomputes the cached current_passengers counter
	// from the passenger rows and returns the authoritative value.
	SyncPassengerCount(ctx context.Context, rideID int64) (int, error)
}
