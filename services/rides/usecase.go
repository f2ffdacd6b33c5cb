package rides

import (
	"context"

	"costera/internal/pkg/models"
)

// RideUC defines the interface for ride business logic
type RideUC interface {
	CreateRide(ctx context.Context, creatorID int64, req models.CreateRideRequest) (*models.RideDetail, error)
	ListRides(ctx context.Context) ([]models.RideDetail, error)
	GetRide(ctx context.Context, rideID int64) (*models.RideDetail, error)
	UpdateRide(ctx context.Context, actorID, rideID int64, req models.UpdateRideRequest) (*models.RideDetail, error)
	DeleteRide(ctx context.Context, actorID, rideID int64) error

	JoinRide(ctx context.Context, actorID, rideID int64, req models.JoinRideRequest) (*models.RidePassenger, error)
	RemovePassenger(ctx context.Context, actorID, rideID, passengerID int64) error
	ListPassengerDetails(ctx context.Context, rideID int64) ([]models.PassengerDetail, error)
	ListPassengersPublic(ctx context.Context, rideID int64) ([]models.PassengerPublic, error)

	ReorderPassenger(ctx context.Context, actorID, rideID, passengerID int64, newPosition int) ([]models.RidePassenger, error)
	LockSequence(ctx context.Context, actorID, rideID int64) ([]models.RidePassenger, error)

	AssignVendor(ctx context.Context, actorID int64, isVendor bool, rideID int64) (*models.RideDetail, error)
	CompleteRide(ctx context.Context, actorID, rideID int64) (*models.RideDetail, error)
}
