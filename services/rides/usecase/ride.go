package usecase

import (
	"context"
	"strings"
	"time"

	"costera/internal/pkg/apperrors"
	"costera/internal/pkg/logger"
	"costera/internal/pkg/models"
)

// CreateRide validates the request and creates an open ride with no passengers
func (uc *rideUC) CreateRide(ctx context.Context, creatorID int64, req models.CreateRideRequest) (*models.RideDetail, error) {
	if !req.Direction.Valid() {
		return nil, apperrors.Validation("direction", "direction must be outbound or return")
	}
	if req.DepartureAt.IsZero() {
		return nil, apperrors.Validation("departure_at", "departure date is required")
	}
	if req.MaxPassengers < 1 {
		return nil, apperrors.Validation("max_passengers", "max passengers must be at least 1")
	}
	if strings.TrimSpace(req.PickupLocation) == "" {
		return nil, apperrors.Validation("pickup_location", "pickup location is required")
	}
	if req.BaseCost < 0 {
		return nil, apperrors.Validation("base_cost", "base cost cannot be negative")
	}
	if req.AdditionalStops < 0 {
		return nil, apperrors.Validation("additional_stops", "additional stops cannot be negative")
	}
	for _, d := range req.DropoffLocations {
		if strings.TrimSpace(d.Location) == "" {
			return nil, apperrors.Validation("dropoff_locations", "drop-off location label is required")
		}
	}

	ride := &models.Ride{
		CreatorID:         creatorID,
		Direction:         req.Direction,
		DepartureAt:       req.DepartureAt,
		MaxPassengers:     req.MaxPassengers,
		CurrentPassengers: 0,
		PickupLocation:    strings.TrimSpace(req.PickupLocation),
		DropoffLocations:  req.DropoffLocations,
		Status:            models.RideStatusOpen,
		BaseCost:          req.BaseCost,
		AdditionalStops:   req.AdditionalStops,
	}

	created, err := uc.repo.CreateRide(ctx, ride)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, models.RideEvent{
		Type:      models.EventRideCreated,
		RideID:    created.ID,
		ActorID:   creatorID,
		Direction: created.Direction,
		Status:    created.Status,
	})

	return uc.repo.GetRideDetail(ctx, created.ID)
}

// ListRides returns all rides with creator details attached
func (uc *rideUC) ListRides(ctx context.Context) ([]models.RideDetail, error) {
	return uc.repo.ListRideDetails(ctx)
}

// GetRide returns one ride with creator details attached
func (uc *rideUC) GetRide(ctx context.Context, rideID int64) (*models.RideDetail, error) {
	return uc.repo.GetRideDetail(ctx, rideID)
}

// UpdateRide applies a creator's edit to date, capacity, locations, cost and
// additional-stop count. Capacity can never shrink below the seats already
// taken.
func (uc *rideUC) UpdateRide(ctx context.Context, actorID, rideID int64, req models.UpdateRideRequest) (*models.RideDetail, error) {
	unlock := uc.locks.lock(rideID)
	defer unlock()

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !CanEditRide(actorID, ride) {
		return nil, apperrors.Unauthorized("only the ride creator can edit this ride")
	}

	if req.MaxPassengers != nil {
		if *req.MaxPassengers < 1 {
			return nil, apperrors.Validation("max_passengers", "max passengers must be at least 1")
		}
		passengers, err := uc.repo.ListPassengers(ctx, rideID)
		if err != nil {
			return nil, err
		}
		if *req.MaxPassengers < OccupiedSeats(passengers) {
			return nil, apperrors.Validation("max_passengers", "cannot shrink capacity below current passengers")
		}
		ride.MaxPassengers = *req.MaxPassengers
	}
	if req.DepartureAt != nil {
		if req.DepartureAt.IsZero() {
			return nil, apperrors.Validation("departure_at", "departure date is required")
		}
		ride.DepartureAt = *req.DepartureAt
	}
	if req.PickupLocation != nil {
		if strings.TrimSpace(*req.PickupLocation) == "" {
			return nil, apperrors.Validation("pickup_location", "pickup location is required")
		}
		ride.PickupLocation = strings.TrimSpace(*req.PickupLocation)
	}
	if req.DropoffLocations != nil {
		for _, d := range *req.DropoffLocations {
			if strings.TrimSpace(d.Location) == "" {
				return nil, apperrors.Validation("dropoff_locations", "drop-off location label is required")
			}
		}
		ride.DropoffLocations = *req.DropoffLocations
	}
	if req.BaseCost != nil {
		if *req.BaseCost < 0 {
			return nil, apperrors.Validation("base_cost", "base cost cannot be negative")
		}
		ride.BaseCost = *req.BaseCost
	}
	if req.AdditionalStops != nil {
		if *req.AdditionalStops < 0 {
			return nil, apperrors.Validation("additional_stops", "additional stops cannot be negative")
		}
		ride.AdditionalStops = *req.AdditionalStops
	}

	if err := uc.repo.UpdateRide(ctx, ride); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, models.RideEvent{
		Type:      models.EventRideUpdated,
		RideID:    ride.ID,
		ActorID:   actorID,
		Direction: ride.Direction,
		Status:    ride.Status,
	})

	return uc.repo.GetRideDetail(ctx, rideID)
}

// DeleteRide removes a ride. Only the creator may delete, only while the ride
// is open or assigned, and only while no other user holds a passenger record;
// the creator's own records cascade.
func (uc *rideUC) DeleteRide(ctx context.Context, actorID, rideID int64) error {
	unlock := uc.locks.lock(rideID)
	defer unlock()

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return err
	}
	passengers, err := uc.repo.ListPassengers(ctx, rideID)
	if err != nil {
		return err
	}
	if actorID != ride.CreatorID {
		return apperrors.Unauthorized("only the ride creator can delete this ride")
	}
	if ride.Status == models.RideStatusCompleted {
		return apperrors.State("completed rides cannot be deleted")
	}
	if !CanDeleteRide(actorID, ride, passengers) {
		return apperrors.State("ride still has passengers from other users")
	}

	if err := uc.repo.DeleteRide(ctx, rideID); err != nil {
		return err
	}
	uc.locks.forget(rideID)

	uc.publishEvent(ctx, models.RideEvent{
		Type:      models.EventRideDeleted,
		RideID:    rideID,
		ActorID:   actorID,
		Direction: ride.Direction,
		Status:    ride.Status,
	})

	return nil
}

// AssignVendor lets a vendor claim an open ride
func (uc *rideUC) AssignVendor(ctx context.Context, actorID int64, isVendor bool, rideID int64) (*models.RideDetail, error) {
	if !isVendor {
		return nil, apperrors.Unauthorized("only vendors can be assigned to rides")
	}

	unlock := uc.locks.lock(rideID)
	defer unlock()

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusOpen {
		return nil, apperrors.State("ride is not open for assignment")
	}

	ride.Status = models.RideStatusAssigned
	ride.VendorID = &actorID
	if err := uc.repo.UpdateRide(ctx, ride); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, models.RideEvent{
		Type:      models.EventRideAssigned,
		RideID:    rideID,
		ActorID:   actorID,
		Direction: ride.Direction,
		Status:    ride.Status,
	})

	return uc.repo.GetRideDetail(ctx, rideID)
}

// CompleteRide marks an assigned ride as completed. The creator or the
// assigned vendor may complete it.
func (uc *rideUC) CompleteRide(ctx context.Context, actorID, rideID int64) (*models.RideDetail, error) {
	unlock := uc.locks.lock(rideID)
	defer unlock()

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	isAssignedVendor := ride.VendorID != nil && *ride.VendorID == actorID
	if actorID != ride.CreatorID && !isAssignedVendor {
		return nil, apperrors.Unauthorized("only the ride creator or assigned vendor can complete this ride")
	}
	if ride.Status != models.RideStatusAssigned {
		return nil, apperrors.State("only assigned rides can be completed")
	}

	ride.Status = models.RideStatusCompleted
	if err := uc.repo.UpdateRide(ctx, ride); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, models.RideEvent{
		Type:      models.EventRideCompleted,
		RideID:    rideID,
		ActorID:   actorID,
		Direction: ride.Direction,
		Status:    ride.Status,
	})

	return uc.repo.GetRideDetail(ctx, rideID)
}

// publishEvent emits a lifecycle event. Publication failures are logged and
// never fail the operation itself.
func (uc *rideUC) publishEvent(ctx context.Context, event models.RideEvent) {
	if uc.gw == nil {
		return
	}
	event.OccurredAt = time.Now()
	if err := uc.gw.PublishRideEvent(ctx, event); err != nil {
		logger.Error("failed to publish ride event",
			logger.String("type", event.Type),
			logger.Int64("ride_id", event.RideID),
			logger.Err(err))
	}
}
