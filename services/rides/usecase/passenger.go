package usecase

import (
	"context"
	"strings"

	"costera/internal/pkg/apperrors"
	"costera/internal/pkg/models"
)

// JoinRide appends a passenger record for the acting user after the capacity
// check. Capacity is recomputed from the stored records under the per-ride
// lock, never read from the cached counter. A ride that reaches capacity
// stays open; fullness is derived.
func (uc *rideUC) JoinRide(ctx context.Context, actorID, rideID int64, req models.JoinRideRequest) (*models.RidePassenger, error) {
	if req.PassengerCount < MinPartySize || req.PassengerCount > MaxPartySize {
		return nil, apperrors.Validation("passenger_count", "passenger count must be between 1 and 4")
	}
	if strings.TrimSpace(req.DropoffLocation) == "" {
		return nil, apperrors.Validation("dropoff_location", "drop-off location is required")
	}

	unlock := uc.locks.lock(rideID)
	defer unlock()

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusOpen {
		return nil, apperrors.State("ride is not open for joining")
	}

	passengers, err := uc.repo.ListPassengers(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !CanAccommodate(ride, passengers, req.PassengerCount) {
		return nil, apperrors.Capacity(AvailableSeats(ride, passengers))
	}

	passenger := &models.RidePassenger{
		RideID:          rideID,
		UserID:          actorID,
		DropoffLocation: strings.TrimSpace(req.DropoffLocation),
		PassengerCount:  req.PassengerCount,
	}
	created, err := uc.repo.AddPassenger(ctx, passenger)
	if err != nil {
		return nil, err
	}
	if _, err := uc.repo.SyncPassengerCount(ctx, rideID); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, models.RideEvent{
		Type:        models.EventPassengerJoined,
		RideID:      rideID,
		ActorID:     actorID,
		Direction:   ride.Direction,
		Status:      ride.Status,
		PassengerID: created.ID,
		Seats:       created.PassengerCount,
	})

	return created, nil
}

// RemovePassenger deletes a passenger record. The ride creator and the
// passenger themselves may remove it; the cached seat counter is resynced
// from the remaining rows. When the sequence was already locked, the gap
// left behind is preserved unless compaction is configured.
func (uc *rideUC) RemovePassenger(ctx context.Context, actorID, rideID, passengerID int64) error {
	unlock := uc.locks.lock(rideID)
	defer unlock()

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return err
	}
	passenger, err := uc.repo.GetPassenger(ctx, passengerID)
	if err != nil {
		return err
	}
	if passenger.RideID != rideID {
		return apperrors.NotFound("passenger", passengerID)
	}
	if !CanRemovePassenger(actorID, ride, passenger) {
		return apperrors.Unauthorized("only the ride creator or the passenger can remove this record")
	}

	if err := uc.repo.RemovePassenger(ctx, passengerID); err != nil {
		return err
	}
	if _, err := uc.repo.SyncPassengerCount(ctx, rideID); err != nil {
		return err
	}

	if ride.SequenceLocked && uc.cfg.Rides.CompactSequence {
		remaining, err := uc.repo.ListPassengers(ctx, rideID)
		if err != nil {
			return err
		}
		if len(remaining) > 0 {
			if err := uc.repo.UpdateSequences(ctx, rideID, CompactAssignments(remaining)); err != nil {
				return err
			}
		}
	}

	uc.publishEvent(ctx, models.RideEvent{
		Type:        models.EventPassengerLeft,
		RideID:      rideID,
		ActorID:     actorID,
		Direction:   ride.Direction,
		Status:      ride.Status,
		PassengerID: passengerID,
		Seats:       passenger.PassengerCount,
	})

	return nil
}

// ListPassengerDetails returns the full passenger view for authenticated callers
func (uc *rideUC) ListPassengerDetails(ctx context.Context, rideID int64) ([]models.PassengerDetail, error) {
	if _, err := uc.repo.GetRide(ctx, rideID); err != nil {
		return nil, err
	}
	return uc.repo.ListPassengerDetails(ctx, rideID)
}

// ListPassengersPublic returns the reduced view for anonymous callers:
// drop-off location and sequence only.
func (uc *rideUC) ListPassengersPublic(ctx context.Context, rideID int64) ([]models.PassengerPublic, error) {
	if _, err := uc.repo.GetRide(ctx, rideID); err != nil {
		return nil, err
	}
	passengers, err := uc.repo.ListPassengers(ctx, rideID)
	if err != nil {
		return nil, err
	}
	public := make([]models.PassengerPublic, 0, len(passengers))
	for i := range passengers {
		public = append(public, passengers[i].Public())
	}
	return public, nil
}
