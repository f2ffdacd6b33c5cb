package usecase

import (
	"context"

	"costera/internal/pkg/apperrors"
	"costera/internal/pkg/models"
)

// guardSequenceOp loads the ride and enforces the sequence preconditions
// shared by reorder and lock: creator only, return direction only.
func (uc *rideUC) guardSequenceOp(ctx context.Context, actorID, rideID int64) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !CanManageSequence(actorID, ride) {
		if actorID != ride.CreatorID {
			return nil, apperrors.Unauthorized("only the ride creator can manage the drop-off sequence")
		}
		return nil, apperrors.State("sequencing is not applicable to outbound rides")
	}
	return ride, nil
}

// ReorderPassenger moves one passenger to a new position in the drop-off
// order and renumbers the whole list to a contiguous 1..N. Rejected once the
// sequence has been locked.
func (uc *rideUC) ReorderPassenger(ctx context.Context, actorID, rideID, passengerID int64, newPosition int) ([]models.RidePassenger, error) {
	unlock := uc.locks.lock(rideID)
	defer unlock()

	ride, err := uc.guardSequenceOp(ctx, actorID, rideID)
	if err != nil {
		return nil, err
	}
	if ride.SequenceLocked {
		return nil, apperrors.State("sequence already locked")
	}

	passengers, err := uc.repo.ListPassengers(ctx, rideID)
	if err != nil {
		return nil, err
	}
	assignments, ok := ReorderSequence(passengers, passengerID, newPosition)
	if !ok {
		return nil, apperrors.NotFound("passenger", passengerID)
	}
	if err := uc.repo.UpdateSequences(ctx, rideID, assignments); err != nil {
		return nil, err
	}

	return uc.repo.ListPassengers(ctx, rideID)
}

// LockSequence finalizes the drop-off order, assigning sequence numbers to
// any record still lacking one in join order. Idempotent: locking an already
// locked ride succeeds without changing the assignment. There is no unlock.
func (uc *rideUC) LockSequence(ctx context.Context, actorID, rideID int64) ([]models.RidePassenger, error) {
	unlock := uc.locks.lock(rideID)
	defer unlock()

	ride, err := uc.guardSequenceOp(ctx, actorID, rideID)
	if err != nil {
		return nil, err
	}

	if !ride.SequenceLocked {
		passengers, err := uc.repo.ListPassengers(ctx, rideID)
		if err != nil {
			return nil, err
		}
		if len(passengers) > 0 {
			if err := uc.repo.UpdateSequences(ctx, rideID, LockAssignments(passengers)); err != nil {
				return nil, err
			}
		}

		ride.SequenceLocked = true
		if err := uc.repo.UpdateRide(ctx, ride); err != nil {
			return nil, err
		}

		uc.publishEvent(ctx, models.RideEvent{
			Type:      models.EventSequenceLocked,
			RideID:    rideID,
			ActorID:   actorID,
			Direction: ride.Direction,
			Status:    ride.Status,
		})
	}

	return uc.repo.ListPassengers(ctx, rideID)
}
