package usecase

import (
	"costera/internal/pkg/models"
)

// Ownership predicates. Pure functions: callers load the entities and map a
// false answer to an authorization error, never to a silent no-op.

// CanEditRide reports whether the actor may edit the ride
func CanEditRide(actorID int64, ride *models.Ride) bool {
	return actorID == ride.CreatorID
}

// CanDeleteRide reports whether the actor may delete the ride. Deletion is
// blocked while any other user still holds a passenger record on it.
func CanDeleteRide(actorID int64, ride *models.Ride, passengers []models.RidePassenger) bool {
	if actorID != ride.CreatorID {
		return false
	}
	for _, p := range passengers {
		if p.UserID != ride.CreatorID {
			return false
		}
	}
	return true
}

// CanRemovePassenger reports whether the actor may remove the passenger
// record: the ride creator and the passenger themselves both may.
func CanRemovePassenger(actorID int64, ride *models.Ride, passenger *models.RidePassenger) bool {
	return actorID == ride.CreatorID || actorID == passenger.UserID
}

// CanManageSequence reports whether the actor may reorder or lock the
// drop-off sequence. Only the creator, and only for return rides.
func CanManageSequence(actorID int64, ride *models.Ride) bool {
	return actorID == ride.CreatorID && ride.Direction == models.DirectionReturn
}
