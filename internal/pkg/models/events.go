package models

import (
	"time"
)

// Ride lifecycle event types published to the event stream
const (
	EventRideCreated     = "ride.created"
	EventRideUpdated     = "ride.updated"
	EventRideDeleted     = "ride.deleted"
	EventRideAssigned    = "ride.assigned"
	EventRideCompleted   = "ride.completed"
	EventPassengerJoined = "ride.passenger_joined"
	EventPassengerLeft   = "ride.passenger_left"
	EventSequenceLocked  = "ride.sequence_locked"
)

// RideEvent is the envelope published for every ride lifecycle transition
type RideEvent struct {
	Type        string     `json:"type"`
	RideID      int64      `json:"ride_id"`
	ActorID     int64      `json:"actor_id"`
	Direction   Direction  `json:"direction"`
	Status      RideStatus `json:"status"`
	PassengerID int64      `json:"passenger_id,omitempty"`
	Seats       int        `json:"seats,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}
