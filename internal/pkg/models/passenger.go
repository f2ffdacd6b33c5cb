package models

import (
	"time"
)

// RidePassenger binds one user's party (1-4 seats) to one ride
type RidePassenger struct {
	ID              int64     `json:"id" db:"id"`
	RideID          int64     `json:"ride_id" db:"ride_id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	DropoffLocation string    `json:"dropoff_location" db:"dropoff_location"`
	// SequenceNumber is nil until the drop-off order is assigned or locked.
	SequenceNumber *int      `json:"sequence_number" db:"sequence_number"`
	PassengerCount int       `json:"passenger_count" db:"passenger_count"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// PassengerDetail is the authenticated view of a passenger record
type PassengerDetail struct {
	RidePassenger
	User UserSummary `json:"user"`
}

// PassengerPublic is the anonymous view: location and sequence only
type PassengerPublic struct {
	DropoffLocation string `json:"dropoff_location"`
	SequenceNumber  *int   `json:"sequence_number"`
}

// SequenceAssignment carries one passenger's new drop-off sequence number
// when the ordering of a ride is rewritten.
type SequenceAssignment struct {
	PassengerID int64 `json:"passenger_id"`
	Sequence    *int  `json:"sequence"`
}

// Public reduces a passenger record to its anonymous view
func (p *RidePassenger) Public() PassengerPublic {
	return PassengerPublic{
		DropoffLocation: p.DropoffLocation,
		SequenceNumber:  p.SequenceNumber,
	}
}
