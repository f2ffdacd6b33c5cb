package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Direction is one of the two fixed routes between the city and the resort
type Direction string

const (
	DirectionOutbound Direction = "outbound"
	DirectionReturn   Direction = "return"
)

// Valid reports whether d is one of the two known directions
func (d Direction) Valid() bool {
	return d == DirectionOutbound || d == DirectionReturn
}

// RideStatus represents the lifecycle status of a ride
type RideStatus string

const (
	RideStatusOpen      RideStatus = "open"
	RideStatusAssigned  RideStatus = "assigned"
	RideStatusCompleted RideStatus = "completed"
)

// DropoffLocation is a normalized drop-off entry: an opaque location label
// plus the number of passengers destined there.
type DropoffLocation struct {
	Location       string `json:"location"`
	PassengerCount int    `json:"passenger_count"`
}

// UnmarshalJSON accepts both the bare-string and the object form used by
// older clients and normalizes to the tagged representation.
func (d *DropoffLocation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Location = s
		d.PassengerCount = 1
		return nil
	}
	type alias DropoffLocation
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.PassengerCount == 0 {
		a.PassengerCount = 1
	}
	*d = DropoffLocation(a)
	return nil
}

// DropoffLocations is stored as a JSONB column
type DropoffLocations []DropoffLocation

// Value implements driver.Valuer for JSONB storage
func (d DropoffLocations) Value() (driver.Value, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB storage
func (d *DropoffLocations) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported type %T for DropoffLocations", src)
	}
}

// Ride represents a scheduled shared trip between the two endpoints
type Ride struct {
	ID                int64            `json:"id" db:"id"`
	CreatorID         int64            `json:"creator_id" db:"creator_id"`
	Direction         Direction        `json:"direction" db:"direction"`
	DepartureAt       time.Time        `json:"departure_at" db:"departure_at"`
	MaxPassengers     int              `json:"max_passengers" db:"max_passengers"`
	CurrentPassengers int              `json:"current_passengers" db:"current_passengers"`
	PickupLocation    string           `json:"pickup_location" db:"pickup_location"`
	DropoffLocations  DropoffLocations `json:"dropoff_locations" db:"dropoff_locations"`
	Status            RideStatus       `json:"status" db:"status"`
	// SequenceLocked marks the drop-off ordering as final for return rides.
	SequenceLocked    bool             `json:"sequence_locked" db:"sequence_locked"`
	VendorID          *int64           `json:"vendor_id,omitempty" db:"vendor_id"`
	BaseCost          int              `json:"base_cost" db:"base_cost"`
	AdditionalStops   int              `json:"additional_stops" db:"additional_stops"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at" db:"updated_at"`
}

// IsFull reports whether the ride has no seats left. Fullness is derived,
// never stored: a full ride stays in status open.
func (r *Ride) IsFull() bool {
	return r.CurrentPassengers >= r.MaxPassengers
}

// RideDetail is a ride with its creator attached for list/detail responses
type RideDetail struct {
	Ride
	Creator UserSummary `json:"creator"`
	IsFull  bool        `json:"is_full"`
}

// CreateRideRequest is the payload for ride creation
type CreateRideRequest struct {
	Direction        Direction         `json:"direction"`
	DepartureAt      time.Time         `json:"departure_at"`
	MaxPassengers    int               `json:"max_passengers"`
	PickupLocation   string            `json:"pickup_location"`
	DropoffLocations []DropoffLocation `json:"dropoff_locations"`
	BaseCost         int               `json:"base_cost"`
	AdditionalStops  int               `json:"additional_stops"`
}

// UpdateRideRequest is the payload for ride edits; nil fields are untouched
type UpdateRideRequest struct {
	DepartureAt      *time.Time         `json:"departure_at"`
	MaxPassengers    *int               `json:"max_passengers"`
	PickupLocation   *string            `json:"pickup_location"`
	DropoffLocations *[]DropoffLocation `json:"dropoff_locations"`
	BaseCost         *int               `json:"base_cost"`
	AdditionalStops  *int               `json:"additional_stops"`
}

// JoinRideRequest is the payload for joining a ride
type JoinRideRequest struct {
	DropoffLocation string `json:"dropoff_location"`
	PassengerCount  int    `json:"passenger_count"`
}

// SequenceRequest is the payload for moving a passenger in the drop-off order
type SequenceRequest struct {
	Sequence int `json:"sequence"`
}
