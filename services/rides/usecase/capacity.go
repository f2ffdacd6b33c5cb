package usecase

import (
	"costera/internal/pkg/models"
)

// Party size bounds for a single passenger record.
const (
	MinPartySize = 1
	MaxPartySize = 4
)

// OccupiedSeats sums the seats covered by the given passenger records
func OccupiedSeats(passengers []models.RidePassenger) int {
	total := 0
	for _, p := range passengers {
		total += p.PassengerCount
	}
	return total
}

// AvailableSeats computes remaining capacity from the passenger records.
// The cached counter on the ride is never trusted at mutation time.
func AvailableSeats(ride *models.Ride, passengers []models.RidePassenger) int {
	return ride.MaxPassengers - OccupiedSeats(passengers)
}

// CanAccommodate reports whether the ride has room for the requested seats
func CanAccommodate(ride *models.Ride, passengers []models.RidePassenger, requested int) bool {
	return AvailableSeats(ride, passengers) >= requested
}
