package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"costera/internal/pkg/apperrors"
	"costera/internal/pkg/models"
)

// MemoryRideRepo is an in-memory rides.RideRepo used by tests and local
// development. The core never notices the difference: it only talks to the
// interface.
type MemoryRideRepo struct {
	mu              sync.RWMutex
	rides           map[int64]models.Ride
	passengers      map[int64]models.RidePassenger
	users           map[int64]models.User
	nextRideID      int64
	nextPassengerID int64
}

// NewMemoryRideRepo creates an empty in-memory repository
func NewMemoryRideRepo() *MemoryRideRepo {
	return &MemoryRideRepo{
		rides:           make(map[int64]models.Ride),
		passengers:      make(map[int64]models.RidePassenger),
		users:           make(map[int64]models.User),
		nextRideID:      1,
		nextPassengerID: 1,
	}
}

// PutUser seeds a user so ride details can attach creator information
func (m *MemoryRideRepo) PutUser(user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

// CreateRide stores a ride under the next serial id
func (m *MemoryRideRepo) CreateRide(_ context.Context, ride *models.Ride) (*models.Ride, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	ride.ID = m.nextRideID
	m.nextRideID++
	ride.CreatedAt = now
	ride.UpdatedAt = now
	m.rides[ride.ID] = *ride

	out := *ride
	return &out, nil
}

// GetRide retrieves a ride by id
func (m *MemoryRideRepo) GetRide(_ context.Context, rideID int64) (*models.Ride, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ride, ok := m.rides[rideID]
	if !ok {
		return nil, apperrors.NotFound("ride", rideID)
	}
	out := ride
	return &out, nil
}

func (m *MemoryRideRepo) detailLocked(ride models.Ride) models.RideDetail {
	detail := models.RideDetail{Ride: ride, IsFull: ride.IsFull()}
	if user, ok := m.users[ride.CreatorID]; ok {
		detail.Creator = user.Summary()
	}
	return detail
}

// GetRideDetail retrieves a ride with its creator attached
func (m *MemoryRideRepo) GetRideDetail(_ context.Context, rideID int64) (*models.RideDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ride, ok := m.rides[rideID]
	if !ok {
		return nil, apperrors.NotFound("ride", rideID)
	}
	detail := m.detailLocked(ride)
	return &detail, nil
}

// ListRideDetails returns all rides, soonest departure first
func (m *MemoryRideRepo) ListRideDetails(_ context.Context) ([]models.RideDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	details := make([]models.RideDetail, 0, len(m.rides))
	for _, ride := range m.rides {
		details = append(details, m.detailLocked(ride))
	}
	sort.Slice(details, func(i, j int) bool {
		if details[i].DepartureAt.Equal(details[j].DepartureAt) {
			return details[i].ID < details[j].ID
		}
		return details[i].DepartureAt.Before(details[j].DepartureAt)
	})
	return details, nil
}

// UpdateRide persists the mutable ride fields
func (m *MemoryRideRepo) UpdateRide(_ context.Context, ride *models.Ride) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.rides[ride.ID]
	if !ok {
		return apperrors.NotFound("ride", ride.ID)
	}
	updated := *ride
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	m.rides[ride.ID] = updated
	return nil
}

// DeleteRide removes the ride and cascades its passenger rows
func (m *MemoryRideRepo) DeleteRide(_ context.Context, rideID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rides[rideID]; !ok {
		return apperrors.NotFound("ride", rideID)
	}
	delete(m.rides, rideID)
	for id, p := range m.passengers {
		if p.RideID == rideID {
			delete(m.passengers, id)
		}
	}
	return nil
}

// AddPassenger stores a passenger record under the next serial id
func (m *MemoryRideRepo) AddPassenger(_ context.Context, passenger *models.RidePassenger) (*models.RidePassenger, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	passenger.ID = m.nextPassengerID
	m.nextPassengerID++
	passenger.CreatedAt = time.Now()
	m.passengers[passenger.ID] = *passenger

	out := *passenger
	return &out, nil
}

// GetPassenger retrieves a passenger record by id
func (m *MemoryRideRepo) GetPassenger(_ context.Context, passengerID int64) (*models.RidePassenger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	passenger, ok := m.passengers[passengerID]
	if !ok {
		return nil, apperrors.NotFound("passenger", passengerID)
	}
	out := passenger
	return &out, nil
}

func (m *MemoryRideRepo) passengersLocked(rideID int64) []models.RidePassenger {
	passengers := make([]models.RidePassenger, 0)
	for _, p := range m.passengers {
		if p.RideID == rideID {
			passengers = append(passengers, p)
		}
	}
	sort.Slice(passengers, func(i, j int) bool { return passengers[i].ID < passengers[j].ID })
	return passengers
}

// ListPassengers returns a ride's passenger records in creation order
func (m *MemoryRideRepo) ListPassengers(_ context.Context, rideID int64) ([]models.RidePassenger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.passengersLocked(rideID), nil
}

// ListPassengerDetails returns passenger records with user details attached
func (m *MemoryRideRepo) ListPassengerDetails(_ context.Context, rideID int64) ([]models.PassengerDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	passengers := m.passengersLocked(rideID)
	details := make([]models.PassengerDetail, 0, len(passengers))
	for _, p := range passengers {
		detail := models.PassengerDetail{RidePassenger: p}
		if user, ok := m.users[p.UserID]; ok {
			detail.User = user.Summary()
		}
		details = append(details, detail)
	}
	return details, nil
}

// RemovePassenger deletes a passenger record
func (m *MemoryRideRepo) RemovePassenger(_ context.Context, passengerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.passengers[passengerID]; !ok {
		return apperrors.NotFound("passenger", passengerID)
	}
	delete(m.passengers, passengerID)
	return nil
}

// UpdateSequences rewrites the sequence numbers for a ride
func (m *MemoryRideRepo) UpdateSequences(_ context.Context, rideID int64, assignments []models.SequenceAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range assignments {
		p, ok := m.passengers[a.PassengerID]
		if !ok || p.RideID != rideID {
			continue
		}
		if a.Sequence != nil {
			seq := *a.Sequence
			p.SequenceNumber = &seq
		} else {
			p.SequenceNumber = nil
		}
		m.passengers[p.ID] = p
	}
	return nil
}

// SyncPassengerCount recomputes the cached counter from the passenger rows
func (m *MemoryRideRepo) SyncPassengerCount(_ context.Context, rideID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ride, ok := m.rides[rideID]
	if !ok {
		return 0, apperrors.NotFound("ride", rideID)
	}

	count := 0
	for _, p := range m.passengers {
		if p.RideID == rideID {
			count += p.PassengerCount
		}
	}
	ride.CurrentPassengers = count
	ride.UpdatedAt = time.Now()
	m.rides[rideID] = ride
	return count, nil
}
