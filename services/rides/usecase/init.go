package usecase

import (
	"sync"

	"costera/internal/pkg/models"
	"costera/services/rides"
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg   *models.Config
	repo  rides.RideRepo
	gw    rides.RideGW
	locks *rideLocks
}

// NewRideUC creates a new ride use case
func NewRideUC(cfg *models.Config, repo rides.RideRepo, gw rides.RideGW) (rides.RideUC, error) {
	return &rideUC{
		cfg:   cfg,
		repo:  repo,
		gw:    gw,
		locks: newRideLocks(),
	}, nil
}

// rideLocks serializes read-then-write sequences per ride so two concurrent
// joins cannot both pass the capacity check before either commits. No
// cross-ride coordination is needed.
type rideLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newRideLocks() *rideLocks {
	return &rideLocks{locks: make(map[int64]*sync.Mutex)}
}

func (rl *rideLocks) lock(rideID int64) func() {
	rl.mu.Lock()
	m, ok := rl.locks[rideID]
	if !ok {
		m = &sync.Mutex{}
		rl.locks[rideID] = m
	}
	rl.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (rl *rideLocks) forget(rideID int64) {
	rl.mu.Lock()
	delete(rl.locks, rideID)
	rl.mu.Unlock()
}
