package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"costera/internal/pkg/models"
	"costera/services/rides"
	"costera/services/rides/repository"
)

// fakeGW records published events so tests can assert on the lifecycle stream
type fakeGW struct {
	mu     sync.Mutex
	events []models.RideEvent
}

func (g *fakeGW) PublishRideEvent(_ context.Context, event models.RideEvent) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.events = append(g.events, event)
	return nil
}

func (g *fakeGW) eventTypes() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	types := make([]string, len(g.events))
	for i, e := range g.events {
		types[i] = e.Type
	}
	return types
}

func testConfig() *models.Config {
	return &models.Config{
		Rides: models.RidesConfig{CompactSequence: false},
	}
}

func newTestUC(t *testing.T, cfg *models.Config) (rides.RideUC, *repository.MemoryRideRepo, *fakeGW) {
	t.Helper()

	repo := repository.NewMemoryRideRepo()
	gw := &fakeGW{}
	uc, err := NewRideUC(cfg, repo, gw)
	require.NoError(t, err)

	repo.PutUser(models.User{ID: 10, Handle: "maya", DisplayName: "Maya"})
	repo.PutUser(models.User{ID: 20, Handle: "ben", DisplayName: "Ben"})
	repo.PutUser(models.User{ID: 30, Handle: "cho", DisplayName: "Cho"})
	repo.PutUser(models.User{ID: 99, Handle: "shuttleco", DisplayName: "Shuttle Co", IsVendor: true})

	return uc, repo, gw
}

func createTestRide(t *testing.T, uc rides.RideUC, creatorID int64, direction models.Direction, maxPassengers int) *models.RideDetail {
	t.Helper()

	detail, err := uc.CreateRide(context.Background(), creatorID, models.CreateRideRequest{
		Direction:      direction,
		DepartureAt:    time.Now().Add(24 * time.Hour),
		MaxPassengers:  maxPassengers,
		PickupLocation: "city terminal",
	})
	require.NoError(t, err)
	return detail
}
