package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropoffLocationUnmarshal(t *testing.T) {
	t.Run("bare string form", func(t *testing.T) {
		var d DropoffLocation
		require.NoError(t, json.Unmarshal([]byte(`"north district"`), &d))
		assert.Equal(t, "north district", d.Location)
		assert.Equal(t, 1, d.PassengerCount)
	})

	t.Run("object form", func(t *testing.T) {
		var d DropoffLocation
		require.NoError(t, json.Unmarshal([]byte(`{"location":"east side","passenger_count":3}`), &d))
		assert.Equal(t, "east side", d.Location)
		assert.Equal(t, 3, d.PassengerCount)
	})

	t.Run("object form defaults count to one", func(t *testing.T) {
		var d DropoffLocation
		require.NoError(t, json.Unmarshal([]byte(`{"location":"harbor"}`), &d))
		assert.Equal(t, 1, d.PassengerCount)
	})

	t.Run("mixed list", func(t *testing.T) {
		var list DropoffLocations
		require.NoError(t, json.Unmarshal([]byte(`["harbor",{"location":"east side","passenger_count":2}]`), &list))
		require.Len(t, list, 2)
		assert.Equal(t, "harbor", list[0].Location)
		assert.Equal(t, 2, list[1].PassengerCount)
	})
}

func TestDropoffLocationsScan(t *testing.T) {
	var list DropoffLocations
	require.NoError(t, list.Scan([]byte(`[{"location":"harbor","passenger_count":2}]`)))
	require.Len(t, list, 1)
	assert.Equal(t, "harbor", list[0].Location)

	value, err := DropoffLocations(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestRideIsFull(t *testing.T) {
	ride := Ride{MaxPassengers: 4, CurrentPassengers: 3}
	assert.False(t, ride.IsFull())

	ride.CurrentPassengers = 4
	assert.True(t, ride.IsFull())
}
