package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"costera/internal/pkg/models"
)

func seq(n int) *int { return &n }

func passengerList(seqs ...*int) []models.RidePassenger {
	passengers := make([]models.RidePassenger, len(seqs))
	for i, s := range seqs {
		passengers[i] = models.RidePassenger{ID: int64(i + 1), RideID: 1, SequenceNumber: s}
	}
	return passengers
}

// assertPermutation checks that the assignments cover exactly 1..N
func assertPermutation(t *testing.T, assignments []models.SequenceAssignment) {
	t.Helper()
	seen := make(map[int]bool, len(assignments))
	for _, a := range assignments {
		require.NotNil(t, a.Sequence)
		assert.GreaterOrEqual(t, *a.Sequence, 1)
		assert.LessOrEqual(t, *a.Sequence, len(assignments))
		assert.False(t, seen[*a.Sequence], "duplicate sequence number %d", *a.Sequence)
		seen[*a.Sequence] = true
	}
}

func sequenceByID(assignments []models.SequenceAssignment) map[int64]int {
	out := make(map[int64]int, len(assignments))
	for _, a := range assignments {
		out[a.PassengerID] = *a.Sequence
	}
	return out
}

func TestOrderedPassengers(t *testing.T) {
	testCases := []struct {
		name    string
		input   []models.RidePassenger
		wantIDs []int64
	}{
		{
			name:    "all unsequenced keeps creation order",
			input:   passengerList(nil, nil, nil),
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "sequenced records come first by number",
			input:   passengerList(nil, seq(2), seq(1)),
			wantIDs: []int64{3, 2, 1},
		},
		{
			name:    "mixed keeps unsequenced in creation order after sequenced",
			input:   passengerList(nil, seq(1), nil),
			wantIDs: []int64{2, 1, 3},
		},
		{
			name:    "gapped numbers preserve relative order",
			input:   passengerList(seq(5), seq(2), nil),
			wantIDs: []int64{2, 1, 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ordered := orderedPassengers(tc.input)
			ids := make([]int64, len(ordered))
			for i, p := range ordered {
				ids[i] = p.ID
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestReorderSequence(t *testing.T) {
	t.Run("move last to front", func(t *testing.T) {
		passengers := passengerList(nil, nil, nil)

		assignments, ok := ReorderSequence(passengers, 3, 1)
		require.True(t, ok)
		assertPermutation(t, assignments)

		byID := sequenceByID(assignments)
		assert.Equal(t, 1, byID[3])
		assert.Equal(t, 2, byID[1])
		assert.Equal(t, 3, byID[2])
	})

	t.Run("position clamped to list bounds", func(t *testing.T) {
		passengers := passengerList(nil, nil, nil)

		assignments, ok := ReorderSequence(passengers, 1, 99)
		require.True(t, ok)
		byID := sequenceByID(assignments)
		assert.Equal(t, 3, byID[1])

		assignments, ok = ReorderSequence(passengers, 2, -5)
		require.True(t, ok)
		byID = sequenceByID(assignments)
		assert.Equal(t, 1, byID[2])
	})

	t.Run("reorder renumbers an already sequenced list", func(t *testing.T) {
		passengers := passengerList(seq(1), seq(2), seq(3))

		assignments, ok := ReorderSequence(passengers, 2, 3)
		require.True(t, ok)
		assertPermutation(t, assignments)

		byID := sequenceByID(assignments)
		assert.Equal(t, 1, byID[1])
		assert.Equal(t, 2, byID[3])
		assert.Equal(t, 3, byID[2])
	})

	t.Run("unknown passenger", func(t *testing.T) {
		passengers := passengerList(nil, nil)

		assignments, ok := ReorderSequence(passengers, 42, 1)
		assert.False(t, ok)
		assert.Nil(t, assignments)
	})
}

func TestLockAssignments(t *testing.T) {
	t.Run("unsequenced records numbered in join order", func(t *testing.T) {
		passengers := passengerList(nil, nil, nil)

		assignments := LockAssignments(passengers)
		assertPermutation(t, assignments)

		byID := sequenceByID(assignments)
		assert.Equal(t, 1, byID[1])
		assert.Equal(t, 2, byID[2])
		assert.Equal(t, 3, byID[3])
	})

	t.Run("manual arrangement kept, stragglers appended", func(t *testing.T) {
		passengers := passengerList(seq(2), seq(1), nil)

		assignments := LockAssignments(passengers)
		assertPermutation(t, assignments)

		byID := sequenceByID(assignments)
		assert.Equal(t, 1, byID[2])
		assert.Equal(t, 2, byID[1])
		assert.Equal(t, 3, byID[3])
	})

	t.Run("idempotent on a contiguous list", func(t *testing.T) {
		passengers := passengerList(seq(1), seq(2), seq(3))

		first := LockAssignments(passengers)
		for _, a := range first {
			for i := range passengers {
				if passengers[i].ID == a.PassengerID {
					passengers[i].SequenceNumber = a.Sequence
				}
			}
		}
		second := LockAssignments(passengers)
		assert.Equal(t, sequenceByID(first), sequenceByID(second))
	})

	t.Run("gapped numbers collapse to a permutation", func(t *testing.T) {
		passengers := passengerList(seq(1), seq(3), seq(7))

		assignments := LockAssignments(passengers)
		assertPermutation(t, assignments)

		byID := sequenceByID(assignments)
		assert.Equal(t, 1, byID[1])
		assert.Equal(t, 2, byID[2])
		assert.Equal(t, 3, byID[3])
	})
}

func TestCompactAssignments(t *testing.T) {
	// Remaining records after removing the passenger that held position 2.
	passengers := passengerList(seq(1), seq(3), seq(4))

	assignments := CompactAssignments(passengers)
	assertPermutation(t, assignments)

	byID := sequenceByID(assignments)
	assert.Equal(t, 1, byID[1])
	assert.Equal(t, 2, byID[2])
	assert.Equal(t, 3, byID[3])
}
