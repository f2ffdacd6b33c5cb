package usecase

import (
	"sort"

	"costera/internal/pkg/models"
)

// Drop-off sequence engine for return rides. The working order of a ride's
// passenger list is: records that already carry a sequence number first, by
// that number, then unsequenced records in creation (join) order. Reordering
// and locking both renumber along that order, so "first joined, first
// sequenced" holds wherever the organizer has not arranged records manually.

// orderedPassengers returns the working order described above
func orderedPassengers(passengers []models.RidePassenger) []models.RidePassenger {
	ordered := make([]models.RidePassenger, len(passengers))
	copy(ordered, passengers)
	sort.SliceStable(ordered, func(i, j int) bool {
		si, sj := ordered[i].SequenceNumber, ordered[j].SequenceNumber
		switch {
		case si != nil && sj != nil:
			return *si < *sj
		case si != nil:
			return true
		case sj != nil:
			return false
		default:
			return false // unsequenced: keep creation order
		}
	})
	return ordered
}

// renumber assigns a contiguous 1..N sequence along the given order
func renumber(ordered []models.RidePassenger) []models.SequenceAssignment {
	assignments := make([]models.SequenceAssignment, len(ordered))
	for i := range ordered {
		seq := i + 1
		assignments[i] = models.SequenceAssignment{PassengerID: ordered[i].ID, Sequence: &seq}
	}
	return assignments
}

// ReorderSequence moves the given passenger to newPosition (clamped to
// [1, N]) within the working order and renumbers every record to a
// contiguous 1..N. This is a full-list reorder, not a swap: the target is
// removed from its old position and reinserted at the new index.
func ReorderSequence(passengers []models.RidePassenger, passengerID int64, newPosition int) ([]models.SequenceAssignment, bool) {
	ordered := orderedPassengers(passengers)

	idx := -1
	for i, p := range ordered {
		if p.ID == passengerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	if newPosition < 1 {
		newPosition = 1
	}
	if newPosition > len(ordered) {
		newPosition = len(ordered)
	}

	moved := ordered[idx]
	ordered = append(ordered[:idx], ordered[idx+1:]...)
	rest := make([]models.RidePassenger, 0, len(ordered)+1)
	rest = append(rest, ordered[:newPosition-1]...)
	rest = append(rest, moved)
	rest = append(rest, ordered[newPosition-1:]...)

	return renumber(rest), true
}

// LockAssignments finalizes the sequence: every record is numbered 1..N
// along the working order. Records that already carry a number keep their
// relative order; unsequenced records follow in creation order. Calling it
// on an already contiguous list reproduces the same assignment, which makes
// the lock operation idempotent.
func LockAssignments(passengers []models.RidePassenger) []models.SequenceAssignment {
	return renumber(orderedPassengers(passengers))
}

// CompactAssignments renumbers the remaining records to a contiguous 1..N
// after a removal, preserving their working order. Used post-lock only when
// sequence compaction is enabled.
func CompactAssignments(passengers []models.RidePassenger) []models.SequenceAssignment {
	return renumber(orderedPassengers(passengers))
}
