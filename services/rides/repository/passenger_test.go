package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"costera/internal/pkg/apperrors"
	"costera/internal/pkg/models"
)

var passengerRowColumns = []string{
	"id", "ride_id", "user_id", "dropoff_location", "sequence_number", "passenger_count", "created_at",
}

func TestAddPassenger(t *testing.T) {
	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("^INSERT INTO ride_passengers").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	passenger, err := repo.AddPassenger(context.Background(), &models.RidePassenger{
		RideID:          7,
		UserID:          20,
		DropoffLocation: "east side",
		PassengerCount:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), passenger.ID)
	assert.Nil(t, passenger.SequenceNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPassenger(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := setupRideRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows(passengerRowColumns).
			AddRow(int64(3), int64(7), int64(20), "east side", nil, 2, time.Now())
		mock.ExpectQuery("^SELECT (.+) FROM ride_passengers").
			WithArgs(int64(3)).
			WillReturnRows(rows)

		passenger, err := repo.GetPassenger(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(7), passenger.RideID)
		assert.Equal(t, 2, passenger.PassengerCount)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupRideRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^SELECT (.+) FROM ride_passengers").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetPassenger(context.Background(), 404)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestListPassengers(t *testing.T) {
	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(passengerRowColumns).
		AddRow(int64(1), int64(7), int64(10), "north district", 1, 1, time.Now()).
		AddRow(int64(2), int64(7), int64(20), "east side", nil, 2, time.Now())
	mock.ExpectQuery("^SELECT (.+) FROM ride_passengers").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	passengers, err := repo.ListPassengers(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, passengers, 2)
	require.NotNil(t, passengers[0].SequenceNumber)
	assert.Equal(t, 1, *passengers[0].SequenceNumber)
	assert.Nil(t, passengers[1].SequenceNumber)
}

func TestRemovePassengerRow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupRideRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^DELETE FROM ride_passengers WHERE id").
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.RemovePassenger(context.Background(), 3))
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupRideRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^DELETE FROM ride_passengers WHERE id").
			WithArgs(int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RemovePassenger(context.Background(), 404)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestUpdateSequencesTx(t *testing.T) {
	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	one, two := 1, 2
	assignments := []models.SequenceAssignment{
		{PassengerID: 2, Sequence: &one},
		{PassengerID: 1, Sequence: &two},
	}

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE ride_passengers SET sequence_number").
		WithArgs(int64(1), int64(2), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^UPDATE ride_passengers SET sequence_number").
		WithArgs(int64(2), int64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateSequences(context.Background(), 7, assignments)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncPassengerCount(t *testing.T) {
	t.Run("returns the recomputed counter", func(t *testing.T) {
		repo, mock, cleanup := setupRideRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^UPDATE rides SET current_passengers").
			WillReturnRows(sqlmock.NewRows([]string{"current_passengers"}).AddRow(3))

		count, err := repo.SyncPassengerCount(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("missing ride", func(t *testing.T) {
		repo, mock, cleanup := setupRideRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^UPDATE rides SET current_passengers").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.SyncPassengerCount(context.Background(), 404)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}
