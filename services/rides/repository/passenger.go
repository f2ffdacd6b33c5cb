package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"costera/internal/pkg/apperrors"
	"costera/internal/pkg/models"
)

// AddPassenger inserts a passenger record with no sequence number assigned
func (r *RideRepo) AddPassenger(ctx context.Context, passenger *models.RidePassenger) (*models.RidePassenger, error) {
	query := `
		INSERT INTO ride_passengers (ride_id, user_id, dropoff_location, sequence_number, passenger_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		passenger.RideID,
		passenger.UserID,
		passenger.DropoffLocation,
		passenger.SequenceNumber,
		passenger.PassengerCount,
		time.Now(),
	).Scan(&passenger.ID, &passenger.CreatedAt)
	if err != nil {
		return nil, apperrors.Infrastructure("failed to add passenger", err)
	}

	return passenger, nil
}

// GetPassenger retrieves a passenger record by id
func (r *RideRepo) GetPassenger(ctx context.Context, passengerID int64) (*models.RidePassenger, error) {
	query := `
		SELECT id, ride_id, user_id, dropoff_location, sequence_number, passenger_count, created_at
		FROM ride_passengers
		WHERE id = $1
	`

	var passenger models.RidePassenger
	err := r.db.GetContext(ctx, &passenger, query, passengerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("passenger", passengerID)
		}
		return nil, apperrors.Infrastructure("failed to get passenger", err)
	}

	return &passenger, nil
}

// ListPassengers returns a ride's passenger records in creation order
func (r *RideRepo) ListPassengers(ctx context.Context, rideID int64) ([]models.RidePassenger, error) {
	query := `
		SELECT id, ride_id, user_id, dropoff_location, sequence_number, passenger_count, created_at
		FROM ride_passengers
		WHERE ride_id = $1
		ORDER BY id ASC
	`

	passengers := make([]models.RidePassenger, 0)
	if err := r.db.SelectContext(ctx, &passengers, query, rideID); err != nil {
		return nil, apperrors.Infrastructure("failed to list passengers", err)
	}

	return passengers, nil
}

// ListPassengerDetails returns passenger records with user details attached
func (r *RideRepo) ListPassengerDetails(ctx context.Context, rideID int64) ([]models.PassengerDetail, error) {
	query := `
		SELECT
			p.id, p.ride_id, p.user_id, p.dropoff_location, p.sequence_number,
			p.passenger_count, p.created_at,
			u.id, u.handle, u.display_name, u.whatsapp, u.phone, u.is_vendor
		FROM ride_passengers p
		JOIN users u ON u.id = p.user_id
		WHERE p.ride_id = $1
		ORDER BY p.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, rideID)
	if err != nil {
		return nil, apperrors.Infrastructure("failed to list passenger details", err)
	}
	defer rows.Close()

	details := make([]models.PassengerDetail, 0)
	for rows.Next() {
		var d models.PassengerDetail
		err := rows.Scan(
			&d.ID, &d.RideID, &d.UserID, &d.DropoffLocation, &d.SequenceNumber,
			&d.PassengerCount, &d.CreatedAt,
			&d.User.ID, &d.User.Handle, &d.User.DisplayName,
			&d.User.Whatsapp, &d.User.Phone, &d.User.IsVendor,
		)
		if err != nil {
			return nil, apperrors.Infrastructure("failed to scan passenger", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Infrastructure("failed to list passenger details", err)
	}

	return details, nil
}

// RemovePassenger deletes a passenger record
func (r *RideRepo) RemovePassenger(ctx context.Context, passengerID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ride_passengers WHERE id = $1`, passengerID)
	if err != nil {
		return apperrors.Infrastructure("failed to remove passenger", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Infrastructure("failed to remove passenger", err)
	}
	if affected == 0 {
		return apperrors.NotFound("passenger", passengerID)
	}

	return nil
}

// UpdateSequences rewrites the sequence numbers for a ride in one transaction
func (r *RideRepo) UpdateSequences(ctx context.Context, rideID int64, assignments []models.SequenceAssignment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Infrastructure("failed to begin transaction", err)
	}
	defer tx.Rollback()

	query := `UPDATE ride_passengers SET sequence_number = $1 WHERE id = $2 AND ride_id = $3`
	for _, a := range assignments {
		if _, err := tx.ExecContext(ctx, query, a.Sequence, a.PassengerID, rideID); err != nil {
			return apperrors.Infrastructure("failed to update sequence", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Infrastructure("failed to commit sequence update", err)
	}

	return nil
}

// SyncPassengerCount recomputes the cached counter from the passenger rows
// atomically and returns the authoritative value.
func (r *RideRepo) SyncPassengerCount(ctx context.Context, rideID int64) (int, error) {
	query := `
		UPDATE rides SET current_passengers = COALESCE(
			(SELECT SUM(passenger_count) FROM ride_passengers WHERE ride_id = rides.id), 0
		), updated_at = $1
		WHERE id = $2
		RETURNING current_passengers
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, time.Now(), rideID).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.NotFound("ride", rideID)
		}
		return 0, apperrors.Infrastructure("failed to sync passenger count", err)
	}

	return count, nil
}
