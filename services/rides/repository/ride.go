package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"costera/internal/pkg/apperrors"
	"costera/internal/pkg/models"
)

const rideColumns = `
	id, creator_id, direction, departure_at, max_passengers, current_passengers,
	pickup_location, dropoff_locations, status, sequence_locked, vendor_id,
	base_cost, additional_stops, created_at, updated_at`

// CreateRide inserts a new ride and returns it with its generated id
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	query := `
		INSERT INTO rides (
			creator_id, direction, departure_at, max_passengers, current_passengers,
			pickup_location, dropoff_locations, status, sequence_locked, vendor_id,
			base_cost, additional_stops, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(
		ctx,
		query,
		ride.CreatorID,
		ride.Direction,
		ride.DepartureAt,
		ride.MaxPassengers,
		ride.CurrentPassengers,
		ride.PickupLocation,
		ride.DropoffLocations,
		ride.Status,
		ride.SequenceLocked,
		ride.VendorID,
		ride.BaseCost,
		ride.AdditionalStops,
		now,
	).Scan(&ride.ID, &ride.CreatedAt, &ride.UpdatedAt)
	if err != nil {
		return nil, apperrors.Infrastructure("failed to create ride", err)
	}

	return ride, nil
}

// GetRide retrieves a ride by id
func (r *RideRepo) GetRide(ctx context.Context, rideID int64) (*models.Ride, error) {
	query := `SELECT` + rideColumns + ` FROM rides WHERE id = $1`

	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, query, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("ride", rideID)
		}
		return nil, apperrors.Infrastructure("failed to get ride", err)
	}

	return &ride, nil
}

const rideDetailQuery = `
	SELECT
		r.id, r.creator_id, r.direction, r.departure_at, r.max_passengers,
		r.current_passengers, r.pickup_location, r.dropoff_locations, r.status,
		r.sequence_locked, r.vendor_id, r.base_cost, r.additional_stops,
		r.created_at, r.updated_at,
		u.id, u.handle, u.display_name, u.whatsapp, u.phone, u.is_vendor
	FROM rides r
	JOIN users u ON u.id = r.creator_id`

func scanRideDetail(row interface{ Scan(...interface{}) error }) (*models.RideDetail, error) {
	var d models.RideDetail
	err := row.Scan(
		&d.ID, &d.CreatorID, &d.Direction, &d.DepartureAt, &d.MaxPassengers,
		&d.CurrentPassengers, &d.PickupLocation, &d.DropoffLocations, &d.Status,
		&d.SequenceLocked, &d.VendorID, &d.BaseCost, &d.AdditionalStops,
		&d.CreatedAt, &d.UpdatedAt,
		&d.Creator.ID, &d.Creator.Handle, &d.Creator.DisplayName,
		&d.Creator.Whatsapp, &d.Creator.Phone, &d.Creator.IsVendor,
	)
	if err != nil {
		return nil, err
	}
	d.IsFull = d.Ride.IsFull()
	return &d, nil
}

// GetRideDetail retrieves a ride with its creator attached
func (r *RideRepo) GetRideDetail(ctx context.Context, rideID int64) (*models.RideDetail, error) {
	row := r.db.QueryRowContext(ctx, rideDetailQuery+` WHERE r.id = $1`, rideID)

	detail, err := scanRideDetail(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("ride", rideID)
		}
		return nil, apperrors.Infrastructure("failed to get ride detail", err)
	}

	return detail, nil
}

// ListRideDetails retrieves all rides with creators, soonest departure first
func (r *RideRepo) ListRideDetails(ctx context.Context) ([]models.RideDetail, error) {
	rows, err := r.db.QueryContext(ctx, rideDetailQuery+` ORDER BY r.departure_at ASC, r.id ASC`)
	if err != nil {
		return nil, apperrors.Infrastructure("failed to list rides", err)
	}
	defer rows.Close()

	details := make([]models.RideDetail, 0)
	for rows.Next() {
		detail, err := scanRideDetail(rows)
		if err != nil {
			return nil, apperrors.Infrastructure("failed to scan ride", err)
		}
		details = append(details, *detail)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Infrastructure("failed to list rides", err)
	}

	return details, nil
}

// UpdateRide persists the mutable ride fields
func (r *RideRepo) UpdateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		UPDATE rides SET
			departure_at = $1,
			max_passengers = $2,
			pickup_location = $3,
			dropoff_locations = $4,
			status = $5,
			sequence_locked = $6,
			vendor_id = $7,
			base_cost = $8,
			additional_stops = $9,
			updated_at = $10
		WHERE id = $11
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		ride.DepartureAt,
		ride.MaxPassengers,
		ride.PickupLocation,
		ride.DropoffLocations,
		ride.Status,
		ride.SequenceLocked,
		ride.VendorID,
		ride.BaseCost,
		ride.AdditionalStops,
		time.Now(),
		ride.ID,
	)
	if err != nil {
		return apperrors.Infrastructure("failed to update ride", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Infrastructure("failed to update ride", err)
	}
	if affected == 0 {
		return apperrors.NotFound("ride", ride.ID)
	}

	return nil
}

// DeleteRide removes the ride and its passenger rows in one transaction
func (r *RideRepo) DeleteRide(ctx context.Context, rideID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Infrastructure("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ride_passengers WHERE ride_id = $1`, rideID); err != nil {
		return apperrors.Infrastructure("failed to delete ride passengers", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM rides WHERE id = $1`, rideID)
	if err != nil {
		return apperrors.Infrastructure("failed to delete ride", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Infrastructure("failed to delete ride", err)
	}
	if affected == 0 {
		return apperrors.NotFound("ride", rideID)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Infrastructure("failed to commit ride deletion", err)
	}

	return nil
}
