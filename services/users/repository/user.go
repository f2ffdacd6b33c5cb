package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"costera/internal/pkg/apperrors"
	"costera/internal/pkg/models"
)

// UserRepo is the PostgreSQL implementation of users.UserRepo
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `
	id, handle, password_hash, display_name, whatsapp, phone, payment_handle,
	is_vendor, company_name, created_at, updated_at`

// CreateUser inserts a new user and returns it with its generated id
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (
			handle, password_hash, display_name, whatsapp, phone, payment_handle,
			is_vendor, company_name, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		user.Handle,
		user.PasswordHash,
		user.DisplayName,
		user.Whatsapp,
		user.Phone,
		user.PaymentHandle,
		user.IsVendor,
		user.CompanyName,
		time.Now(),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, apperrors.Infrastructure("failed to create user", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user", userID)
		}
		return nil, apperrors.Infrastructure("failed to get user", err)
	}

	return &user, nil
}

// GetUserByHandle retrieves a user by login handle
func (r *UserRepo) GetUserByHandle(ctx context.Context, handle string) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE handle = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperrors.Error{Kind: apperrors.KindNotFound, Message: "user " + handle + " not found"}
		}
		return nil, apperrors.Infrastructure("failed to get user", err)
	}

	return &user, nil
}

// UpdateUser persists the mutable profile fields
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			display_name = $1,
			whatsapp = $2,
			phone = $3,
			payment_handle = $4,
			company_name = $5,
			updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		user.DisplayName,
		user.Whatsapp,
		user.Phone,
		user.PaymentHandle,
		user.CompanyName,
		time.Now(),
		user.ID,
	)
	if err != nil {
		return apperrors.Infrastructure("failed to update user", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Infrastructure("failed to update user", err)
	}
	if affected == 0 {
		return apperrors.NotFound("user", user.ID)
	}

	return nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepo) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		passwordHash,
		time.Now(),
		userID,
	)
	if err != nil {
		return apperrors.Infrastructure("failed to update password", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Infrastructure("failed to update password", err)
	}
	if affected == 0 {
		return apperrors.NotFound("user", userID)
	}

	return nil
}
