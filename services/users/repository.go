package users

import (
	"context"
	"time"

	"costera/internal/pkg/models"
)

// UserRepo defines the interface for user data access operations
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByHandle(ctx context.Context, handle string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// ResetTokenRepo defines the interface for password reset token storage
type ResetTokenRepo interface {
	StoreToken(ctx context.Context, token string, userID int64, ttl time.Duration) error
	// ConsumeToken returns the user id for a live token and invalidates it.
	ConsumeToken(ctx context.Context, token string) (int64, error)
}
