package users

import (
	"context"

	"costera/internal/pkg/models"
)

// UserUC defines the interface for user business logic
type UserUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (*models.User, error)
	RequestPasswordReset(ctx context.Context, handle string) (string, error)
	ConfirmPasswordReset(ctx context.Context, req models.ResetConfirm) error
}
