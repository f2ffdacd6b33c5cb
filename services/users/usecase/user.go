package usecase

import (
	"context"
	"strings"

	"costera/internal/pkg/apperrors"
	"costera/internal/pkg/models"
)

// GetProfile returns the user's own profile
func (u *UserUC) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile applies the non-nil fields of the request to the profile
func (u *UserUC) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if strings.TrimSpace(*req.DisplayName) == "" {
			return nil, apperrors.Validation("display_name", "display name cannot be empty")
		}
		user.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.Whatsapp != nil {
		user.Whatsapp = strings.TrimSpace(*req.Whatsapp)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.PaymentHandle != nil {
		user.PaymentHandle = strings.TrimSpace(*req.PaymentHandle)
	}
	if req.CompanyName != nil {
		user.CompanyName = strings.TrimSpace(*req.CompanyName)
	}

	if err := u.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
