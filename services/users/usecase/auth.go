package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"costera/internal/pkg/apperrors"
	jwtpkg "costera/internal/pkg/jwt"
	"costera/internal/pkg/logger"
	"costera/internal/pkg/models"
)

const minPasswordLength = 8

// Register creates a new user with a bcrypt-hashed credential and issues a token
func (u *UserUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	handle := strings.ToLower(strings.TrimSpace(req.Handle))
	if handle == "" {
		return nil, apperrors.Validation("handle", "handle is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.Validation("password", "password must be at least 8 characters")
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, apperrors.Validation("display_name", "display name is required")
	}

	if existing, err := u.userRepo.GetUserByHandle(ctx, handle); err == nil && existing != nil {
		return nil, apperrors.Validation("handle", "handle is already taken")
	} else if err != nil && !apperrors.IsKind(err, apperrors.KindNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Infrastructure("failed to hash password", err)
	}

	user := &models.User{
		Handle:        handle,
		PasswordHash:  string(hash),
		DisplayName:   strings.TrimSpace(req.DisplayName),
		Whatsapp:      strings.TrimSpace(req.Whatsapp),
		Phone:         strings.TrimSpace(req.Phone),
		PaymentHandle: strings.TrimSpace(req.PaymentHandle),
		IsVendor:      req.IsVendor,
		CompanyName:   strings.TrimSpace(req.CompanyName),
	}
	created, err := u.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info("user registered",
		logger.Int64("user_id", created.ID),
		logger.String("handle", created.Handle),
		logger.Bool("is_vendor", created.IsVendor))

	return u.issueToken(created)
}

// Login verifies the password and issues a token
func (u *UserUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	handle := strings.ToLower(strings.TrimSpace(req.Handle))
	if handle == "" || req.Password == "" {
		return nil, apperrors.Validation("handle", "handle and password are required")
	}

	user, err := u.userRepo.GetUserByHandle(ctx, handle)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	return u.issueToken(user)
}

// RequestPasswordReset issues a short-lived reset token for the handle.
// The token is returned to the delivery layer; there is no in-band delivery.
func (u *UserUC) RequestPasswordReset(ctx context.Context, handle string) (string, error) {
	handle = strings.ToLower(strings.TrimSpace(handle))
	if handle == "" {
		return "", apperrors.Validation("handle", "handle is required")
	}

	user, err := u.userRepo.GetUserByHandle(ctx, handle)
	if err != nil {
		return "", err
	}

	token := uuid.New().String()
	ttl := time.Duration(u.cfg.Auth.ResetTokenTTL) * time.Minute
	if err := u.resetRepo.StoreToken(ctx, token, user.ID, ttl); err != nil {
		return "", err
	}

	logger.Info("password reset requested",
		logger.Int64("user_id", user.ID),
		logger.String("handle", user.Handle))

	return token, nil
}

// ConfirmPasswordReset consumes the token and replaces the password hash
func (u *UserUC) ConfirmPasswordReset(ctx context.Context, req models.ResetConfirm) error {
	if req.Token == "" {
		return apperrors.Validation("token", "token is required")
	}
	if len(req.NewPassword) < minPasswordLength {
		return apperrors.Validation("new_password", "password must be at least 8 characters")
	}

	userID, err := u.resetRepo.ConsumeToken(ctx, req.Token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Infrastructure("failed to hash password", err)
	}
	if err := u.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	logger.Info("password reset completed", logger.Int64("user_id", userID))
	return nil
}

func (u *UserUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user, u.cfg.JWT)
	if err != nil {
		return nil, apperrors.Infrastructure("failed to generate token", err)
	}
	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		IsVendor:  user.IsVendor,
		ExpiresAt: expiresAt,
	}, nil
}
