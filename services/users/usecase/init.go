package usecase

import (
	"costera/internal/pkg/models"
	"costera/services/users"
)

// UserUC implements the users.UserUC interface
type UserUC struct {
	cfg       *models.Config
	userRepo  users.UserRepo
	resetRepo users.ResetTokenRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo, resetRepo users.ResetTokenRepo) *UserUC {
	return &UserUC{
		cfg:       cfg,
		userRepo:  userRepo,
		resetRepo: resetRepo,
	}
}
