package repository

import (
	"github.com/jmoiron/sqlx"

	"costera/internal/pkg/models"
)

// RideRepo is the PostgreSQL implementation of rides.RideRepo
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}
