package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/rentride/rentride/internal/pkg/models"
)

// RentRepo implements the rent repository interface
type RentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRentRepo creates a new rent repository instance
func NewRentRepo(cfg *models.Config, db *sqlx.DB) *RentRepo {
	return &RentRepo{
		cfg: cfg,
		db:  db,
	}
}
