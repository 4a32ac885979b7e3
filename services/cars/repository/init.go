package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/rentride/rentride/internal/pkg/models"
)

// CarRepo implements the car repository interface
type CarRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewCarRepo creates a new car repository instance
func NewCarRepo(cfg *models.Config, db *sqlx.DB) *CarRepo {
	return &CarRepo{
		cfg: cfg,
		db:  db,
	}
}
