package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/rentride/rentride/internal/pkg/models"
)

// BidRepo implements the bid repository interface
type BidRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBidRepo creates a new bid repository instance
func NewBidRepo(cfg *models.Config, db *sqlx.DB) *BidRepo {
	return &BidRepo{
		cfg: cfg,
		db:  db,
	}
}
