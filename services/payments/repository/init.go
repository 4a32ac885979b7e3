package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/rentride/rentride/internal/pkg/models"
)

// PaymentRepo implements the payment repository interface
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepo creates a new payment repository instance
func NewPaymentRepo(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}
