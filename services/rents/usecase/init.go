package usecase

import (
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/rents"
)

// RentUC implements the rent usecase interface
type RentUC struct {
	cfg      *models.Config
	rentRepo rents.RentRepo
	rentGW   rents.RentGW
}

// NewRentUC creates a new rent usecase instance
func NewRentUC(cfg *models.Config, rentRepo rents.RentRepo, rentGW rents.RentGW) *RentUC {
	return &RentUC{
		cfg:      cfg,
		rentRepo: rentRepo,
		rentGW:   rentGW,
	}
}
