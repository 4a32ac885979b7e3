package usecase

import (
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/cars"
)

// CarUC implements the car usecase interface
type CarUC struct {
	cfg     *models.Config
	carRepo cars.CarRepo
}

// NewCarUC creates a new car usecase instance
func NewCarUC(cfg *models.Config, carRepo cars.CarRepo) *CarUC {
	return &CarUC{
		cfg:     cfg,
		carRepo: carRepo,
	}
}
