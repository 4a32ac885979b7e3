package cars

import (
	"context"

	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rentride/rentride/services/cars CarRepo

// CarRepo defines the interface for car data access operations
type CarRepo interface {
	CreateCar(ctx context.Context, car *models.Car) error
	GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error)
	ListCars(ctx context.Context, q models.ListQuery) ([]*models.Car, int, error)
	UpdateCar(ctx context.Context, id uuid.UUID, upd *models.CarUpdate) (*models.Car, error)
	DeleteCar(ctx context.Context, id uuid.UUID) error
}
