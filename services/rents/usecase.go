package rents

import (
	"context"

	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rentride/rentride/services/rents RentUC

// RentUC defines the interface for rental request business logic
type RentUC interface {
	CreateRent(ctx context.Context, rent *models.Rent) (*models.Rent, error)
	GetRentByID(ctx context.Context, id uuid.UUID) (*models.Rent, error)
	ListRents(ctx context.Context, q models.ListQuery) ([]*models.Rent, models.Meta, error)
	UpdateRent(ctx context.Context, id uuid.UUID, upd *models.RentUpdate) (*models.Rent, error)
	DeleteRent(ctx context.Context, id uuid.UUID) error
}
