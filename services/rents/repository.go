package rents

import (
	"context"

	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rentride/rentride/services/rents RentRepo

// RentRepo defines the interface for rent data access operations
type RentRepo interface {
	CreateRent(ctx context.Context, rent *models.Rent) error
	GetRentByID(ctx context.Context, id uuid.UUID) (*models.Rent, error)
	ListRents(ctx context.Context, q models.ListQuery) ([]*models.Rent, int, error)
	UpdateRent(ctx context.Context, id uuid.UUID, upd *models.RentUpdate) (*models.Rent, error)
	DeleteRent(ctx context.Context, id uuid.UUID) error
}
