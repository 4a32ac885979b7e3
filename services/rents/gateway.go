package rents

import (
	"context"

	"github.com/rentride/rentride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rentride/rentride/services/rents RentGW

// RentGW defines the interface for rent event publishing
type RentGW interface {
	PublishRentCreated(ctx context.Context, rent *models.Rent) error
}
