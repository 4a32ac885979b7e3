package bids

import (
	"context"

	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rentride/rentride/services/bids BidUC

// BidUC defines the interface for bid business logic
type BidUC interface {
	CreateBid(ctx context.Context, bid *models.Bid) (*models.Bid, error)
	GetBidByID(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	ListBids(ctx context.Context, q models.ListQuery) ([]*models.Bid, models.Meta, error)
	UpdateBid(ctx context.Context, id uuid.UUID, upd *models.BidUpdate) (*models.Bid, error)
	DeleteBid(ctx context.Context, id uuid.UUID) error
	AcceptBid(ctx context.Context, id uuid.UUID) (*models.Bid, error)
}
