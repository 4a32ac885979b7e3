package bids

import (
	"context"

	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rentride/rentride/services/bids BidRepo

// BidRepo defines the interface for bid data access operations
type BidRepo interface {
	CreateBid(ctx context.Context, bid *models.Bid) error
	GetBidByID(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	ListBids(ctx context.Context, q models.ListQuery) ([]*models.Bid, int, error)
	UpdateBid(ctx context.Context, id uuid.UUID, upd *models.BidUpdate) (*models.Bid, error)
	DeleteBid(ctx context.Context, id uuid.UUID) error

	// RentBidState returns the rent's lifecycle status and whether any of its
	// bids has already been accepted.
	RentBidState(ctx context.Context, rentID uuid.UUID) (models.RentStatus, bool, error)

	// AcceptBid atomically accepts the bid, rejects its pending siblings and
	// moves the rent to ongoing. All of it commits or none of it does.
	AcceptBid(ctx context.Context, id uuid.UUID) (*models.Bid, error)
}
