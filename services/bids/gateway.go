package bids

import (
	"context"

	"github.com/rentride/rentride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rentride/rentride/services/bids BidGW

// BidGW defines the interface for bid event publishing
type BidGW interface {
	PublishBidAccepted(ctx context.Context, bid *models.Bid) error
}
