package usecase

import (
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/bids"
)

// BidUC implements the bid usecase interface
type BidUC struct {
	cfg     *models.Config
	bidRepo bids.BidRepo
	bidGW   bids.BidGW
}

// NewBidUC creates a new bid usecase instance
func NewBidUC(cfg *models.Config, bidRepo bids.BidRepo, bidGW bids.BidGW) *BidUC {
	return &BidUC{
		cfg:     cfg,
		bidRepo: bidRepo,
		bidGW:   bidGW,
	}
}
