package gateway

import (
	"context"
	"time"

	"github.com/rentride/rentride/internal/pkg/models"
	natspkg "github.com/rentride/rentride/internal/pkg/nats"
	"github.com/rentride/rentride/services/bids"
)

// BidGW handles NATS publishing for bid events
type BidGW struct {
	natsClient *natspkg.Client
}

// NewBidGW creates a new bid gateway
func NewBidGW(client *natspkg.Client) bids.BidGW {
	return &BidGW{
		natsClient: client,
	}
}

// PublishBidAccepted publishes a bid accepted event to NATS
func (g *BidGW) PublishBidAccepted(ctx context.Context, bid *models.Bid) error {
	event := models.BidAcceptedEvent{
		BidID:      bid.ID,
		RentID:     bid.RentID,
		DriverID:   bid.DriverID,
		BidAmount:  bid.BidAmount,
		AcceptedAt: time.Now(),
	}
	return g.natsClient.PublishJSON(natspkg.SubjectBidAccepted, event)
}
