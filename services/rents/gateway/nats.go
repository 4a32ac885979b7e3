package gateway

import (
	"context"

	"github.com/rentride/rentride/internal/pkg/models"
	natspkg "github.com/rentride/rentride/internal/pkg/nats"
	"github.com/rentride/rentride/services/rents"
)

// RentGW handles NATS publishing for rent events
type RentGW struct {
	natsClient *natspkg.Client
}

// NewRentGW creates a new rent gateway
func NewRentGW(client *natspkg.Client) rents.RentGW {
	return &RentGW{
		natsClient: client,
	}
}

// PublishRentCreated publishes a rent created event to NATS
func (g *RentGW) PublishRentCreated(ctx context.Context, rent *models.Rent) error {
	event := models.RentCreatedEvent{
		RentID:        rent.ID,
		UserID:        rent.UserID,
		CarID:         rent.CarID,
		StartingPoint: rent.StartingPoint,
		Destination:   rent.Destination,
		CreatedAt:     rent.CreatedAt,
	}
	return g.natsClient.PublishJSON(natspkg.SubjectRentCreated, event)
}
