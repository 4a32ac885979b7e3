package gateway

import (
	"context"
	"time"

	"github.com/rentride/rentride/internal/pkg/models"
	natspkg "github.com/rentride/rentride/internal/pkg/nats"
	"github.com/rentride/rentride/services/payments"
)

// PaymentEventGW handles NATS publishing for payment events
type PaymentEventGW struct {
	natsClient *natspkg.Client
}

// NewPaymentEventGW creates a new payment event gateway
func NewPaymentEventGW(client *natspkg.Client) payments.PaymentEventGW {
	return &PaymentEventGW{
		natsClient: client,
	}
}

// PublishPaymentSucceeded publishes a payment succeeded event to NATS
func (g *PaymentEventGW) PublishPaymentSucceeded(ctx context.Context, payment *models.Payment) error {
	event := models.PaymentSucceededEvent{
		PaymentID:     payment.ID,
		RentID:        payment.RentID,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		ConfirmedAt:   time.Now(),
	}
	return g.natsClient.PublishJSON(natspkg.SubjectPaymentSucceeded, event)
}
