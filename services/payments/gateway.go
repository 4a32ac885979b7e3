package payments

import (
	"context"

	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/internal/pkg/stripe"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rentride/rentride/services/payments PaymentGW,PaymentEventGW

// PaymentGW defines the interface to the payment gateway. It is injected
// into the usecase so tests and alternative providers can swap it out.
type PaymentGW interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*stripe.Intent, error)
	GetIntent(ctx context.Context, id string) (*stripe.Intent, error)
	ConfirmIntent(ctx context.Context, id, paymentMethod string) (*stripe.Intent, error)
}

// PaymentEventGW defines the interface for payment event publishing
type PaymentEventGW interface {
	PublishPaymentSucceeded(ctx context.Context, payment *models.Payment) error
}
