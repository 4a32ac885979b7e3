package payments

import (
	"context"

	"github.com/rentride/rentride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rentride/rentride/services/payments PaymentUC

// PaymentUC defines the interface for payment business logic
type PaymentUC interface {
	CreatePaymentIntent(ctx context.Context, req *models.PaymentIntentRequest) (*models.PaymentIntentResult, error)
	ConfirmPayment(ctx context.Context, req *models.PaymentConfirmRequest) (*models.Payment, error)
}
