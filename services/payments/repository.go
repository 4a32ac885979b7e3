package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rentride/rentride/services/payments PaymentRepo

// PaymentRepo defines the interface for payment data access operations
type PaymentRepo interface {
	// GetRentForPayment loads the rent with its bids, so the workflows can
	// find the accepted bid that prices the payment.
	GetRentForPayment(ctx context.Context, rentID uuid.UUID) (*models.Rent, error)

	GetPaymentByRentID(ctx context.Context, rentID uuid.UUID) (*models.Payment, error)
	GetPaymentByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)

	// CreatePaymentTx inserts the payment and moves the rent to ongoing in a
	// single transaction.
	CreatePaymentTx(ctx context.Context, payment *models.Payment) error
}
