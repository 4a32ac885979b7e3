package usecase

import (
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/payments"
)

// PaymentUC implements the payment usecase interface
type PaymentUC struct {
	cfg         *models.Config
	paymentRepo payments.PaymentRepo
	paymentGW   payments.PaymentGW
	eventGW     payments.PaymentEventGW
}

// NewPaymentUC creates a new payment usecase instance.
func NewPaymentUC(cfg *models.Config, paymentRepo payments.PaymentRepo, paymentGW payments.PaymentGW, eventGW payments.PaymentEventGW) *PaymentUC {
	return &PaymentUC{
		cfg:         cfg,
		paymentRepo: paymentRepo,
		paymentGW:   paymentGW,
		eventGW:     eventGW,
	}
}
