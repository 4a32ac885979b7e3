package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/internal/pkg/stripe"
)

// CreatePaymentIntent opens a gateway intent for the rent's accepted bid
// amount. No local payment row is written until the charge is confirmed.
func (uc *PaymentUC) CreatePaymentIntent(ctx context.Context, req *models.PaymentIntentRequest) (*models.PaymentIntentResult, error) {
	rent, err := uc.paymentRepo.GetRentForPayment(ctx, req.RentID)
	if err != nil {
		return nil, err
	}

	if existing, err := uc.paymentRepo.GetPaymentByRentID(ctx, rent.ID); err == nil {
		if existing.Status == models.PaymentStatusSucceeded {
			return nil, apperrors.NewConflict("rent is already paid for")
		}
	} else if appErr, ok := apperrors.As(err); !ok || appErr.Type != apperrors.TypeNotFound {
		return nil, err
	}

	accepted := rent.AcceptedBid()
	if accepted == nil {
		return nil, apperrors.NewBadRequest("rent has no accepted bid to pay for")
	}

	amountMinor := stripe.ToMinorUnits(accepted.BidAmount)
	intent, err := uc.paymentGW.CreateIntent(ctx, amountMinor, uc.cfg.Stripe.Currency, map[string]string{
		"rent_id": rent.ID.String(),
		"user_id": rent.UserID.String(),
	})
	if err != nil {
		return nil, gatewayError(err)
	}

	logger.Info("payment intent created",
		logger.String("rent_id", rent.ID.String()),
		logger.String("transaction_id", intent.ID),
		logger.Float64("amount", accepted.BidAmount))

	return &models.PaymentIntentResult{
		ClientSecret:  intent.ClientSecret,
		Amount:        accepted.BidAmount,
		TransactionID: intent.ID,
	}, nil
}

// ConfirmPayment settles a gateway intent. The gateway's status is the
// source of truth; on success the payment row and the rent's move to
// ongoing commit in one transaction. Confirming the same transaction twice
// returns the stored payment.
func (uc *PaymentUC) ConfirmPayment(ctx context.Context, req *models.PaymentConfirmRequest) (*models.Payment, error) {
	if req.TransactionID == "" {
		return nil, apperrors.NewValidation("invalid confirmation payload").
			WithSource("transaction_id", "must not be empty")
	}

	if existing, err := uc.paymentRepo.GetPaymentByTransactionID(ctx, req.TransactionID); err == nil {
		return existing, nil
	} else if appErr, ok := apperrors.As(err); !ok || appErr.Type != apperrors.TypeNotFound {
		return nil, err
	}

	intent, err := uc.paymentGW.GetIntent(ctx, req.TransactionID)
	if err != nil {
		return nil, gatewayError(err)
	}

	if intent.Status == stripe.StatusRequiresPaymentMethod {
		// Server-side confirmation path used by integration tests; the
		// payment method comes from configuration.
		intent, err = uc.paymentGW.ConfirmIntent(ctx, intent.ID, uc.cfg.Stripe.TestPaymentMethod)
		if err != nil {
			return nil, gatewayError(err)
		}
	}

	if intent.Status != stripe.StatusSucceeded {
		return nil, apperrors.NewBadRequest(fmt.Sprintf("payment status is %s", intent.Status))
	}

	payment := &models.Payment{
		RentID:        req.RentID,
		TransactionID: intent.ID,
		Amount:        stripe.ToMajorUnits(intent.Amount),
		Status:        models.PaymentStatusSucceeded,
		GatewayData:   intent.Raw,
	}

	if err := uc.paymentRepo.CreatePaymentTx(ctx, payment); err != nil {
		return nil, err
	}

	if err := uc.eventGW.PublishPaymentSucceeded(ctx, payment); err != nil {
		// The payment is already committed; a failed publish must not undo it.
		logger.Warn("failed to publish payment succeeded event",
			logger.ErrorField(err),
			logger.String("payment_id", payment.ID.String()))
	}

	logger.Info("payment confirmed",
		logger.String("payment_id", payment.ID.String()),
		logger.String("rent_id", payment.RentID.String()),
		logger.String("transaction_id", payment.TransactionID),
		logger.Float64("amount", payment.Amount))

	return payment, nil
}

// gatewayError classifies a gateway failure. Definitive answers from the
// gateway (declines, invalid requests) become BadRequest; everything else
// is a retryable GatewayError.
func gatewayError(err error) error {
	var apiErr *stripe.APIError
	if errors.As(err, &apiErr) {
		return apperrors.NewBadRequest(apiErr.Message)
	}
	return apperrors.NewGateway("payment gateway unavailable", err)
}
