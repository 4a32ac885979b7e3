package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/models"
)

const paymentColumns = `id, rent_id, transaction_id, amount, status, payment_gateway_data, created_at, updated_at`

// GetRentForPayment loads a rent with its bids for payment pricing
func (r *PaymentRepo) GetRentForPayment(ctx context.Context, rentID uuid.UUID) (*models.Rent, error) {
	var rent models.Rent
	query := `SELECT id, user_id, car_id, rent_status, starting_point, destination, created_at, updated_at FROM rents WHERE id = $1`
	if err := r.db.GetContext(ctx, &rent, query, rentID); err != nil {
		return nil, apperrors.FromPostgres(err, "rent")
	}

	bids := []*models.Bid{}
	bidQuery := `
		SELECT id, rent_id, driver_id, bid_amount, bid_status, driver_location, created_at, updated_at
		FROM bids
		WHERE rent_id = $1
	`
	if err := r.db.SelectContext(ctx, &bids, bidQuery, rentID); err != nil {
		return nil, apperrors.FromPostgres(err, "bid")
	}
	rent.Bids = bids

	return &rent, nil
}

// GetPaymentByRentID retrieves the payment for a rent, if any
func (r *PaymentRepo) GetPaymentByRentID(ctx context.Context, rentID uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE rent_id = $1`, paymentColumns)
	if err := r.db.GetContext(ctx, &payment, query, rentID); err != nil {
		return nil, apperrors.FromPostgres(err, "payment")
	}
	return &payment, nil
}

// GetPaymentByTransactionID retrieves a payment by gateway transaction id
func (r *PaymentRepo) GetPaymentByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE transaction_id = $1`, paymentColumns)
	if err := r.db.GetContext(ctx, &payment, query, transactionID); err != nil {
		return nil, apperrors.FromPostgres(err, "payment")
	}
	return &payment, nil
}

// CreatePaymentTx inserts the payment and moves its rent to ongoing. Both
// writes commit together or not at all.
func (r *PaymentRepo) CreatePaymentTx(ctx context.Context, payment *models.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return apperrors.FromPostgres(err, "payment")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO payments (id, rent_id, transaction_id, amount, status, payment_gateway_data, created_at, updated_at)
		VALUES (:id, :rent_id, :transaction_id, :amount, :status, :payment_gateway_data, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, payment); err != nil {
		return apperrors.FromPostgres(err, "payment")
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE rents SET rent_status = 'ongoing', updated_at = NOW() WHERE id = $1 AND rent_status = 'pending'`,
		payment.RentID); err != nil {
		return apperrors.FromPostgres(err, "rent")
	}

	if err := tx.Commit(); err != nil {
		return apperrors.FromPostgres(err, "payment")
	}

	return nil
}
