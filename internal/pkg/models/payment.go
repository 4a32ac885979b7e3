package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PaymentStatusSucceeded mirrors the gateway's terminal success status.
const PaymentStatusSucceeded = "succeeded"

// Payment represents a confirmed charge against a rent. It is keyed
// independently by the gateway's transaction id so that duplicate
// confirmations stay idempotent.
type Payment struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	RentID        uuid.UUID       `json:"rent_id" db:"rent_id"`
	TransactionID string          `json:"transaction_id" db:"transaction_id"`
	Amount        float64         `json:"amount" db:"amount"`
	Status        string          `json:"status" db:"status"`
	GatewayData   json.RawMessage `json:"payment_gateway_data,omitempty" db:"payment_gateway_data"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// PaymentIntentRequest is the payload for creating a payment intent
type PaymentIntentRequest struct {
	RentID uuid.UUID `json:"rent_id"`
}

// PaymentIntentResult carries gateway data the payer's client needs to
// complete authorization. No local payment record exists at this point.
type PaymentIntentResult struct {
	ClientSecret  string  `json:"client_secret"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`
}

// PaymentConfirmRequest is the payload for confirming a payment
type PaymentConfirmRequest struct {
	RentID        uuid.UUID `json:"rent_id"`
	TransactionID string    `json:"transaction_id"`
}

// PaymentSucceededEvent is published after a payment record is persisted
type PaymentSucceededEvent struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	RentID        uuid.UUID `json:"rent_id"`
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
}
