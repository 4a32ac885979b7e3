package models

import (
	"time"

	"github.com/google/uuid"
)

// BidStatus represents the state of a driver's bid
type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

// Valid reports whether s is a recognized bid status.
func (s BidStatus) Valid() bool {
	switch s {
	case BidStatusPending, BidStatusAccepted, BidStatusRejected:
		return true
	}
	return false
}

// Bid represents a driver's offer against a rental request
type Bid struct {
	ID             uuid.UUID `json:"id" db:"id"`
	RentID         uuid.UUID `json:"rent_id" db:"rent_id"`
	DriverID       uuid.UUID `json:"driver_id" db:"driver_id"`
	BidAmount      float64   `json:"bid_amount" db:"bid_amount"`
	BidStatus      BidStatus `json:"bid_status" db:"bid_status"`
	DriverLocation string    `json:"driver_location" db:"driver_location"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	Rent   *Rent `json:"rent,omitempty" db:"-"`
	Driver *User `json:"driver,omitempty" db:"-"`
}

// BidUpdate carries a partial update to a bid record
type BidUpdate struct {
	BidAmount      *float64   `json:"bid_amount"`
	BidStatus      *BidStatus `json:"bid_status"`
	DriverLocation *string    `json:"driver_location"`
}

// BidAcceptedEvent is published when a bid is accepted and its rent moves to ongoing
type BidAcceptedEvent struct {
	BidID      uuid.UUID `json:"bid_id"`
	RentID     uuid.UUID `json:"rent_id"`
	DriverID   uuid.UUID `json:"driver_id"`
	BidAmount  float64   `json:"bid_amount"`
	AcceptedAt time.Time `json:"accepted_at"`
}
