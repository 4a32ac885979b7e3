package models

import (
	"time"

	"github.com/google/uuid"
)

// RentStatus represents the lifecycle state of a rental request
type RentStatus string

const (
	RentStatusPending   RentStatus = "pending"
	RentStatusOngoing   RentStatus = "ongoing"
	RentStatusCompleted RentStatus = "completed"
)

// rentStatusRank orders the lifecycle: pending -> ongoing -> completed.
var rentStatusRank = map[RentStatus]int{
	RentStatusPending:   0,
	RentStatusOngoing:   1,
	RentStatusCompleted: 2,
}

// Valid reports whether s is a recognized rent status.
func (s RentStatus) Valid() bool {
	_, ok := rentStatusRank[s]
	return ok
}

// CanAdvanceTo reports whether the lifecycle allows moving from s to next.
// The status never regresses.
func (s RentStatus) CanAdvanceTo(next RentStatus) bool {
	cur, ok := rentStatusRank[s]
	if !ok {
		return false
	}
	nxt, ok := rentStatusRank[next]
	if !ok {
		return false
	}
	return nxt >= cur
}

// Rent represents a rental request owned by a user against a car
type Rent struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	CarID         uuid.UUID  `json:"car_id" db:"car_id"`
	RentStatus    RentStatus `json:"rent_status" db:"rent_status"`
	StartingPoint string     `json:"starting_point" db:"starting_point"`
	Destination   string     `json:"destination" db:"destination"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`

	User *User  `json:"user,omitempty" db:"-"`
	Car  *Car   `json:"car,omitempty" db:"-"`
	Bids []*Bid `json:"bids,omitempty" db:"-"`
}

// AcceptedBid returns the accepted bid of the rent, or nil if none exists.
func (r *Rent) AcceptedBid() *Bid {
	for _, b := range r.Bids {
		if b.BidStatus == BidStatusAccepted {
			return b
		}
	}
	return nil
}

// RentCreatedEvent is published when a new rental request enters the marketplace
type RentCreatedEvent struct {
	RentID        uuid.UUID `json:"rent_id"`
	UserID        uuid.UUID `json:"user_id"`
	CarID         uuid.UUID `json:"car_id"`
	StartingPoint string    `json:"starting_point"`
	Destination   string    `json:"destination"`
	CreatedAt     time.Time `json:"created_at"`
}

// RentUpdate carries a partial update to a rent record
type RentUpdate struct {
	StartingPoint *string     `json:"starting_point"`
	Destination   *string     `json:"destination"`
	RentStatus    *RentStatus `json:"rent_status"`
}
