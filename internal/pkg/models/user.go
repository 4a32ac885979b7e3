package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleDriver = "driver"
)

// User represents an account in the directory (customer, driver or admin)
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Role      string    `json:"role" db:"role"`
	Img       *string   `json:"img,omitempty" db:"img"`
	Rating    *float64  `json:"rating,omitempty" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Rents []*Rent `json:"rents,omitempty" db:"-"`
}

// ValidRole reports whether role is one of the recognized user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUser, RoleDriver:
		return true
	}
	return false
}

// UserUpdate carries a partial update to a user record
type UserUpdate struct {
	Name   *string  `json:"name"`
	Email  *string  `json:"email"`
	Img    *string  `json:"img"`
	Rating *float64 `json:"rating"`
	Role   *string  `json:"role"`
}
