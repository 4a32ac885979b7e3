package models

import (
	"time"

	"github.com/google/uuid"
)

// Car fuel types
const (
	FuelOctane   = "Octane"
	FuelHybrid   = "Hybrid"
	FuelElectric = "Electric"
	FuelDiesel   = "Diesel"
	FuelPetrol   = "Petrol"
)

// Car conditions
const (
	ConditionNew  = "New"
	ConditionUsed = "Used"
)

// Car represents a vehicle listing in the catalog
type Car struct {
	ID                uuid.UUID `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Brand             string    `json:"brand" db:"brand"`
	Model             string    `json:"model" db:"model"`
	Image             string    `json:"image" db:"image"`
	Rating            *float64  `json:"rating,omitempty" db:"rating"`
	FuelType          string    `json:"fuel_type" db:"fuel_type"`
	PassengerCapacity int       `json:"passenger_capacity" db:"passenger_capacity"`
	Color             string    `json:"color" db:"color"`
	Condition         string    `json:"condition" db:"condition"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`

	Rents []*Rent `json:"rents,omitempty" db:"-"`
}

// ValidFuelType reports whether ft is a recognized fuel type.
func ValidFuelType(ft string) bool {
	switch ft {
	case FuelOctane, FuelHybrid, FuelElectric, FuelDiesel, FuelPetrol:
		return true
	}
	return false
}

// ValidCondition reports whether cond is a recognized car condition.
func ValidCondition(cond string) bool {
	return cond == ConditionNew || cond == ConditionUsed
}

// CarUpdate carries a partial update to a car listing
type CarUpdate struct {
	Name              *string  `json:"name"`
	Brand             *string  `json:"brand"`
	Model             *string  `json:"model"`
	Image             *string  `json:"image"`
	Rating            *float64 `json:"rating"`
	FuelType          *string  `json:"fuel_type"`
	PassengerCapacity *int     `json:"passenger_capacity"`
	Color             *string  `json:"color"`
	Condition         *string  `json:"condition"`
}
