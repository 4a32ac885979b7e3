package stripe

import "math"

// ToMinorUnits converts a major-unit amount to the gateway's minor-unit
// representation, rounding to the nearest cent.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ToMajorUnits converts a gateway minor-unit amount back to major units.
func ToMajorUnits(minor int64) float64 {
	return float64(minor) / 100
}
