// Package units provides shared constants and conversions for speed units.
package units

// Unit constants
const (
	KMH   = "kmh"
	MPS   = "mps"
	MPH   = "mph"
	Knots = "knots"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{KMH, MPS, MPH, Knots}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "kmh, mps, mph, knots"
}

// KnotsToKmh converts a speed over ground in knots to km/h.
func KnotsToKmh(knots float64) float64 {
	return knots * 1.852
}

// ConvertSpeed converts a speed from km/h to the target units.
// Recorded speeds are carried in km/h throughout.
func ConvertSpeed(speedKmh float64, targetUnits string) float64 {
	switch targetUnits {
	case MPS:
		return speedKmh / 3.6
	case MPH:
		return speedKmh / 1.609344
	case Knots:
		return speedKmh / 1.852
	case KMH:
		return speedKmh
	default:
		return speedKmh
	}
}
