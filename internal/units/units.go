// Package units provides shared constants, validation and conversion for
// the length and angle units accepted in calibration files
package units

import "math"

// Length unit constants
const (
	M  = "m"
	CM = "cm"
	MM = "mm"
)

// Angle unit constants
const (
	RAD = "rad"
	DEG = "deg"
)

// ValidLengthUnits contains all valid length unit values
var ValidLengthUnits = []string{M, CM, MM}

// ValidAngleUnits contains all valid angle unit values
var ValidAngleUnits = []string{RAD, DEG}

// IsValidLength checks if the given unit is in the list of valid length units
func IsValidLength(unit string) bool {
	for _, validUnit := range ValidLengthUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// IsValidAngle checks if the given unit is in the list of valid angle units
func IsValidAngle(unit string) bool {
	for _, validUnit := range ValidAngleUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidLengthUnitsString returns a comma-separated string of valid length units for error messages
func GetValidLengthUnitsString() string {
	return "m, cm, mm"
}

// GetValidAngleUnitsString returns a comma-separated string of valid angle units for error messages
func GetValidAngleUnitsString() string {
	return "rad, deg"
}

// ConvertLength converts a length in the given units to metres
func ConvertLength(v float64, unit string) float64 {
	switch unit {
	case M:
		return v
	case CM:
		return v / 100
	case MM:
		return v / 1000
	default:
		return v
	}
}

// ConvertAngle converts an angle in the given units to radians
func ConvertAngle(v float64, unit string) float64 {
	switch unit {
	case RAD:
		return v
	case DEG:
		return v * math.Pi / 180
	default:
		return v
	}
}
