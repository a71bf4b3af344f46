// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/occupancy-schedule/pkg/constants"
)

var displayScale = math.Pow(10, constants.DisplayPrecision)

// Round rounds a value to DisplayPrecision decimals so aggregate fractions
// such as 1/3 render and compare consistently.
func Round(val float64) float64 {
	return math.Round(val*displayScale) / displayScale
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.ValueTolerance
}

// withinTolerance checks if two values are within a specified tolerance
func withinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsOccupied reports whether a step value is the occupied value.
func IsOccupied(val float64) bool {
	return withinTolerance(val, constants.OccupiedValue, constants.ValueTolerance)
}

// Fraction returns part/total, or 0 when total is zero.
func Fraction(part, total float64) float64 {
	if IsZero(total) {
		return 0
	}
	return part / total
}
