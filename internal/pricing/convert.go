package pricing

import "math"

// InchToCm is the conversion constant between the two dimension units the
// input form accepts.
const InchToCm = 2.54

// CmToInches converts centimeters to inches, rounded to one decimal.
func CmToInches(cm float64) float64 {
	if cm == 0 || math.IsNaN(cm) {
		return 0
	}
	return math.Round(cm/InchToCm*10) / 10
}

// InchesToCm converts inches to centimeters, rounded to one decimal.
func InchesToCm(inches float64) float64 {
	if inches == 0 || math.IsNaN(inches) {
		return 0
	}
	return math.Round(inches*InchToCm*10) / 10
}
