package pricing

// letterAreaCoefficient approximates a character silhouette as a fraction of
// the square of its height, a standard sign-industry heuristic.
const letterAreaCoefficient = 0.9

// LetterArea computes the billable area in m² for a run of dimensional
// letters: 0.9 × (height in meters)² per character. Zero height or count
// means "not yet specified" and yields zero.
func LetterArea(heightCm float64, charCount int) float64 {
	if heightCm <= 0 || charCount <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return letterAreaCoefficient * heightM * heightM * float64(charCount)
}

// RectangleArea computes the area in m² of a logo or panel given its side
// lengths in centimeters. Zero if either dimension is missing.
func RectangleArea(lengthCm, widthCm float64) float64 {
	if lengthCm <= 0 || widthCm <= 0 {
		return 0
	}
	return lengthCm * widthCm / 10000
}
