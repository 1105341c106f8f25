package pricing

// Minimum billable letter heights in centimeters. Anything shorter cannot be
// fabricated cleanly and must not be priced.
const (
	MinLetterHeight        = 15 // front lit, all lit and everything else
	MinLetterHeightBackLit = 10
	MinLetterHeight3D      = 8 // 3D non-LED letters
)

// MinHeightFor returns the minimum billable height for a letter type ID.
func MinHeightFor(typeID string) float64 {
	switch typeID {
	case "3d":
		return MinLetterHeight3D
	case "backLit":
		return MinLetterHeightBackLit
	default:
		return MinLetterHeight
	}
}

// CheckLetterHeight validates a letter height against the type's minimum.
// A zero height is "not yet specified" and passes; a positive height below
// the minimum returns a BelowMinimumHeightError.
func CheckLetterHeight(typeID string, heightCm float64) error {
	min := MinHeightFor(typeID)
	if heightCm > 0 && heightCm < min {
		return &BelowMinimumHeightError{TypeID: typeID, HeightCm: heightCm, MinCm: min}
	}
	return nil
}
