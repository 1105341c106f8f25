package pricing

// Small-order markup tier boundaries in PHP. Orders below the lower bound
// carry 30%, orders below the upper bound 20%, larger orders none.
const (
	markupLowerBound = 3000
	markupUpperBound = 5000
)

// MarkupPercent returns the small-order markup percentage for a base price.
// The tiers are closed on the left: exactly 3000 is 20%, exactly 5000 is 0%.
func MarkupPercent(basePrice float64) int {
	switch {
	case basePrice <= 0:
		return 0
	case basePrice < markupLowerBound:
		return 30
	case basePrice < markupUpperBound:
		return 20
	default:
		return 0
	}
}
