// Package format renders prices and measurements for display and export.
package format

import (
	"math"
	"strconv"
	"strings"
)

// PHP formats an amount in Philippine pesos with thousands separators,
// rounded to the nearest whole peso, e.g. 51840 -> "₱51,840".
func PHP(amount float64) string {
	neg := amount < 0
	whole := int64(math.Round(math.Abs(amount)))

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₱")

	rem := len(digits) % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
		if len(digits) > rem {
			b.WriteByte(',')
		}
	}
	for i := rem; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// Area formats a surface area in square meters with four decimal places.
func Area(sqm float64) string {
	return strconv.FormatFloat(sqm, 'f', 4, 64) + " sqm"
}
