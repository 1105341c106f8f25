package pricing

import (
	"fmt"

	"github.com/haussigns/signquote-api/internal/domain/catalog"
)

// BelowMinimumHeightError reports a positive letter height under the type's
// minimum billable height. A zero height is not an error, only heights in
// (0, min) are.
type BelowMinimumHeightError struct {
	TypeID   string
	HeightCm float64
	MinCm    float64
}

func (e *BelowMinimumHeightError) Error() string {
	return fmt.Sprintf("letter height %.1fcm is below the %.0fcm minimum for this letter type", e.HeightCm, e.MinCm)
}

// CustomSizeTooSmallError reports custom lightbox dimensions under the
// style's smallest fabricable preset.
type CustomSizeTooSmallError struct {
	StyleID int
	Min     catalog.Dimensions
}

func (e *CustomSizeTooSmallError) Error() string {
	return fmt.Sprintf("custom size must be at least %.0f×%.0f×%.0fcm for this style",
		e.Min.Width, e.Min.Height, e.Min.Depth)
}

// UnknownStyleError reports a lightbox style ID outside the catalog.
type UnknownStyleError struct {
	StyleID int
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown lightbox style %d", e.StyleID)
}
