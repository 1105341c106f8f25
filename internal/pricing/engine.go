package pricing

import (
	"github.com/haussigns/signquote-api/internal/domain/catalog"
)

// AreaFunc maps lightbox dimensions in centimeters to a printable area in
// m². Implementations come from the formula engine; the default models the
// five luminous faces of a wall-mounted box.
type AreaFunc func(w, h, d float64) (float64, error)

// DefaultLightboxArea is the built-in five-face surface formula, equivalent
// to the default formula text in the catalog.
func DefaultLightboxArea(w, h, d float64) (float64, error) {
	return (w*h + 2*d*h + 2*w*d) / 10000, nil
}

// Engine computes price breakdowns against a resolved price book and a
// table of per-style lightbox area functions. It holds no mutable state;
// settings changes are applied by swapping the whole engine.
type Engine struct {
	book  catalog.PriceBook
	areas map[int]AreaFunc
}

// NewEngine creates a pricing engine. Styles missing from areas fall back
// to the default five-face formula.
func NewEngine(book catalog.PriceBook, areas map[int]AreaFunc) *Engine {
	return &Engine{book: book, areas: areas}
}

// Book returns the resolved price book the engine prices against.
func (e *Engine) Book() catalog.PriceBook {
	return e.book
}

// Breakdown is the priced result for a single letter run, logo, or panel.
type Breakdown struct {
	Area          float64 `json:"area"`
	BasePrice     float64 `json:"base_price"`
	MarkupPercent int     `json:"markup_percent"`
	Markup        float64 `json:"markup"`
	FinalPrice    float64 `json:"final_price"`
}

// LightboxBreakdown is the quantity-aware priced result for lightboxes.
type LightboxBreakdown struct {
	Area          float64 `json:"area"`
	Quantity      int     `json:"quantity"`
	MarkupPercent int     `json:"markup_percent"`
	Markup        float64 `json:"markup"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
}

func applyMarkup(basePrice float64) Breakdown {
	percent := MarkupPercent(basePrice)
	markup := basePrice * float64(percent) / 100
	return Breakdown{
		BasePrice:     basePrice,
		MarkupPercent: percent,
		Markup:        markup,
		FinalPrice:    basePrice + markup,
	}
}

// LetterPrice prices a run of dimensional letters. A positive height below
// the type's minimum is rejected; a zero height or count yields a zero
// breakdown. Types absent from the catalog price to zero.
func (e *Engine) LetterPrice(heightCm float64, charCount int, typeID string) (Breakdown, error) {
	if err := CheckLetterHeight(typeID, heightCm); err != nil {
		return Breakdown{}, err
	}

	area := LetterArea(heightCm, charCount)
	typeInfo, ok := catalog.LetterTypeByID(typeID)
	if !ok {
		return Breakdown{}, nil
	}
	unitPrice, _ := e.book.ForKey(typeInfo.PriceKey)

	b := applyMarkup(area * unitPrice)
	b.Area = area
	return b, nil
}

// LogoPrice prices a logo rectangle using the letter type's unit price.
// Logos deliberately carry no small-order markup.
func (e *Engine) LogoPrice(lengthCm, widthCm float64, typeID string) Breakdown {
	area := RectangleArea(lengthCm, widthCm)
	typeInfo, ok := catalog.LetterTypeByID(typeID)
	if !ok {
		return Breakdown{}
	}
	unitPrice, _ := e.book.ForKey(typeInfo.PriceKey)

	base := area * unitPrice
	return Breakdown{Area: area, BasePrice: base, FinalPrice: base}
}

// PanelPrice prices an aluminium background panel. No markup, as with logos.
func (e *Engine) PanelPrice(lengthCm, widthCm float64) Breakdown {
	area := RectangleArea(lengthCm, widthCm)
	base := area * e.book.AluPanel
	return Breakdown{Area: area, BasePrice: base, FinalPrice: base}
}

// SizeCustom selects user-entered dimensions instead of a preset.
const SizeCustom = "custom"

// ResolveLightboxDimensions picks the dimensions for a style and size
// selection. For custom sizes the guard against the style's S preset is
// applied once all three dimensions are positive.
func ResolveLightboxDimensions(styleID int, sizeKey string, custom *catalog.Dimensions) (catalog.Dimensions, error) {
	style, ok := catalog.StyleByID(styleID)
	if !ok {
		return catalog.Dimensions{}, &UnknownStyleError{StyleID: styleID}
	}

	if sizeKey == SizeCustom {
		if custom == nil {
			return catalog.Dimensions{}, nil
		}
		if err := CheckCustomSize(style, *custom); err != nil {
			return catalog.Dimensions{}, err
		}
		return *custom, nil
	}

	preset, ok := style.Sizes[sizeKey]
	if !ok {
		return catalog.Dimensions{}, nil
	}
	return preset.Dimensions, nil
}

// CheckCustomSize validates custom dimensions against the style's smallest
// preset. The guard only arms once all three dimensions are positive;
// partially entered sizes are treated as not yet specified.
func CheckCustomSize(style catalog.LightboxStyle, dims catalog.Dimensions) error {
	if dims.Width <= 0 || dims.Height <= 0 || dims.Depth <= 0 {
		return nil
	}
	min := style.Sizes["S"].Dimensions
	if dims.Width < min.Width || dims.Height < min.Height || dims.Depth < min.Depth {
		return &CustomSizeTooSmallError{StyleID: style.ID, Min: min}
	}
	return nil
}

// LightboxArea computes the printable area for a style and resolved
// dimensions through the style's active formula.
func (e *Engine) LightboxArea(styleID int, dims catalog.Dimensions) (float64, error) {
	fn := e.areas[styleID]
	if fn == nil {
		fn = DefaultLightboxArea
	}
	return fn(dims.Width, dims.Height, dims.Depth)
}

// LightboxPrice prices a lightbox order. The markup tier is decided by the
// base total across the whole quantity, not the per-unit price. A
// non-positive quantity is computed as one; callers validate input upfront.
func (e *Engine) LightboxPrice(styleID int, sizeKey string, quantity int, custom *catalog.Dimensions) (LightboxBreakdown, error) {
	dims, err := ResolveLightboxDimensions(styleID, sizeKey, custom)
	if err != nil {
		return LightboxBreakdown{}, err
	}

	area, err := e.LightboxArea(styleID, dims)
	if err != nil {
		return LightboxBreakdown{}, err
	}

	if quantity <= 0 {
		quantity = 1
	}

	baseUnit := area * e.book.Lightbox
	baseTotal := baseUnit * float64(quantity)
	percent := MarkupPercent(baseTotal)
	markup := baseTotal * float64(percent) / 100
	total := baseTotal + markup

	return LightboxBreakdown{
		Area:          area,
		Quantity:      quantity,
		MarkupPercent: percent,
		Markup:        markup,
		UnitPrice:     total / float64(quantity),
		TotalPrice:    total,
	}, nil
}
