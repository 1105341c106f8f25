package catalog

import "math"

// Price keys used in the persisted price settings and the resolved price book.
const (
	KeyLetterIlluminated    = "letterIlluminated"
	KeyLetterNonIlluminated = "letterNonIlluminated"
	KeyLetterCutOut         = "letterCutOut"
	KeyLetterInox           = "letterInox"
	KeyAluPanel             = "aluPanel"
	KeyLightbox             = "lightbox"
	KeyAnchorMultiplier     = "anchorMultiplier"
)

// ProductType maps a letter/material type to its price lookup key.
type ProductType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PriceKey string `json:"price_key"`
}

// LetterTypes is the fixed set of dimensional letter types offered.
var LetterTypes = []ProductType{
	{ID: "illuminated", Name: "Illuminated dimensional letter sign", PriceKey: KeyLetterIlluminated},
	{ID: "nonIlluminated", Name: "Non-illuminated dimensional letter sign", PriceKey: KeyLetterNonIlluminated},
	{ID: "cutOut", Name: "Cut out letter", PriceKey: KeyLetterCutOut},
	{ID: "inox", Name: "Stainless Steel (Inox) - Anchor Price", PriceKey: KeyLetterInox},
}

// LetterTypeByID looks up a letter type by its ID.
func LetterTypeByID(id string) (ProductType, bool) {
	for _, t := range LetterTypes {
		if t.ID == id {
			return t, true
		}
	}
	return ProductType{}, false
}

// PriceBook is a fully resolved price table, PHP per m². Every field is
// guaranteed positive after Resolve.
type PriceBook struct {
	LetterIlluminated    float64 `json:"letterIlluminated"`
	LetterNonIlluminated float64 `json:"letterNonIlluminated"`
	LetterCutOut         float64 `json:"letterCutOut"`
	LetterInox           float64 `json:"letterInox"`
	AluPanel             float64 `json:"aluPanel"`
	Lightbox             float64 `json:"lightbox"`
	AnchorMultiplier     float64 `json:"anchorMultiplier"`
}

// DefaultPriceBook returns the built-in default prices.
func DefaultPriceBook() PriceBook {
	return PriceBook{
		LetterIlluminated:    20000,
		LetterNonIlluminated: 5500,
		LetterCutOut:         5500,
		LetterInox:           45000,
		AluPanel:             2000,
		Lightbox:             10000,
		AnchorMultiplier:     2.5,
	}
}

// Overrides holds persisted price overrides keyed by price key. Absent or
// malformed entries fall back to the defaults during Resolve.
type Overrides map[string]float64

// Resolve merges overrides over the defaults in a single step, producing a
// fully populated book. Non-positive, NaN, or infinite overrides are ignored.
func Resolve(overrides Overrides) PriceBook {
	book := DefaultPriceBook()
	if overrides == nil {
		return book
	}
	apply := func(key string, dst *float64) {
		v, ok := overrides[key]
		if !ok || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
		*dst = v
	}
	apply(KeyLetterIlluminated, &book.LetterIlluminated)
	apply(KeyLetterNonIlluminated, &book.LetterNonIlluminated)
	apply(KeyLetterCutOut, &book.LetterCutOut)
	apply(KeyLetterInox, &book.LetterInox)
	apply(KeyAluPanel, &book.AluPanel)
	apply(KeyLightbox, &book.Lightbox)
	apply(KeyAnchorMultiplier, &book.AnchorMultiplier)
	return book
}

// ForKey returns the price for a price key from the resolved book.
func (b PriceBook) ForKey(key string) (float64, bool) {
	switch key {
	case KeyLetterIlluminated:
		return b.LetterIlluminated, true
	case KeyLetterNonIlluminated:
		return b.LetterNonIlluminated, true
	case KeyLetterCutOut:
		return b.LetterCutOut, true
	case KeyLetterInox:
		return b.LetterInox, true
	case KeyAluPanel:
		return b.AluPanel, true
	case KeyLightbox:
		return b.Lightbox, true
	case KeyAnchorMultiplier:
		return b.AnchorMultiplier, true
	}
	return 0, false
}
