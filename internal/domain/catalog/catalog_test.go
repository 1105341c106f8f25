package catalog

import (
	"math"
	"testing"
)

func TestDefaultPriceBook(t *testing.T) {
	book := DefaultPriceBook()
	if book.LetterIlluminated != 20000 || book.LetterInox != 45000 {
		t.Fatalf("unexpected defaults: %+v", book)
	}
	if book.AnchorMultiplier != 2.5 {
		t.Fatalf("anchorMultiplier = %v, want 2.5", book.AnchorMultiplier)
	}
}

func TestResolveMergesOverDefaults(t *testing.T) {
	book := Resolve(Overrides{
		KeyLetterIlluminated: 22000,
		KeyLightbox:          12000,
	})
	if book.LetterIlluminated != 22000 {
		t.Fatalf("letterIlluminated = %v, want 22000", book.LetterIlluminated)
	}
	if book.Lightbox != 12000 {
		t.Fatalf("lightbox = %v, want 12000", book.Lightbox)
	}
	// Untouched keys keep their defaults.
	if book.AluPanel != 2000 {
		t.Fatalf("aluPanel = %v, want default 2000", book.AluPanel)
	}
}

func TestResolveIgnoresMalformedOverrides(t *testing.T) {
	book := Resolve(Overrides{
		KeyLetterCutOut:     -5,
		KeyAluPanel:         0,
		KeyLetterInox:       math.NaN(),
		KeyAnchorMultiplier: math.Inf(1),
	})
	want := DefaultPriceBook()
	if book != want {
		t.Fatalf("malformed overrides leaked into book: %+v", book)
	}

	if got := Resolve(nil); got != want {
		t.Fatalf("nil overrides should resolve to defaults, got %+v", got)
	}
}

func TestLetterTypeCatalog(t *testing.T) {
	if len(LetterTypes) != 4 {
		t.Fatalf("expected 4 letter types, got %d", len(LetterTypes))
	}
	book := DefaultPriceBook()
	for _, lt := range LetterTypes {
		price, ok := book.ForKey(lt.PriceKey)
		if !ok || price <= 0 {
			t.Errorf("price key %q for type %q does not resolve", lt.PriceKey, lt.ID)
		}
	}
	if _, ok := LetterTypeByID("granite"); ok {
		t.Fatal("unknown type should not resolve")
	}
}

func TestLightboxStyleTable(t *testing.T) {
	ids := StyleIDs()
	if len(ids) != 9 {
		t.Fatalf("expected 9 styles, got %d", len(ids))
	}
	for _, id := range ids {
		style, ok := StyleByID(id)
		if !ok {
			t.Fatalf("style %d missing", id)
		}
		for _, key := range []string{"S", "M", "L"} {
			preset, ok := style.Sizes[key]
			if !ok {
				t.Errorf("style %d has no %s preset", id, key)
				continue
			}
			if preset.Width <= 0 || preset.Height <= 0 || preset.Depth <= 0 {
				t.Errorf("style %d %s preset has non-positive dimension: %+v", id, key, preset)
			}
		}
	}

	cube, _ := StyleByID(4)
	if cube.Sizes["S"].Width != 20 || cube.Sizes["S"].Height != 20 || cube.Sizes["S"].Depth != 20 {
		t.Fatalf("style 4 S preset changed: %+v", cube.Sizes["S"])
	}
}
