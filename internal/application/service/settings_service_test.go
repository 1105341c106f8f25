package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/haussigns/signquote-api/internal/domain/catalog"
	"github.com/haussigns/signquote-api/pkg/apperror"
)

func TestSettingsLoadDefaults(t *testing.T) {
	svc, _, _ := newTestSettings(t)

	book := svc.Engine().Book()
	if book.LetterIlluminated != 20000 {
		t.Errorf("LetterIlluminated = %v, want 20000", book.LetterIlluminated)
	}
	if book.AnchorMultiplier != 2.5 {
		t.Errorf("AnchorMultiplier = %v, want 2.5", book.AnchorMultiplier)
	}
}

func TestUpdatePricesOverridesAndFallsBack(t *testing.T) {
	svc, _, _ := newTestSettings(t)
	ctx := context.Background()

	out, err := svc.UpdatePrices(ctx, &UpdatePricesInput{
		LetterIlluminated: 25000,
		Lightbox:          12000,
	})
	if err != nil {
		t.Fatalf("UpdatePrices: %v", err)
	}

	if out.Prices.LetterIlluminated != 25000 {
		t.Errorf("LetterIlluminated = %v, want 25000", out.Prices.LetterIlluminated)
	}
	if out.Prices.Lightbox != 12000 {
		t.Errorf("Lightbox = %v, want 12000", out.Prices.Lightbox)
	}
	// Untouched keys stay on the defaults.
	if out.Prices.LetterCutOut != 5500 {
		t.Errorf("LetterCutOut = %v, want 5500", out.Prices.LetterCutOut)
	}
	if out.Defaults.LetterIlluminated != 20000 {
		t.Errorf("Defaults.LetterIlluminated = %v, want 20000", out.Defaults.LetterIlluminated)
	}
}

func TestUpdatePricesSwapsEngine(t *testing.T) {
	svc, _, _ := newTestSettings(t)
	ctx := context.Background()

	before := svc.Engine()
	if _, err := svc.UpdatePrices(ctx, &UpdatePricesInput{Lightbox: 9000}); err != nil {
		t.Fatalf("UpdatePrices: %v", err)
	}
	after := svc.Engine()

	if before == after {
		t.Fatal("expected a new engine after a price update")
	}
	if before.Book().Lightbox != 10000 {
		t.Errorf("old engine book changed: Lightbox = %v", before.Book().Lightbox)
	}
	if after.Book().Lightbox != 9000 {
		t.Errorf("new engine Lightbox = %v, want 9000", after.Book().Lightbox)
	}
}

func TestResetPricesRestoresDefaults(t *testing.T) {
	svc, settingsRepo, _ := newTestSettings(t)
	ctx := context.Background()

	if _, err := svc.UpdatePrices(ctx, &UpdatePricesInput{AluPanel: 3000}); err != nil {
		t.Fatalf("UpdatePrices: %v", err)
	}
	out, err := svc.ResetPrices(ctx)
	if err != nil {
		t.Fatalf("ResetPrices: %v", err)
	}

	if out.Prices != catalog.DefaultPriceBook() {
		t.Errorf("prices after reset = %+v, want defaults", out.Prices)
	}
	if settingsRepo.settings != nil {
		t.Error("settings row should be deleted on reset")
	}
}

func TestUpdateFormulaRejectsInvalidText(t *testing.T) {
	svc, _, formulaRepo := newTestSettings(t)
	ctx := context.Background()

	_, err := svc.UpdateFormula(ctx, 1, "w ** 2")
	if err == nil {
		t.Fatal("expected an error for invalid formula text")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error type = %T, want *apperror.AppError", err)
	}
	if appErr.Code != http.StatusUnprocessableEntity {
		t.Errorf("code = %d, want 422", appErr.Code)
	}
	if len(formulaRepo.formulas) != 0 {
		t.Error("invalid formula must not be persisted")
	}
}

func TestUpdateFormulaChangesPricing(t *testing.T) {
	svc, _, _ := newTestSettings(t)
	ctx := context.Background()

	out, err := svc.UpdateFormula(ctx, 1, "w * h / 10000")
	if err != nil {
		t.Fatalf("UpdateFormula: %v", err)
	}
	if out.IsDefault {
		t.Error("IsDefault = true after saving an override")
	}
	// Sample 100×50×10 through w*h/10000 is 0.5.
	if !nearlyEqual(out.SampleArea, 0.5) {
		t.Errorf("SampleArea = %v, want 0.5", out.SampleArea)
	}

	area, err := svc.Engine().LightboxArea(1, catalog.Dimensions{Width: 100, Height: 50, Depth: 10})
	if err != nil {
		t.Fatalf("LightboxArea: %v", err)
	}
	if !nearlyEqual(area, 0.5) {
		t.Errorf("area = %v, want 0.5", area)
	}

	// Other styles keep the default five-face formula.
	area, err = svc.Engine().LightboxArea(2, catalog.Dimensions{Width: 100, Height: 50, Depth: 10})
	if err != nil {
		t.Fatalf("LightboxArea: %v", err)
	}
	if !nearlyEqual(area, (100*50+2*10*50+2*100*10)/10000.0) {
		t.Errorf("style 2 area = %v, want default formula result", area)
	}
}

func TestUpdateFormulaDefaultTextRemovesOverride(t *testing.T) {
	svc, _, formulaRepo := newTestSettings(t)
	ctx := context.Background()

	if _, err := svc.UpdateFormula(ctx, 3, "w * h / 10000"); err != nil {
		t.Fatalf("UpdateFormula: %v", err)
	}
	out, err := svc.UpdateFormula(ctx, 3, catalog.DefaultFormulaText)
	if err != nil {
		t.Fatalf("UpdateFormula with default text: %v", err)
	}

	if !out.IsDefault {
		t.Error("IsDefault = false after restoring the default")
	}
	if _, ok := formulaRepo.formulas[3]; ok {
		t.Error("override row should be removed when the default is saved")
	}
}

func TestUpdateFormulaUnknownStyle(t *testing.T) {
	svc, _, _ := newTestSettings(t)

	_, err := svc.UpdateFormula(context.Background(), 42, "w * h / 10000")
	if err == nil {
		t.Fatal("expected an error for an unknown style")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusNotFound {
		t.Errorf("want a 404 AppError, got %v", err)
	}
}

func TestGetFormulasListsEveryStyle(t *testing.T) {
	svc, _, _ := newTestSettings(t)
	ctx := context.Background()

	if _, err := svc.UpdateFormula(ctx, 5, "w * h / 10000"); err != nil {
		t.Fatalf("UpdateFormula: %v", err)
	}

	formulas, err := svc.GetFormulas(ctx)
	if err != nil {
		t.Fatalf("GetFormulas: %v", err)
	}
	if len(formulas) != len(catalog.LightboxStyles) {
		t.Fatalf("len = %d, want %d", len(formulas), len(catalog.LightboxStyles))
	}
	for _, f := range formulas {
		switch f.StyleID {
		case 5:
			if f.IsDefault {
				t.Error("style 5 should report the override")
			}
		default:
			if !f.IsDefault {
				t.Errorf("style %d should report the default", f.StyleID)
			}
			if f.Formula != catalog.DefaultFormulaText {
				t.Errorf("style %d formula = %q", f.StyleID, f.Formula)
			}
		}
	}
}

func TestResetFormulas(t *testing.T) {
	svc, _, formulaRepo := newTestSettings(t)
	ctx := context.Background()

	if _, err := svc.UpdateFormula(ctx, 1, "w * h / 10000"); err != nil {
		t.Fatalf("UpdateFormula: %v", err)
	}
	if err := svc.ResetFormulas(ctx); err != nil {
		t.Fatalf("ResetFormulas: %v", err)
	}

	if len(formulaRepo.formulas) != 0 {
		t.Error("all overrides should be removed")
	}
	area, err := svc.Engine().LightboxArea(1, catalog.Dimensions{Width: 100, Height: 50, Depth: 10})
	if err != nil {
		t.Fatalf("LightboxArea: %v", err)
	}
	if !nearlyEqual(area, (100*50+2*10*50+2*100*10)/10000.0) {
		t.Errorf("area = %v, want default formula result", area)
	}
}

func TestTestFormula(t *testing.T) {
	svc, _, _ := newTestSettings(t)

	result := svc.TestFormula("w * h / 10000")
	if !result.Valid || !nearlyEqual(result.Value, 0.5) {
		t.Errorf("result = %+v, want valid 0.5", result)
	}
	if result = svc.TestFormula("while(true){}"); result.Valid {
		t.Error("loop construct must not validate")
	}
}
