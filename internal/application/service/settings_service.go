package service

import (
	"context"
	"sync"

	"github.com/haussigns/signquote-api/internal/domain/catalog"
	"github.com/haussigns/signquote-api/internal/domain/entity"
	"github.com/haussigns/signquote-api/internal/domain/repository"
	"github.com/haussigns/signquote-api/internal/formula"
	"github.com/haussigns/signquote-api/internal/pricing"
	"github.com/haussigns/signquote-api/pkg/apperror"
)

// SettingsService manages price overrides and lightbox formula overrides,
// and owns the live pricing engine. Every settings change rebuilds the
// engine from persisted state and swaps it in whole, so concurrent
// estimates always price against a consistent snapshot.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	formulaRepo  repository.FormulaRepository

	mu     sync.RWMutex
	engine *pricing.Engine
}

// NewSettingsService creates a new settings service. Call Load before
// serving requests.
func NewSettingsService(settingsRepo repository.SettingsRepository, formulaRepo repository.FormulaRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		formulaRepo:  formulaRepo,
	}
}

// Load builds the pricing engine from persisted settings. It is called at
// startup and after every settings change.
func (s *SettingsService) Load(ctx context.Context) error {
	engine, err := s.buildEngine(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.engine = engine
	s.mu.Unlock()
	return nil
}

// Engine returns the current pricing engine snapshot.
func (s *SettingsService) Engine() *pricing.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

func (s *SettingsService) buildEngine(ctx context.Context) (*pricing.Engine, error) {
	var overrides catalog.Overrides
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		overrides = settings.Overrides()
	}
	book := catalog.Resolve(overrides)

	formulas, err := s.formulaRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	areas := make(map[int]pricing.AreaFunc, len(formulas))
	for _, f := range formulas {
		expr, err := formula.Parse(f.Formula)
		if err != nil {
			// A row that no longer parses is skipped; the style falls
			// back to the default formula instead of blocking startup.
			continue
		}
		areas[f.StyleID] = expr.Eval
	}

	return pricing.NewEngine(book, areas), nil
}

// PricesOutput presents the active price book alongside the defaults so
// clients can show which prices are overridden.
type PricesOutput struct {
	Prices   catalog.PriceBook `json:"prices"`
	Defaults catalog.PriceBook `json:"defaults"`
}

// GetPrices returns the active resolved prices and the built-in defaults.
func (s *SettingsService) GetPrices(ctx context.Context) (*PricesOutput, error) {
	return &PricesOutput{
		Prices:   s.Engine().Book(),
		Defaults: catalog.DefaultPriceBook(),
	}, nil
}

// UpdatePricesInput carries the full price table from the settings form.
// Non-positive values clear the override for that key.
type UpdatePricesInput struct {
	LetterIlluminated    float64
	LetterNonIlluminated float64
	LetterCutOut         float64
	LetterInox           float64
	AluPanel             float64
	Lightbox             float64
	AnchorMultiplier     float64
}

// UpdatePrices persists the price overrides and rebuilds the engine.
func (s *SettingsService) UpdatePrices(ctx context.Context, input *UpdatePricesInput) (*PricesOutput, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.PriceSettings{}
	}

	clamp := func(v float64) float64 {
		if v <= 0 {
			return 0
		}
		return v
	}
	settings.LetterIlluminated = clamp(input.LetterIlluminated)
	settings.LetterNonIlluminated = clamp(input.LetterNonIlluminated)
	settings.LetterCutOut = clamp(input.LetterCutOut)
	settings.LetterInox = clamp(input.LetterInox)
	settings.AluPanel = clamp(input.AluPanel)
	settings.Lightbox = clamp(input.Lightbox)
	settings.AnchorMultiplier = clamp(input.AnchorMultiplier)

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s.GetPrices(ctx)
}

// ResetPrices removes all price overrides and rebuilds the engine with
// default prices.
func (s *SettingsService) ResetPrices(ctx context.Context) (*PricesOutput, error) {
	if err := s.settingsRepo.Reset(ctx); err != nil {
		return nil, err
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s.GetPrices(ctx)
}

// FormulaOutput describes the active area formula for one lightbox style.
type FormulaOutput struct {
	StyleID     int     `json:"style_id"`
	StyleName   string  `json:"style_name"`
	Formula     string  `json:"formula"`
	IsDefault   bool    `json:"is_default"`
	SampleArea  float64 `json:"sample_area"`
	SampleError string  `json:"sample_error,omitempty"`
}

// GetFormulas returns the active formula for every lightbox style, with a
// sample evaluation so the settings page can preview each one.
func (s *SettingsService) GetFormulas(ctx context.Context) ([]FormulaOutput, error) {
	overrides, err := s.formulaRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byStyle := make(map[int]string, len(overrides))
	for _, f := range overrides {
		byStyle[f.StyleID] = f.Formula
	}

	out := make([]FormulaOutput, 0, len(catalog.LightboxStyles))
	for _, id := range catalog.StyleIDs() {
		style, _ := catalog.StyleByID(id)
		text, overridden := byStyle[id]
		if !overridden {
			text = catalog.DefaultFormulaText
		}

		result := formula.Check(text)
		item := FormulaOutput{
			StyleID:    id,
			StyleName:  style.Name,
			Formula:    text,
			IsDefault:  !overridden,
			SampleArea: result.Value,
		}
		if !result.Valid {
			item.SampleError = result.Error
		}
		out = append(out, item)
	}
	return out, nil
}

// UpdateFormula validates and persists a formula override for a style.
// Saving the default text (or an empty string) removes the override.
func (s *SettingsService) UpdateFormula(ctx context.Context, styleID int, text string) (*FormulaOutput, error) {
	style, ok := catalog.StyleByID(styleID)
	if !ok {
		return nil, apperror.NewNotFoundError("Lightbox style")
	}

	if text == "" || text == catalog.DefaultFormulaText {
		if err := s.formulaRepo.DeleteByStyleID(ctx, styleID); err != nil {
			return nil, err
		}
		if err := s.Load(ctx); err != nil {
			return nil, err
		}
		result := formula.Check(catalog.DefaultFormulaText)
		return &FormulaOutput{
			StyleID:    styleID,
			StyleName:  style.Name,
			Formula:    catalog.DefaultFormulaText,
			IsDefault:  true,
			SampleArea: result.Value,
		}, nil
	}

	result := formula.Check(text)
	if !result.Valid {
		return nil, apperror.NewUnprocessableError("Invalid formula: " + result.Error)
	}

	if err := s.formulaRepo.Upsert(ctx, styleID, text); err != nil {
		return nil, err
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}

	return &FormulaOutput{
		StyleID:    styleID,
		StyleName:  style.Name,
		Formula:    text,
		IsDefault:  false,
		SampleArea: result.Value,
	}, nil
}

// ResetFormulas removes every formula override.
func (s *SettingsService) ResetFormulas(ctx context.Context) error {
	if err := s.formulaRepo.DeleteAll(ctx); err != nil {
		return err
	}
	return s.Load(ctx)
}

// TestFormula evaluates formula text against the sample dimensions without
// persisting anything.
func (s *SettingsService) TestFormula(text string) formula.CheckResult {
	return formula.Check(text)
}
