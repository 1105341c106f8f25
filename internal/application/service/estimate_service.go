package service

import (
	"context"
	"errors"

	"github.com/haussigns/signquote-api/internal/domain/catalog"
	"github.com/haussigns/signquote-api/internal/pricing"
	"github.com/haussigns/signquote-api/pkg/apperror"
)

// EstimateService prices signage configurations without persisting
// anything. It always prices against the settings service's current engine.
type EstimateService struct {
	settings *SettingsService
}

// NewEstimateService creates a new estimate service
func NewEstimateService(settings *SettingsService) *EstimateService {
	return &EstimateService{settings: settings}
}

// toAppError translates pricing domain errors into HTTP-mappable errors.
func toAppError(err error) error {
	var belowMin *pricing.BelowMinimumHeightError
	var tooSmall *pricing.CustomSizeTooSmallError
	var unknownStyle *pricing.UnknownStyleError
	switch {
	case errors.As(err, &belowMin):
		return apperror.NewUnprocessableError(belowMin.Error())
	case errors.As(err, &tooSmall):
		return apperror.NewUnprocessableError(tooSmall.Error())
	case errors.As(err, &unknownStyle):
		return apperror.NewNotFoundError("Lightbox style")
	}
	return err
}

// LetterInput describes one run of dimensional letters.
type LetterInput struct {
	HeightCm  float64 `json:"height_cm"`
	CharCount int     `json:"char_count"`
	TypeID    string  `json:"type_id"`
}

// PriceLetter prices a run of dimensional letters.
func (s *EstimateService) PriceLetter(ctx context.Context, input *LetterInput) (*pricing.Breakdown, error) {
	b, err := s.settings.Engine().LetterPrice(input.HeightCm, input.CharCount, input.TypeID)
	if err != nil {
		return nil, toAppError(err)
	}
	return &b, nil
}

// LogoInput describes a printed logo rectangle.
type LogoInput struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	TypeID   string  `json:"type_id"`
}

// PriceLogo prices a logo at the letter type's rate. Logos carry no markup.
func (s *EstimateService) PriceLogo(ctx context.Context, input *LogoInput) (*pricing.Breakdown, error) {
	b := s.settings.Engine().LogoPrice(input.LengthCm, input.WidthCm, input.TypeID)
	return &b, nil
}

// PanelInput describes an aluminium background panel.
type PanelInput struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
}

// PricePanel prices an aluminium background panel.
func (s *EstimateService) PricePanel(ctx context.Context, input *PanelInput) (*pricing.Breakdown, error) {
	b := s.settings.Engine().PanelPrice(input.LengthCm, input.WidthCm)
	return &b, nil
}

// LightboxInput describes a lightbox order: a catalog style, a preset size
// key or "custom" with explicit dimensions, and a quantity.
type LightboxInput struct {
	StyleID  int                 `json:"style_id"`
	SizeKey  string              `json:"size"`
	Quantity int                 `json:"quantity"`
	Custom   *catalog.Dimensions `json:"custom,omitempty"`
}

// PriceLightbox prices a lightbox order.
func (s *EstimateService) PriceLightbox(ctx context.Context, input *LightboxInput) (*pricing.LightboxBreakdown, error) {
	b, err := s.settings.Engine().LightboxPrice(input.StyleID, input.SizeKey, input.Quantity, input.Custom)
	if err != nil {
		return nil, toAppError(err)
	}
	return &b, nil
}

// SignageInput is a complete signage configuration: any number of letter
// runs plus an optional logo and an optional background panel.
type SignageInput struct {
	Letters []LetterInput `json:"letters"`
	Logo    *LogoInput    `json:"logo,omitempty"`
	Panel   *PanelInput   `json:"panel,omitempty"`
}

// SignageSummary is the priced result for a whole signage configuration.
type SignageSummary struct {
	Letters []pricing.Breakdown `json:"letters"`
	Logo    *pricing.Breakdown  `json:"logo,omitempty"`
	Panel   *pricing.Breakdown  `json:"panel,omitempty"`
	Total   float64             `json:"total"`
}

// PriceSignage prices a whole signage configuration in one call. Any letter
// run that fails validation fails the whole estimate; use a zero height to
// leave a row unpriced.
func (s *EstimateService) PriceSignage(ctx context.Context, input *SignageInput) (*SignageSummary, error) {
	engine := s.settings.Engine()
	summary := &SignageSummary{Letters: make([]pricing.Breakdown, 0, len(input.Letters))}

	for _, line := range input.Letters {
		b, err := engine.LetterPrice(line.HeightCm, line.CharCount, line.TypeID)
		if err != nil {
			return nil, toAppError(err)
		}
		summary.Letters = append(summary.Letters, b)
		summary.Total += b.FinalPrice
	}

	if input.Logo != nil {
		b := engine.LogoPrice(input.Logo.LengthCm, input.Logo.WidthCm, input.Logo.TypeID)
		summary.Logo = &b
		summary.Total += b.FinalPrice
	}

	if input.Panel != nil {
		b := engine.PanelPrice(input.Panel.LengthCm, input.Panel.WidthCm)
		summary.Panel = &b
		summary.Total += b.FinalPrice
	}

	return summary, nil
}

// ConvertInput is a unit-converter request.
type ConvertInput struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
}

// ConvertOutput is a unit-converter result, rounded to one decimal.
type ConvertOutput struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Convert converts between inches and centimeters.
func (s *EstimateService) Convert(input *ConvertInput) (*ConvertOutput, error) {
	switch input.From {
	case "in", "inch", "inches":
		return &ConvertOutput{Value: pricing.InchesToCm(input.Value), Unit: "cm"}, nil
	case "cm":
		return &ConvertOutput{Value: pricing.CmToInches(input.Value), Unit: "in"}, nil
	}
	return nil, apperror.NewBadRequestError("Unit must be \"in\" or \"cm\"")
}

// CatalogOutput is the static product catalog for client pickers: letter
// types, lightbox styles, and the active price book.
type CatalogOutput struct {
	LetterTypes    []catalog.ProductType   `json:"letter_types"`
	LightboxStyles []catalog.LightboxStyle `json:"lightbox_styles"`
	Prices         catalog.PriceBook       `json:"prices"`
}

// Catalog returns the product catalog with the active prices.
func (s *EstimateService) Catalog(ctx context.Context) *CatalogOutput {
	styles := make([]catalog.LightboxStyle, 0, len(catalog.LightboxStyles))
	for _, id := range catalog.StyleIDs() {
		style, _ := catalog.StyleByID(id)
		styles = append(styles, style)
	}
	return &CatalogOutput{
		LetterTypes:    catalog.LetterTypes,
		LightboxStyles: styles,
		Prices:         s.settings.Engine().Book(),
	}
}
