package repository

import (
	"context"

	"github.com/haussigns/signquote-api/internal/domain/entity"
)

// SettingsRepository defines the interface for price settings data access.
// The settings table holds at most one row; Get returns nil when prices
// have never been overridden.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.PriceSettings, error)
	Save(ctx context.Context, settings *entity.PriceSettings) error
	Reset(ctx context.Context) error
}

// FormulaRepository defines the interface for lightbox formula overrides.
type FormulaRepository interface {
	List(ctx context.Context) ([]entity.LightboxFormula, error)
	GetByStyleID(ctx context.Context, styleID int) (*entity.LightboxFormula, error)
	Upsert(ctx context.Context, styleID int, formulaText string) error
	DeleteByStyleID(ctx context.Context, styleID int) error
	DeleteAll(ctx context.Context) error
}
