package repository

import (
	"context"
	"errors"

	"github.com/haussigns/signquote-api/internal/domain/entity"
	domainRepo "github.com/haussigns/signquote-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new price settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.PriceSettings, error) {
	var settings entity.PriceSettings
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.PriceSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *settingsRepository) Reset(ctx context.Context) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("1 = 1").
		Delete(&entity.PriceSettings{}).Error
}

type formulaRepository struct {
	db *gorm.DB
}

// NewFormulaRepository creates a new lightbox formula repository
func NewFormulaRepository(db *gorm.DB) domainRepo.FormulaRepository {
	return &formulaRepository{db: db}
}

func (r *formulaRepository) List(ctx context.Context) ([]entity.LightboxFormula, error) {
	var formulas []entity.LightboxFormula
	err := r.db.WithContext(ctx).Order("style_id ASC").Find(&formulas).Error
	return formulas, err
}

func (r *formulaRepository) GetByStyleID(ctx context.Context, styleID int) (*entity.LightboxFormula, error) {
	var f entity.LightboxFormula
	err := r.db.WithContext(ctx).Where("style_id = ?", styleID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *formulaRepository) Upsert(ctx context.Context, styleID int, formulaText string) error {
	existing, err := r.GetByStyleID(ctx, styleID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.WithContext(ctx).Create(&entity.LightboxFormula{
			StyleID: styleID,
			Formula: formulaText,
		}).Error
	}
	existing.Formula = formulaText
	return r.db.WithContext(ctx).Save(existing).Error
}

func (r *formulaRepository) DeleteByStyleID(ctx context.Context, styleID int) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("style_id = ?", styleID).
		Delete(&entity.LightboxFormula{}).Error
}

func (r *formulaRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("1 = 1").
		Delete(&entity.LightboxFormula{}).Error
}
