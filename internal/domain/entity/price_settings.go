package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/haussigns/signquote-api/internal/domain/catalog"
	"gorm.io/gorm"
)

// PriceSettings is the single persisted row of price overrides. Zero-valued
// columns mean "no override"; the catalog resolves them to the built-in
// defaults. Resetting prices deletes the row.
type PriceSettings struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	LetterIlluminated    float64        `gorm:"type:decimal(12,2);default:0" json:"letterIlluminated"`
	LetterNonIlluminated float64        `gorm:"type:decimal(12,2);default:0" json:"letterNonIlluminated"`
	LetterCutOut         float64        `gorm:"type:decimal(12,2);default:0" json:"letterCutOut"`
	LetterInox           float64        `gorm:"type:decimal(12,2);default:0" json:"letterInox"`
	AluPanel             float64        `gorm:"type:decimal(12,2);default:0" json:"aluPanel"`
	Lightbox             float64        `gorm:"type:decimal(12,2);default:0" json:"lightbox"`
	AnchorMultiplier     float64        `gorm:"type:decimal(6,2);default:0" json:"anchorMultiplier"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating new price settings
func (p *PriceSettings) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PriceSettings model
func (PriceSettings) TableName() string {
	return "price_settings"
}

// Overrides converts the stored row into the catalog's override map. Zero
// columns are omitted so the resolver falls back to defaults for them.
func (p *PriceSettings) Overrides() catalog.Overrides {
	o := catalog.Overrides{}
	put := func(key string, v float64) {
		if v > 0 {
			o[key] = v
		}
	}
	put(catalog.KeyLetterIlluminated, p.LetterIlluminated)
	put(catalog.KeyLetterNonIlluminated, p.LetterNonIlluminated)
	put(catalog.KeyLetterCutOut, p.LetterCutOut)
	put(catalog.KeyLetterInox, p.LetterInox)
	put(catalog.KeyAluPanel, p.AluPanel)
	put(catalog.KeyLightbox, p.Lightbox)
	put(catalog.KeyAnchorMultiplier, p.AnchorMultiplier)
	return o
}
