package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LightboxFormula is a persisted per-style override of the lightbox
// surface-area formula. Styles without a row use the built-in default
// formula. Formula text is validated before it is ever written here.
type LightboxFormula struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StyleID   int            `gorm:"not null;uniqueIndex" json:"style_id"`
	Formula   string         `gorm:"type:text;not null" json:"formula"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new formula override
func (f *LightboxFormula) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LightboxFormula model
func (LightboxFormula) TableName() string {
	return "lightbox_formulas"
}
