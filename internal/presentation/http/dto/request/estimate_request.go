package request

// DimensionsRequest is a width/height/depth triple in centimeters.
type DimensionsRequest struct {
	Width  float64 `json:"width" binding:"min=0"`
	Height float64 `json:"height" binding:"min=0"`
	Depth  float64 `json:"depth" binding:"min=0"`
}

// LetterEstimateRequest prices a run of dimensional letters
type LetterEstimateRequest struct {
	HeightCm  float64 `json:"height_cm" binding:"min=0"`
	CharCount int     `json:"char_count" binding:"min=0"`
	TypeID    string  `json:"type_id" binding:"required"`
}

// LogoEstimateRequest prices a printed logo rectangle
type LogoEstimateRequest struct {
	LengthCm float64 `json:"length_cm" binding:"min=0"`
	WidthCm  float64 `json:"width_cm" binding:"min=0"`
	TypeID   string  `json:"type_id" binding:"required"`
}

// PanelEstimateRequest prices an aluminium background panel
type PanelEstimateRequest struct {
	LengthCm float64 `json:"length_cm" binding:"min=0"`
	WidthCm  float64 `json:"width_cm" binding:"min=0"`
}

// LightboxEstimateRequest prices a lightbox order
type LightboxEstimateRequest struct {
	StyleID  int                `json:"style_id" binding:"required"`
	Size     string             `json:"size" binding:"required"`
	Quantity int                `json:"quantity"`
	Custom   *DimensionsRequest `json:"custom,omitempty"`
}

// SignageEstimateRequest prices a whole signage configuration
type SignageEstimateRequest struct {
	Letters []LetterEstimateRequest `json:"letters"`
	Logo    *LogoEstimateRequest    `json:"logo,omitempty"`
	Panel   *PanelEstimateRequest   `json:"panel,omitempty"`
}

// ConvertRequest converts a value between inches and centimeters
type ConvertRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from" binding:"required"`
}
