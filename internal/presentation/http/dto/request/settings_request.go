package request

// UpdatePricesRequest carries the full price table from the settings form.
// Omitted or non-positive fields clear the override for that key.
type UpdatePricesRequest struct {
	LetterIlluminated    float64 `json:"letterIlluminated" binding:"min=0"`
	LetterNonIlluminated float64 `json:"letterNonIlluminated" binding:"min=0"`
	LetterCutOut         float64 `json:"letterCutOut" binding:"min=0"`
	LetterInox           float64 `json:"letterInox" binding:"min=0"`
	AluPanel             float64 `json:"aluPanel" binding:"min=0"`
	Lightbox             float64 `json:"lightbox" binding:"min=0"`
	AnchorMultiplier     float64 `json:"anchorMultiplier" binding:"min=0"`
}

// UpdateFormulaRequest replaces the area formula for one lightbox style.
// The empty string restores the default formula.
type UpdateFormulaRequest struct {
	Formula string `json:"formula"`
}

// TestFormulaRequest evaluates formula text without persisting it
type TestFormulaRequest struct {
	Formula string `json:"formula" binding:"required"`
}
