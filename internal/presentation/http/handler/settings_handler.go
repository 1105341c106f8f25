package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/haussigns/signquote-api/internal/application/service"
	"github.com/haussigns/signquote-api/internal/presentation/http/dto/request"
	"github.com/haussigns/signquote-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles price and formula settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetPrices returns the active prices and the built-in defaults
// @Summary Get prices
// @Tags settings
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings/prices [get]
func (h *SettingsHandler) GetPrices(c *gin.Context) {
	output, err := h.settingsService.GetPrices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Prices retrieved", output)
}

// UpdatePrices saves the price table
// @Summary Update prices
// @Tags settings
// @Accept json
// @Produce json
// @Param request body request.UpdatePricesRequest true "Price table"
// @Success 200 {object} response.APIResponse
// @Router /settings/prices [put]
func (h *SettingsHandler) UpdatePrices(c *gin.Context) {
	var req request.UpdatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.settingsService.UpdatePrices(c.Request.Context(), &service.UpdatePricesInput{
		LetterIlluminated:    req.LetterIlluminated,
		LetterNonIlluminated: req.LetterNonIlluminated,
		LetterCutOut:         req.LetterCutOut,
		LetterInox:           req.LetterInox,
		AluPanel:             req.AluPanel,
		Lightbox:             req.Lightbox,
		AnchorMultiplier:     req.AnchorMultiplier,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Prices updated", output)
}

// ResetPrices restores the default price table
// @Summary Reset prices
// @Tags settings
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings/prices [delete]
func (h *SettingsHandler) ResetPrices(c *gin.Context) {
	output, err := h.settingsService.ResetPrices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Prices reset to defaults", output)
}

// GetFormulas returns the active formula for every lightbox style
// @Summary Get formulas
// @Tags settings
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings/formulas [get]
func (h *SettingsHandler) GetFormulas(c *gin.Context) {
	formulas, err := h.settingsService.GetFormulas(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Formulas retrieved", formulas)
}

// UpdateFormula validates and saves a formula override for one style
// @Summary Update a style formula
// @Tags settings
// @Accept json
// @Produce json
// @Param id path int true "Lightbox style ID"
// @Param request body request.UpdateFormulaRequest true "Formula text"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /settings/formulas/{id} [put]
func (h *SettingsHandler) UpdateFormula(c *gin.Context) {
	styleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid style ID")
		return
	}

	var req request.UpdateFormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.settingsService.UpdateFormula(c.Request.Context(), styleID, req.Formula)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Formula updated", output)
}

// ResetFormulas removes every formula override
// @Summary Reset formulas
// @Tags settings
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings/formulas [delete]
func (h *SettingsHandler) ResetFormulas(c *gin.Context) {
	if err := h.settingsService.ResetFormulas(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	formulas, err := h.settingsService.GetFormulas(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Formulas reset to defaults", formulas)
}

// TestFormula evaluates formula text against the sample dimensions
// @Summary Test a formula
// @Tags settings
// @Accept json
// @Produce json
// @Param request body request.TestFormulaRequest true "Formula text"
// @Success 200 {object} response.APIResponse
// @Router /settings/formulas/test [post]
func (h *SettingsHandler) TestFormula(c *gin.Context) {
	var req request.TestFormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	response.OK(c, "Formula checked", h.settingsService.TestFormula(req.Formula))
}
