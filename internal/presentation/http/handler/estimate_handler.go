package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/haussigns/signquote-api/internal/application/service"
	"github.com/haussigns/signquote-api/internal/domain/catalog"
	"github.com/haussigns/signquote-api/internal/presentation/http/dto/request"
	"github.com/haussigns/signquote-api/internal/presentation/http/dto/response"
)

// EstimateHandler handles stateless pricing HTTP requests
type EstimateHandler struct {
	estimateService *service.EstimateService
}

// NewEstimateHandler creates a new estimate handler
func NewEstimateHandler(estimateService *service.EstimateService) *EstimateHandler {
	return &EstimateHandler{estimateService: estimateService}
}

// GetCatalog returns letter types, lightbox styles and active prices
// @Summary Product catalog
// @Tags estimates
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /catalog [get]
func (h *EstimateHandler) GetCatalog(c *gin.Context) {
	response.OK(c, "Catalog retrieved", h.estimateService.Catalog(c.Request.Context()))
}

// EstimateLetter prices a run of dimensional letters
// @Summary Price dimensional letters
// @Tags estimates
// @Accept json
// @Produce json
// @Param request body request.LetterEstimateRequest true "Letter configuration"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /estimates/letter [post]
func (h *EstimateHandler) EstimateLetter(c *gin.Context) {
	var req request.LetterEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	breakdown, err := h.estimateService.PriceLetter(c.Request.Context(), &service.LetterInput{
		HeightCm:  req.HeightCm,
		CharCount: req.CharCount,
		TypeID:    req.TypeID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Letter priced", breakdown)
}

// EstimateLogo prices a printed logo rectangle
// @Summary Price a logo
// @Tags estimates
// @Accept json
// @Produce json
// @Param request body request.LogoEstimateRequest true "Logo configuration"
// @Success 200 {object} response.APIResponse
// @Router /estimates/logo [post]
func (h *EstimateHandler) EstimateLogo(c *gin.Context) {
	var req request.LogoEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	breakdown, err := h.estimateService.PriceLogo(c.Request.Context(), &service.LogoInput{
		LengthCm: req.LengthCm,
		WidthCm:  req.WidthCm,
		TypeID:   req.TypeID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Logo priced", breakdown)
}

// EstimatePanel prices an aluminium background panel
// @Summary Price a background panel
// @Tags estimates
// @Accept json
// @Produce json
// @Param request body request.PanelEstimateRequest true "Panel configuration"
// @Success 200 {object} response.APIResponse
// @Router /estimates/panel [post]
func (h *EstimateHandler) EstimatePanel(c *gin.Context) {
	var req request.PanelEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	breakdown, err := h.estimateService.PricePanel(c.Request.Context(), &service.PanelInput{
		LengthCm: req.LengthCm,
		WidthCm:  req.WidthCm,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Panel priced", breakdown)
}

// EstimateLightbox prices a lightbox order
// @Summary Price a lightbox
// @Tags estimates
// @Accept json
// @Produce json
// @Param request body request.LightboxEstimateRequest true "Lightbox configuration"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /estimates/lightbox [post]
func (h *EstimateHandler) EstimateLightbox(c *gin.Context) {
	var req request.LightboxEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	breakdown, err := h.estimateService.PriceLightbox(c.Request.Context(), toLightboxInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Lightbox priced", breakdown)
}

// EstimateSignage prices a whole signage configuration
// @Summary Price a signage configuration
// @Tags estimates
// @Accept json
// @Produce json
// @Param request body request.SignageEstimateRequest true "Signage configuration"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /estimates/signage [post]
func (h *EstimateHandler) EstimateSignage(c *gin.Context) {
	var req request.SignageEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	summary, err := h.estimateService.PriceSignage(c.Request.Context(), toSignageInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Signage priced", summary)
}

// Convert converts a value between inches and centimeters
// @Summary Unit converter
// @Tags estimates
// @Accept json
// @Produce json
// @Param request body request.ConvertRequest true "Value and source unit"
// @Success 200 {object} response.APIResponse
// @Router /convert [post]
func (h *EstimateHandler) Convert(c *gin.Context) {
	var req request.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.estimateService.Convert(&service.ConvertInput{
		Value: req.Value,
		From:  req.From,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Converted", result)
}

func toLightboxInput(req *request.LightboxEstimateRequest) *service.LightboxInput {
	input := &service.LightboxInput{
		StyleID:  req.StyleID,
		SizeKey:  req.Size,
		Quantity: req.Quantity,
	}
	if req.Custom != nil {
		input.Custom = &catalog.Dimensions{
			Width:  req.Custom.Width,
			Height: req.Custom.Height,
			Depth:  req.Custom.Depth,
		}
	}
	return input
}

func toSignageInput(req *request.SignageEstimateRequest) *service.SignageInput {
	input := &service.SignageInput{
		Letters: make([]service.LetterInput, 0, len(req.Letters)),
	}
	for _, line := range req.Letters {
		input.Letters = append(input.Letters, service.LetterInput{
			HeightCm:  line.HeightCm,
			CharCount: line.CharCount,
			TypeID:    line.TypeID,
		})
	}
	if req.Logo != nil {
		input.Logo = &service.LogoInput{
			LengthCm: req.Logo.LengthCm,
			WidthCm:  req.Logo.WidthCm,
			TypeID:   req.Logo.TypeID,
		}
	}
	if req.Panel != nil {
		input.Panel = &service.PanelInput{
			LengthCm: req.Panel.LengthCm,
			WidthCm:  req.Panel.WidthCm,
		}
	}
	return input
}
