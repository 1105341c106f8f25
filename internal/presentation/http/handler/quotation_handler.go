package handler

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/haussigns/signquote-api/internal/application/service"
	"github.com/haussigns/signquote-api/internal/domain/enum"
	"github.com/haussigns/signquote-api/internal/presentation/http/dto/request"
	"github.com/haussigns/signquote-api/internal/presentation/http/dto/response"
	"github.com/haussigns/signquote-api/pkg/pagination"
)

// QuotationHandler handles quotation-related HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
	exportService    *service.ExportService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService, exportService *service.ExportService) *QuotationHandler {
	return &QuotationHandler{
		quotationService: quotationService,
		exportService:    exportService,
	}
}

// CreateQuotation creates a new empty quotation
// @Summary Create quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Param request body request.CreateQuotationRequest true "Quotation header"
// @Success 201 {object} response.APIResponse
// @Router /quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var req request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), &service.CreateQuotationInput{
		CustomerName: req.CustomerName,
		Note:         req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Quotation created", quotation)
}

// ListQuotations retrieves quotations with pagination and filtering
// @Summary List quotations
// @Tags quotations
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search by reference or customer"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.APIResponse
// @Router /quotations [get]
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	input := &service.ListQuotationsInput{
		Pagination: &params,
		Search:     c.Query("search"),
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status, ok := parseQuotationStatus(statusStr)
		if !ok {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		input.Status = &status
	}

	result, err := h.quotationService.ListQuotations(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Quotations retrieved", result)
}

// GetQuotation retrieves a quotation with its line items
// @Summary Get quotation
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quotation retrieved", quotation)
}

// UpdateQuotation updates a quotation's header fields
// @Summary Update quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body request.UpdateQuotationRequest true "Fields to update"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id} [put]
func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), id, &service.UpdateQuotationInput{
		CustomerName: req.CustomerName,
		Note:         req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quotation updated", quotation)
}

// DeleteQuotation deletes a quotation and its line items
// @Summary Delete quotation
// @Tags quotations
// @Param id path string true "Quotation ID"
// @Success 204
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpdateStatus changes a quotation's status
// @Summary Update quotation status
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body request.UpdateQuotationStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id}/status [patch]
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.UpdateQuotationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, ok := parseQuotationStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid status")
		return
	}
	if err := h.quotationService.UpdateStatus(c.Request.Context(), id, status); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Status updated", gin.H{"status": status})
}

// AddSignage prices a signage configuration and appends it as line items
// @Summary Add signage to quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body request.SignageEstimateRequest true "Signage configuration"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /quotations/{id}/signage [post]
func (h *QuotationHandler) AddSignage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.SignageEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quotation, err := h.quotationService.AddSignage(c.Request.Context(), id, toSignageInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Signage added to quotation", quotation)
}

// AddLightbox prices a lightbox order and appends it as a line item
// @Summary Add lightbox to quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body request.LightboxEstimateRequest true "Lightbox configuration"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /quotations/{id}/lightbox [post]
func (h *QuotationHandler) AddLightbox(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.LightboxEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quotation, err := h.quotationService.AddLightbox(c.Request.Context(), id, toLightboxInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Lightbox added to quotation", quotation)
}

// RemoveItem deletes one line item from a quotation
// @Summary Remove quotation item
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id}/items/{itemId} [delete]
func (h *QuotationHandler) RemoveItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	quotation, err := h.quotationService.RemoveItem(c.Request.Context(), id, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed", quotation)
}

// ExportQuotation writes a quotation to an .xlsx file and serves it
// @Summary Export quotation to Excel
// @Tags quotations
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Quotation ID"
// @Success 200 {file} file
// @Router /quotations/{id}/export [get]
func (h *QuotationHandler) ExportQuotation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	path, err := h.exportService.ExportQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}

func parseQuotationStatus(s string) (enum.QuotationStatus, bool) {
	switch s {
	case "Draft":
		return enum.QuotationStatusDraft, true
	case "Sent":
		return enum.QuotationStatusSent, true
	case "Accepted":
		return enum.QuotationStatusAccepted, true
	case "Declined":
		return enum.QuotationStatusDeclined, true
	}
	return enum.QuotationStatusDraft, false
}
