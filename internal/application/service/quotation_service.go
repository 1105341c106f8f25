package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/haussigns/signquote-api/internal/domain/catalog"
	"github.com/haussigns/signquote-api/internal/domain/entity"
	"github.com/haussigns/signquote-api/internal/domain/enum"
	"github.com/haussigns/signquote-api/internal/domain/repository"
	"github.com/haussigns/signquote-api/pkg/apperror"
	"github.com/haussigns/signquote-api/pkg/format"
	"github.com/haussigns/signquote-api/pkg/pagination"
)

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	itemRepo      repository.QuotationItemRepository
	settings      *SettingsService
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	itemRepo repository.QuotationItemRepository,
	settings *SettingsService,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		itemRepo:      itemRepo,
		settings:      settings,
	}
}

// CreateQuotationInput represents the input for creating a quotation
type CreateQuotationInput struct {
	CustomerName string
	Note         *string
}

// CreateQuotation creates a new empty quotation with a generated reference
func (s *QuotationService) CreateQuotation(ctx context.Context, input *CreateQuotationInput) (*entity.Quotation, error) {
	nextNum, err := s.quotationRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	quotation := &entity.Quotation{
		Reference:    fmt.Sprintf("QT-%06d", nextNum),
		CustomerName: input.CustomerName,
		Status:       enum.QuotationStatusDraft,
		Note:         input.Note,
	}
	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

// ListQuotationsInput represents filtering input for listing quotations
type ListQuotationsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuotationStatus
}

// ListQuotations retrieves quotations with pagination and filtering
func (s *QuotationService) ListQuotations(ctx context.Context, input *ListQuotationsInput) (*pagination.PaginatedResult[entity.Quotation], error) {
	params := &repository.QuotationFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	quotations, total, err := s.quotationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, p), nil
}

// GetQuotation retrieves a quotation with its line items
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// UpdateQuotationInput represents the input for updating quotation headers
type UpdateQuotationInput struct {
	CustomerName *string
	Note         *string
}

// UpdateQuotation updates a quotation's customer name and note
func (s *QuotationService) UpdateQuotation(ctx context.Context, id uuid.UUID, input *UpdateQuotationInput) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	if input.CustomerName != nil {
		quotation.CustomerName = *input.CustomerName
	}
	if input.Note != nil {
		quotation.Note = input.Note
	}
	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

// DeleteQuotation deletes a quotation and its line items
func (s *QuotationService) DeleteQuotation(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}

	if err := s.itemRepo.DeleteByQuotationID(ctx, id); err != nil {
		return err
	}
	return s.quotationRepo.Delete(ctx, id)
}

// UpdateStatus changes a quotation's status
func (s *QuotationService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}
	return s.quotationRepo.UpdateStatus(ctx, id, status)
}

// AddSignage prices a signage configuration and appends the priced parts as
// line items. Letter rows that are unfilled or fail a guard are skipped, so
// one half-entered row never blocks adding the rest of the configuration.
// The strict per-row errors live on the estimate endpoints.
func (s *QuotationService) AddSignage(ctx context.Context, id uuid.UUID, input *SignageInput) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	engine := s.settings.Engine()
	position := len(quotation.Items)
	var items []entity.QuotationItem

	for _, line := range input.Letters {
		b, err := engine.LetterPrice(line.HeightCm, line.CharCount, line.TypeID)
		if err != nil || line.HeightCm <= 0 || line.CharCount <= 0 || b.FinalPrice <= 0 {
			continue
		}
		typeName := line.TypeID
		if t, ok := catalog.LetterTypeByID(line.TypeID); ok {
			typeName = t.Name
		}
		items = append(items, entity.QuotationItem{
			QuotationID: id,
			Description: fmt.Sprintf("%s, %.0fcm × %d pcs (%s)", typeName, line.HeightCm, line.CharCount, format.Area(b.Area)),
			Price:       b.FinalPrice,
			Position:    position + len(items),
		})
	}

	if input.Logo != nil && input.Logo.LengthCm > 0 && input.Logo.WidthCm > 0 {
		b := engine.LogoPrice(input.Logo.LengthCm, input.Logo.WidthCm, input.Logo.TypeID)
		if b.FinalPrice > 0 {
			items = append(items, entity.QuotationItem{
				QuotationID: id,
				Description: fmt.Sprintf("Logo %.0f×%.0fcm (%s)", input.Logo.LengthCm, input.Logo.WidthCm, format.Area(b.Area)),
				Price:       b.FinalPrice,
				Position:    position + len(items),
			})
		}
	}

	if input.Panel != nil && input.Panel.LengthCm > 0 && input.Panel.WidthCm > 0 {
		b := engine.PanelPrice(input.Panel.LengthCm, input.Panel.WidthCm)
		if b.FinalPrice > 0 {
			items = append(items, entity.QuotationItem{
				QuotationID: id,
				Description: fmt.Sprintf("Aluminium panel %.0f×%.0fcm (%s)", input.Panel.LengthCm, input.Panel.WidthCm, format.Area(b.Area)),
				Price:       b.FinalPrice,
				Position:    position + len(items),
			})
		}
	}

	if len(items) == 0 {
		return nil, apperror.NewUnprocessableError("Nothing to add: no part of the configuration is priced")
	}

	for i := range items {
		if err := s.itemRepo.Create(ctx, &items[i]); err != nil {
			return nil, err
		}
	}
	return s.recomputeTotal(ctx, id)
}

// AddLightbox prices a lightbox order and appends it as a line item.
func (s *QuotationService) AddLightbox(ctx context.Context, id uuid.UUID, input *LightboxInput) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	b, err := s.settings.Engine().LightboxPrice(input.StyleID, input.SizeKey, input.Quantity, input.Custom)
	if err != nil {
		return nil, toAppError(err)
	}
	if b.TotalPrice <= 0 {
		return nil, apperror.NewUnprocessableError("Lightbox configuration is incomplete")
	}

	styleName := fmt.Sprintf("Lightbox style %d", input.StyleID)
	if style, ok := catalog.StyleByID(input.StyleID); ok {
		styleName = style.Name
	}
	sizeLabel := input.SizeKey
	if input.SizeKey == "custom" && input.Custom != nil {
		sizeLabel = fmt.Sprintf("%.0f×%.0f×%.0fcm", input.Custom.Width, input.Custom.Height, input.Custom.Depth)
	}

	item := &entity.QuotationItem{
		QuotationID: id,
		Description: fmt.Sprintf("%s, %s × %d (%s)", styleName, sizeLabel, b.Quantity, format.Area(b.Area)),
		Price:       b.TotalPrice,
		Position:    len(quotation.Items),
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return s.recomputeTotal(ctx, id)
}

// RemoveItem deletes one line item and recomputes the quotation total
func (s *QuotationService) RemoveItem(ctx context.Context, quotationID, itemID uuid.UUID) (*entity.Quotation, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.QuotationID != quotationID {
		return nil, apperror.NewNotFoundError("Quotation item")
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return nil, err
	}
	return s.recomputeTotal(ctx, quotationID)
}

// recomputeTotal re-sums the line items and persists the quotation total.
func (s *QuotationService) recomputeTotal(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	var total float64
	for _, item := range quotation.Items {
		total += item.Price
	}
	quotation.TotalAmount = total
	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}
