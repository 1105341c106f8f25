package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/haussigns/signquote-api/internal/domain/entity"
	"github.com/haussigns/signquote-api/internal/domain/enum"
	"github.com/haussigns/signquote-api/pkg/pagination"
)

// QuotationFilterParams represents filtering parameters for quotation queries
type QuotationFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuotationStatus
}

// QuotationRepository defines the interface for quotation data access
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	Update(ctx context.Context, quotation *entity.Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *QuotationFilterParams) ([]entity.Quotation, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// QuotationItemRepository defines the interface for quotation item data access
type QuotationItemRepository interface {
	Create(ctx context.Context, item *entity.QuotationItem) error
	DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.QuotationItem, error)
}
