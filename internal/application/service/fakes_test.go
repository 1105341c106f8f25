package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/haussigns/signquote-api/internal/domain/entity"
	"github.com/haussigns/signquote-api/internal/domain/enum"
	"github.com/haussigns/signquote-api/internal/domain/repository"
)

// In-memory repository fakes for service tests.

type fakeSettingsRepo struct {
	settings *entity.PriceSettings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.PriceSettings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, settings *entity.PriceSettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	r.settings = settings
	return nil
}

func (r *fakeSettingsRepo) Reset(ctx context.Context) error {
	r.settings = nil
	return nil
}

type fakeFormulaRepo struct {
	formulas map[int]string
}

func newFakeFormulaRepo() *fakeFormulaRepo {
	return &fakeFormulaRepo{formulas: make(map[int]string)}
}

func (r *fakeFormulaRepo) List(ctx context.Context) ([]entity.LightboxFormula, error) {
	ids := make([]int, 0, len(r.formulas))
	for id := range r.formulas {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]entity.LightboxFormula, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.LightboxFormula{ID: uuid.New(), StyleID: id, Formula: r.formulas[id]})
	}
	return out, nil
}

func (r *fakeFormulaRepo) GetByStyleID(ctx context.Context, styleID int) (*entity.LightboxFormula, error) {
	text, ok := r.formulas[styleID]
	if !ok {
		return nil, nil
	}
	return &entity.LightboxFormula{ID: uuid.New(), StyleID: styleID, Formula: text}, nil
}

func (r *fakeFormulaRepo) Upsert(ctx context.Context, styleID int, formulaText string) error {
	r.formulas[styleID] = formulaText
	return nil
}

func (r *fakeFormulaRepo) DeleteByStyleID(ctx context.Context, styleID int) error {
	delete(r.formulas, styleID)
	return nil
}

func (r *fakeFormulaRepo) DeleteAll(ctx context.Context) error {
	r.formulas = make(map[int]string)
	return nil
}

type fakeQuotationRepo struct {
	quotations map[uuid.UUID]*entity.Quotation
	items      *fakeItemRepo
	created    int
}

func newFakeQuotationRepo(items *fakeItemRepo) *fakeQuotationRepo {
	return &fakeQuotationRepo{quotations: make(map[uuid.UUID]*entity.Quotation), items: items}
}

func (r *fakeQuotationRepo) Create(ctx context.Context, quotation *entity.Quotation) error {
	if quotation.ID == uuid.Nil {
		quotation.ID = uuid.New()
	}
	quotation.CreatedAt = time.Now()
	r.created++
	clone := *quotation
	r.quotations[quotation.ID] = &clone
	return nil
}

func (r *fakeQuotationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	q, ok := r.quotations[id]
	if !ok {
		return nil, nil
	}
	clone := *q
	return &clone, nil
}

func (r *fakeQuotationRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	q, err := r.GetByID(ctx, id)
	if q == nil || err != nil {
		return q, err
	}
	q.Items = r.items.forQuotation(id)
	return q, nil
}

func (r *fakeQuotationRepo) Update(ctx context.Context, quotation *entity.Quotation) error {
	clone := *quotation
	clone.Items = nil
	r.quotations[quotation.ID] = &clone
	return nil
}

func (r *fakeQuotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.quotations, id)
	return nil
}

func (r *fakeQuotationRepo) List(ctx context.Context, params *repository.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	var out []entity.Quotation
	for _, q := range r.quotations {
		if params.Search != "" &&
			!strings.Contains(q.Reference, params.Search) &&
			!strings.Contains(q.CustomerName, params.Search) {
			continue
		}
		if params.Status != nil && q.Status != *params.Status {
			continue
		}
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Reference < out[j].Reference })
	return out, int64(len(out)), nil
}

func (r *fakeQuotationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	if q, ok := r.quotations[id]; ok {
		q.Status = status
	}
	return nil
}

func (r *fakeQuotationRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	return r.created + 1, nil
}

type fakeItemRepo struct {
	items map[uuid.UUID]*entity.QuotationItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*entity.QuotationItem)}
}

func (r *fakeItemRepo) Create(ctx context.Context, item *entity.QuotationItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeItemRepo) DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error {
	for id, item := range r.items {
		if item.QuotationID == quotationID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.QuotationItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *item
	return &clone, nil
}

func (r *fakeItemRepo) forQuotation(quotationID uuid.UUID) []entity.QuotationItem {
	var out []entity.QuotationItem
	for _, item := range r.items {
		if item.QuotationID == quotationID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// newTestSettings builds a loaded settings service over empty fakes.
func newTestSettings(t interface{ Fatalf(string, ...interface{}) }) (*SettingsService, *fakeSettingsRepo, *fakeFormulaRepo) {
	settingsRepo := &fakeSettingsRepo{}
	formulaRepo := newFakeFormulaRepo()
	svc := NewSettingsService(settingsRepo, formulaRepo)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return svc, settingsRepo, formulaRepo
}

func nearlyEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
