package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/haussigns/signquote-api/internal/domain/catalog"
	"github.com/haussigns/signquote-api/internal/domain/enum"
	"github.com/haussigns/signquote-api/pkg/apperror"
)

func newTestQuotation(t *testing.T) (*QuotationService, *fakeQuotationRepo, *fakeItemRepo) {
	settings, _, _ := newTestSettings(t)
	itemRepo := newFakeItemRepo()
	quotationRepo := newFakeQuotationRepo(itemRepo)
	return NewQuotationService(quotationRepo, itemRepo, settings), quotationRepo, itemRepo
}

func TestCreateQuotationGeneratesSequentialReferences(t *testing.T) {
	svc, _, _ := newTestQuotation(t)
	ctx := context.Background()

	first, err := svc.CreateQuotation(ctx, &CreateQuotationInput{CustomerName: "Acme Mall"})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}
	second, err := svc.CreateQuotation(ctx, &CreateQuotationInput{CustomerName: "Riverside Cafe"})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}

	if first.Reference != "QT-000001" {
		t.Errorf("first reference = %q, want QT-000001", first.Reference)
	}
	if second.Reference != "QT-000002" {
		t.Errorf("second reference = %q, want QT-000002", second.Reference)
	}
	if first.Status != enum.QuotationStatusDraft {
		t.Errorf("status = %v, want Draft", first.Status)
	}
}

func TestAddSignageAppendsPricedItems(t *testing.T) {
	svc, _, _ := newTestQuotation(t)
	ctx := context.Background()

	q, err := svc.CreateQuotation(ctx, &CreateQuotationInput{CustomerName: "Acme Mall"})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}

	updated, err := svc.AddSignage(ctx, q.ID, &SignageInput{
		Letters: []LetterInput{
			{HeightCm: 20, CharCount: 10, TypeID: "illuminated"}, // 7200
			{HeightCm: 0, CharCount: 5, TypeID: "cutOut"},        // unfilled row, skipped
		},
		Panel: &PanelInput{LengthCm: 100, WidthCm: 50}, // 1000
	})
	if err != nil {
		t.Fatalf("AddSignage: %v", err)
	}

	if len(updated.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2 (zero-height row skipped)", len(updated.Items))
	}
	if !nearlyEqual(updated.TotalAmount, 8200) {
		t.Errorf("TotalAmount = %v, want 8200", updated.TotalAmount)
	}
	if !strings.Contains(updated.Items[0].Description, "Illuminated") {
		t.Errorf("item description = %q", updated.Items[0].Description)
	}
}

func TestAddSignageSkipsGuardedRows(t *testing.T) {
	svc, _, itemRepo := newTestQuotation(t)
	ctx := context.Background()

	q, err := svc.CreateQuotation(ctx, &CreateQuotationInput{})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}

	// The 5cm 3d row fails the minimum-height guard and is skipped; the
	// valid row still lands on the quotation.
	updated, err := svc.AddSignage(ctx, q.ID, &SignageInput{
		Letters: []LetterInput{
			{HeightCm: 5, CharCount: 3, TypeID: "3d"},
			{HeightCm: 20, CharCount: 10, TypeID: "illuminated"},
		},
	})
	if err != nil {
		t.Fatalf("AddSignage: %v", err)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(updated.Items))
	}
	if !nearlyEqual(updated.TotalAmount, 7200) {
		t.Errorf("TotalAmount = %v, want 7200", updated.TotalAmount)
	}
	if len(itemRepo.items) != 1 {
		t.Errorf("stored items = %d, want 1", len(itemRepo.items))
	}
}

func TestAddSignageNothingPriced(t *testing.T) {
	svc, _, _ := newTestQuotation(t)
	ctx := context.Background()

	q, err := svc.CreateQuotation(ctx, &CreateQuotationInput{})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}

	_, err = svc.AddSignage(ctx, q.ID, &SignageInput{
		Letters: []LetterInput{{HeightCm: 0, CharCount: 0, TypeID: "illuminated"}},
	})
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusUnprocessableEntity {
		t.Errorf("want a 422 AppError, got %v", err)
	}
}

func TestAddLightbox(t *testing.T) {
	svc, _, _ := newTestQuotation(t)
	ctx := context.Background()

	q, err := svc.CreateQuotation(ctx, &CreateQuotationInput{CustomerName: "Acme Mall"})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}

	// Style 1 size M is 120×24×8: area 5.184 m², base 51840, no markup.
	updated, err := svc.AddLightbox(ctx, q.ID, &LightboxInput{StyleID: 1, SizeKey: "M", Quantity: 1})
	if err != nil {
		t.Fatalf("AddLightbox: %v", err)
	}

	if len(updated.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(updated.Items))
	}
	if !nearlyEqual(updated.Items[0].Price, 51840) {
		t.Errorf("item price = %v, want 51840", updated.Items[0].Price)
	}
	if !nearlyEqual(updated.TotalAmount, 51840) {
		t.Errorf("TotalAmount = %v, want 51840", updated.TotalAmount)
	}
}

func TestAddLightboxCustomTooSmall(t *testing.T) {
	svc, _, _ := newTestQuotation(t)
	ctx := context.Background()

	q, err := svc.CreateQuotation(ctx, &CreateQuotationInput{})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}

	_, err = svc.AddLightbox(ctx, q.ID, &LightboxInput{
		StyleID: 4,
		SizeKey: "custom",
		Custom:  &catalog.Dimensions{Width: 19, Height: 25, Depth: 25},
	})
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusUnprocessableEntity {
		t.Errorf("want a 422 AppError, got %v", err)
	}
}

func TestRemoveItemRecomputesTotal(t *testing.T) {
	svc, _, _ := newTestQuotation(t)
	ctx := context.Background()

	q, err := svc.CreateQuotation(ctx, &CreateQuotationInput{})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}
	updated, err := svc.AddSignage(ctx, q.ID, &SignageInput{
		Letters: []LetterInput{{HeightCm: 20, CharCount: 10, TypeID: "illuminated"}},
		Panel:   &PanelInput{LengthCm: 100, WidthCm: 50},
	})
	if err != nil {
		t.Fatalf("AddSignage: %v", err)
	}

	updated, err = svc.RemoveItem(ctx, q.ID, updated.Items[1].ID)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(updated.Items))
	}
	if !nearlyEqual(updated.TotalAmount, 7200) {
		t.Errorf("TotalAmount = %v, want 7200", updated.TotalAmount)
	}
}

func TestRemoveItemFromOtherQuotation(t *testing.T) {
	svc, _, _ := newTestQuotation(t)
	ctx := context.Background()

	first, err := svc.CreateQuotation(ctx, &CreateQuotationInput{})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}
	second, err := svc.CreateQuotation(ctx, &CreateQuotationInput{})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}
	withItem, err := svc.AddLightbox(ctx, first.ID, &LightboxInput{StyleID: 1, SizeKey: "M", Quantity: 1})
	if err != nil {
		t.Fatalf("AddLightbox: %v", err)
	}

	_, err = svc.RemoveItem(ctx, second.ID, withItem.Items[0].ID)
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusNotFound {
		t.Errorf("want a 404 AppError, got %v", err)
	}
}

func TestUpdateStatusAndDelete(t *testing.T) {
	svc, quotationRepo, itemRepo := newTestQuotation(t)
	ctx := context.Background()

	q, err := svc.CreateQuotation(ctx, &CreateQuotationInput{})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}
	if _, err := svc.AddLightbox(ctx, q.ID, &LightboxInput{StyleID: 1, SizeKey: "S", Quantity: 1}); err != nil {
		t.Fatalf("AddLightbox: %v", err)
	}

	if err := svc.UpdateStatus(ctx, q.ID, enum.QuotationStatusSent); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	got, err := svc.GetQuotation(ctx, q.ID)
	if err != nil {
		t.Fatalf("GetQuotation: %v", err)
	}
	if got.Status != enum.QuotationStatusSent {
		t.Errorf("status = %v, want Sent", got.Status)
	}

	if err := svc.DeleteQuotation(ctx, q.ID); err != nil {
		t.Fatalf("DeleteQuotation: %v", err)
	}
	if len(quotationRepo.quotations) != 0 {
		t.Error("quotation should be deleted")
	}
	if len(itemRepo.items) != 0 {
		t.Error("items should be deleted with the quotation")
	}
}

func TestListQuotationsFilters(t *testing.T) {
	svc, _, _ := newTestQuotation(t)
	ctx := context.Background()

	first, err := svc.CreateQuotation(ctx, &CreateQuotationInput{CustomerName: "Acme Mall"})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}
	if _, err := svc.CreateQuotation(ctx, &CreateQuotationInput{CustomerName: "Riverside Cafe"}); err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}
	if err := svc.UpdateStatus(ctx, first.ID, enum.QuotationStatusSent); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	result, err := svc.ListQuotations(ctx, &ListQuotationsInput{Search: "Acme"})
	if err != nil {
		t.Fatalf("ListQuotations: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].CustomerName != "Acme Mall" {
		t.Errorf("search result = %+v", result.Items)
	}

	sent := enum.QuotationStatusSent
	result, err = svc.ListQuotations(ctx, &ListQuotationsInput{Status: &sent})
	if err != nil {
		t.Fatalf("ListQuotations: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].Reference != "QT-000001" {
		t.Errorf("status filter result = %+v", result.Items)
	}
	if result.Pagination == nil || result.Pagination.Total != 1 {
		t.Errorf("pagination = %+v", result.Pagination)
	}
}
