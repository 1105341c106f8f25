package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/haussigns/signquote-api/internal/domain/repository"
	"github.com/haussigns/signquote-api/pkg/apperror"
	"github.com/haussigns/signquote-api/pkg/format"
)

// ExportService writes quotations to Excel workbooks for sending to
// customers.
type ExportService struct {
	quotationRepo repository.QuotationRepository
	exportDir     string
}

// NewExportService creates a new export service
func NewExportService(quotationRepo repository.QuotationRepository, exportDir string) *ExportService {
	return &ExportService{
		quotationRepo: quotationRepo,
		exportDir:     exportDir,
	}
}

// ExportQuotation writes a quotation with its line items to an .xlsx file
// and returns the path of the saved file.
func (s *ExportService) ExportQuotation(ctx context.Context, id uuid.UUID) (string, error) {
	quotation, err := s.quotationRepo.GetWithItems(ctx, id)
	if err != nil {
		return "", err
	}
	if quotation == nil {
		return "", apperror.NewNotFoundError("Quotation")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Quotation"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheet, "A1", "HAUS SIGNS")
	f.SetCellValue(sheet, "A2", "Quotation")
	f.SetCellValue(sheet, "B2", quotation.Reference)
	f.SetCellValue(sheet, "A3", "Customer")
	f.SetCellValue(sheet, "B3", quotation.CustomerName)
	f.SetCellValue(sheet, "A4", "Date")
	f.SetCellValue(sheet, "B4", quotation.CreatedAt.Format("2006-01-02"))
	f.SetCellValue(sheet, "A5", "Status")
	f.SetCellValue(sheet, "B5", quotation.Status.String())

	f.SetCellValue(sheet, "A7", "#")
	f.SetCellValue(sheet, "B7", "Description")
	f.SetCellValue(sheet, "C7", "Price")

	row := 8
	for i, item := range quotation.Items {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Description)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), format.PHP(item.Price))
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), format.PHP(quotation.TotalAmount))

	if quotation.Note != nil && *quotation.Note != "" {
		row += 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Note")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), *quotation.Note)
	}

	bold, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheet, "A1", "A7", bold)
	f.SetCellStyle(sheet, "B7", "C7", bold)

	f.SetColWidth(sheet, "B", "B", 60)
	f.SetColWidth(sheet, "C", "C", 16)
	f.SetActiveSheet(index)

	if err := os.MkdirAll(s.exportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.xlsx", quotation.Reference, time.Now().Format("20060102_1504"))
	path := filepath.Join(s.exportDir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}
	return path, nil
}
