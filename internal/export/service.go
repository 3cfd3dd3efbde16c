package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"invoicedesk/internal/entity"
	"invoicedesk/internal/repository"
)

// Service is a tiny façade over repositories that renders invoice exports:
// an XLSX purchase register or Tally import vouchers.
type Service struct {
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, logger: logger}
}

// Resolve selects the invoices to export: explicit ids win, otherwise the
// date window applies (from-only means from..today; neither means all).
func (s *Service) Resolve(ctx context.Context, ids []uuid.UUID, from, to *time.Time) ([]*entity.Invoice, error) {
	if len(ids) > 0 {
		return s.invoices.GetInvoices(ctx, ids)
	}

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	return s.invoices.ListInvoices(ctx, repository.ListInvoicesFilter{From: fromDate, To: toDate})
}

// ExportXLSX returns the purchase register workbook: one Invoices sheet, one
// Items sheet with every line item.
func (s *Service) ExportXLSX(invs []*entity.Invoice) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const invSheet = "Invoices"
	const itemSheet = "Items"

	if err := f.SetSheetName("Sheet1", invSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(itemSheet); err != nil {
		return nil, err
	}
	activeIndex, _ := f.GetSheetIndex(invSheet)
	f.SetActiveSheet(activeIndex)

	writeRow := func(sheet string, row int, values []any) {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	writeRow(invSheet, 1, []any{
		"Invoice No", "Date", "Vendor", "Subtotal", "CGST", "SGST", "Cess", "Total", "Status",
	})
	for i, inv := range invs {
		vendor := inv.VendorName
		if vendor == "" {
			vendor = "—"
		}
		writeRow(invSheet, i+2, []any{
			inv.InvoiceNumber,
			inv.InvoiceDate.Format("2006-01-02"),
			vendor,
			inv.Subtotal.StringFixed(2),
			inv.CGST.StringFixed(2),
			inv.SGST.StringFixed(2),
			inv.Cess.StringFixed(2),
			inv.TotalAmount.StringFixed(2),
			inv.Status,
		})
	}

	writeRow(itemSheet, 1, []any{
		"Invoice No", "Date", "Item", "Category", "Qty", "Unit", "Rate", "GST %", "Amount",
	})
	row := 2
	for _, inv := range invs {
		for _, it := range inv.Items {
			writeRow(itemSheet, row, []any{
				inv.InvoiceNumber,
				inv.InvoiceDate.Format("2006-01-02"),
				it.Description,
				it.CategoryName,
				it.Quantity.String(),
				it.Unit,
				it.UnitPrice.StringFixed(2),
				it.GSTRate.String(),
				it.TotalAmount().StringFixed(2),
			})
			row++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(invSheet, "A", "A", 16)
	_ = f.SetColWidth(invSheet, "B", "B", 12)
	_ = f.SetColWidth(invSheet, "C", "C", 28)
	_ = f.SetColWidth(invSheet, "D", "H", 12)
	_ = f.SetColWidth(itemSheet, "A", "A", 16)
	_ = f.SetColWidth(itemSheet, "C", "C", 32)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"invoices", len(invs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportTallyXML renders the invoices as purchase vouchers and marks them
// pushed. Generation happens before the status update so a render failure
// leaves the invoices untouched.
func (s *Service) ExportTallyXML(ctx context.Context, invs []*entity.Invoice) ([]byte, error) {
	out, err := BuildTallyXML(invs)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(invs))
	for i, inv := range invs {
		ids[i] = inv.ID
	}
	if err := s.invoices.MarkPushedToTally(ctx, ids); err != nil {
		return nil, fmt.Errorf("mark pushed to tally: %w", err)
	}

	s.logger.Info("export.tally.ok", "invoices", len(invs))
	return out, nil
}
