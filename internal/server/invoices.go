package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"invoicedesk/constants"
	invoicedeskpb "invoicedesk/gen/proto/invoicedesk/v1"
	"invoicedesk/internal/entity"
	"invoicedesk/internal/repository"
	"invoicedesk/internal/utils"
)

// priceChangeTolerance is the smallest unit-price difference worth flagging.
var priceChangeTolerance = decimal.NewFromFloat(0.01)

func (s *InvoiceDeskService) CreateInvoice(ctx context.Context, req *invoicedeskpb.CreateInvoiceRequest) (*invoicedeskpb.CreateInvoiceResponse, error) {
	if strings.TrimSpace(req.GetInvoiceNumber()) == "" {
		return nil, status.Error(codes.InvalidArgument, "invoice_number is required")
	}
	invoiceDate, err := utils.ParseYMD(req.GetInvoiceDate())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invoice_date invalid (YYYY-MM-DD): %v", err)
	}
	if len(req.GetItems()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one item is required")
	}

	var vendorID *uuid.UUID
	if v := strings.TrimSpace(req.GetVendorId()); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "vendor_id must be a UUID")
		}
		vendorID = &id
	}

	items := make([]entity.InvoiceItem, 0, len(req.GetItems()))
	for i, in := range req.GetItems() {
		item, err := toItem(in)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "items[%d]: %v", i, err)
		}
		items = append(items, item)
	}

	var scanJobID *uuid.UUID
	if v := strings.TrimSpace(req.GetScanJobId()); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "scan_job_id must be a UUID")
		}
		scanJobID = &id
	}

	inv, err := s.invoiceRepo.CreateInvoice(ctx, &repository.CreateInvoiceRequest{
		InvoiceNumber: strings.TrimSpace(req.GetInvoiceNumber()),
		InvoiceDate:   invoiceDate,
		VendorID:      vendorID,
		VendorName:    strings.TrimSpace(req.GetVendorName()),
		Items:         items,
		Notes:         req.GetNotes(),
		ScanJobID:     scanJobID,
	})
	if err != nil {
		s.logger.Error("failed to create invoice", "invoice_number", req.GetInvoiceNumber(), "error", err)
		return nil, status.Errorf(codes.Internal, "create invoice: %v", err)
	}
	s.logger.Info("invoice created", "invoice_id", inv.ID, "invoice_number", inv.InvoiceNumber, "items", len(inv.Items))

	return &invoicedeskpb.CreateInvoiceResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func toItem(in *invoicedeskpb.NewLineItem) (entity.InvoiceItem, error) {
	if strings.TrimSpace(in.GetDescription()) == "" {
		return entity.InvoiceItem{}, status.Error(codes.InvalidArgument, "description is required")
	}
	qty, err := decimal.NewFromString(in.GetQuantity())
	if err != nil || !qty.IsPositive() {
		return entity.InvoiceItem{}, status.Error(codes.InvalidArgument, "quantity must be a positive decimal")
	}
	price, err := decimal.NewFromString(in.GetUnitPrice())
	if err != nil || price.IsNegative() {
		return entity.InvoiceItem{}, status.Error(codes.InvalidArgument, "unit_price must be a non-negative decimal")
	}
	rate := decimal.Zero
	if v := strings.TrimSpace(in.GetGstRate()); v != "" {
		rate, err = decimal.NewFromString(v)
		if err != nil || rate.IsNegative() {
			return entity.InvoiceItem{}, status.Error(codes.InvalidArgument, "gst_rate must be a non-negative decimal")
		}
	}
	unit := strings.TrimSpace(in.GetUnit())
	if unit == "" {
		unit = constants.DefaultUnit
	}
	category := strings.TrimSpace(in.GetCategoryName())
	if category == "" {
		category = constants.OtherCategory
	}
	return entity.InvoiceItem{
		Description:  strings.TrimSpace(in.GetDescription()),
		Quantity:     qty,
		Unit:         unit,
		UnitPrice:    price,
		GSTRate:      rate,
		CategoryName: category,
	}, nil
}

func (s *InvoiceDeskService) GetInvoice(ctx context.Context, req *invoicedeskpb.GetInvoiceRequest) (*invoicedeskpb.GetInvoiceResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	inv, err := s.invoiceRepo.GetInvoice(ctx, id)
	if err != nil {
		s.logger.Error("failed to get invoice", "invoice_id", id, "error", err)
		return nil, status.Errorf(codes.NotFound, "invoice %s not found", id)
	}
	return &invoicedeskpb.GetInvoiceResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func (s *InvoiceDeskService) ListInvoices(ctx context.Context, req *invoicedeskpb.ListInvoicesRequest) (*invoicedeskpb.ListInvoicesResponse, error) {
	var filter repository.ListInvoicesFilter

	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.From = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.To = &to
	}
	if v := strings.TrimSpace(req.GetVendorId()); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "vendor_id must be a UUID")
		}
		filter.VendorID = &id
	}
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		if !validInvoiceStatus(st) {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
		}
		filter.Status = st
	}

	invs, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list invoices", "error", err)
		return nil, status.Errorf(codes.Internal, "list invoices: %v", err)
	}

	out := make([]*invoicedeskpb.Invoice, 0, len(invs))
	for _, inv := range invs {
		out = append(out, utils.ToPBInvoice(inv))
	}
	return &invoicedeskpb.ListInvoicesResponse{Invoices: out}, nil
}

func validInvoiceStatus(s string) bool {
	for _, v := range constants.InvoiceStatusValues() {
		if v == s {
			return true
		}
	}
	return false
}

// PriceCheck flags proposed line items whose unit price moved more than a
// paisa against the last recorded purchase of the same item.
func (s *InvoiceDeskService) PriceCheck(ctx context.Context, req *invoicedeskpb.PriceCheckRequest) (*invoicedeskpb.PriceCheckResponse, error) {
	changes := make([]*invoicedeskpb.PriceChange, 0)
	for i, it := range req.GetItems() {
		desc := strings.TrimSpace(it.GetDescription())
		if desc == "" {
			continue
		}
		newPrice, err := decimal.NewFromString(it.GetUnitPrice())
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "items[%d].unit_price must be a decimal", i)
		}

		hist, err := s.invoiceRepo.LastUnitPrice(ctx, desc)
		if err != nil {
			s.logger.Error("price history lookup failed", "description", desc, "error", err)
			return nil, status.Errorf(codes.Internal, "price check: %v", err)
		}
		if hist == nil {
			continue
		}

		diff := newPrice.Sub(hist.UnitPrice)
		if diff.Abs().LessThanOrEqual(priceChangeTolerance) {
			continue
		}

		changePercent := decimal.Zero
		if !hist.UnitPrice.IsZero() {
			changePercent = diff.Div(hist.UnitPrice).Mul(decimal.NewFromInt(100)).Round(2)
		}
		lastVendor := hist.VendorName
		if lastVendor == "" {
			lastVendor = "—"
		}
		changes = append(changes, &invoicedeskpb.PriceChange{
			ItemName:      desc,
			OldPrice:      hist.UnitPrice.StringFixed(2),
			NewPrice:      newPrice.StringFixed(2),
			LastDate:      hist.InvoiceDate.Format("2006-01-02"),
			LastVendor:    lastVendor,
			Change:        diff.Round(2).StringFixed(2),
			ChangePercent: changePercent.StringFixed(2),
		})
	}
	return &invoicedeskpb.PriceCheckResponse{Changes: changes}, nil
}
