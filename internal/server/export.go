package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invoicedeskpb "invoicedesk/gen/proto/invoicedesk/v1"
	"invoicedesk/internal/utils"
)

// ExportInvoices renders the selected invoices as an XLSX purchase register
// or as Tally import vouchers. Tally exports additionally mark the invoices
// pushed, so re-running the export is visible in their status.
func (s *InvoiceDeskService) ExportInvoices(ctx context.Context, req *invoicedeskpb.ExportInvoicesRequest) (*invoicedeskpb.ExportInvoicesResponse, error) {
	format := req.GetFormat()
	if format == invoicedeskpb.ExportFormat_EXPORT_FORMAT_UNSPECIFIED {
		format = invoicedeskpb.ExportFormat_EXPORT_FORMAT_XLSX
	}

	ids := make([]uuid.UUID, 0, len(req.GetInvoiceIds()))
	for _, raw := range req.GetInvoiceIds() {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invoice id %q must be a UUID", raw)
		}
		ids = append(ids, id)
	}

	var from, to *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		from = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		to = &t
	}

	invs, err := s.exporter.Resolve(ctx, ids, from, to)
	if err != nil {
		s.logger.Error("failed to resolve invoices for export", "error", err)
		return nil, status.Errorf(codes.Internal, "resolve invoices: %v", err)
	}
	if len(invs) == 0 {
		return nil, status.Error(codes.NotFound, "no invoices match the selection")
	}

	stamp := time.Now().UTC().Format("20060102-150405")
	var content []byte
	var fileName string
	switch format {
	case invoicedeskpb.ExportFormat_EXPORT_FORMAT_XLSX:
		content, err = s.exporter.ExportXLSX(invs)
		fileName = fmt.Sprintf("invoices-%s.xlsx", stamp)
	case invoicedeskpb.ExportFormat_EXPORT_FORMAT_TALLY_XML:
		content, err = s.exporter.ExportTallyXML(ctx, invs)
		fileName = fmt.Sprintf("tally-vouchers-%s.xml", stamp)
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown export format %v", format)
	}
	if err != nil {
		s.logger.Error("export failed", "format", format.String(), "invoices", len(invs), "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}

	s.logger.Info("export completed", "format", format.String(), "invoices", len(invs), "bytes", len(content))
	return &invoicedeskpb.ExportInvoicesResponse{
		FileName:     fileName,
		Content:      content,
		InvoiceCount: int32(len(invs)),
	}, nil
}
