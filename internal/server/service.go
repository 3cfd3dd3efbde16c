// Package server implements the InvoiceDeskService gRPC surface. Handlers
// validate input, delegate to repositories and the OCR/parse pipeline, and
// translate results to protobuf via internal/utils.
package server

import (
	"log/slog"
	"time"

	invoicedeskpb "invoicedesk/gen/proto/invoicedesk/v1"
	"invoicedesk/internal/export"
	"invoicedesk/internal/ocr"
	"invoicedesk/internal/parse"
	"invoicedesk/internal/repository"
)

type InvoiceDeskService struct {
	invoicedeskpb.UnimplementedInvoiceDeskServiceServer
	invoiceRepo  repository.InvoiceRepository
	vendorRepo   repository.VendorRepository
	categoryRepo repository.CategoryRepository
	scanJobRepo  repository.ScanJobRepository
	extractor    *ocr.Extractor
	parser       *parse.Parser
	exporter     *export.Service
	scanTimeout  time.Duration
	logger       *slog.Logger
}

type Deps struct {
	InvoiceRepo  repository.InvoiceRepository
	VendorRepo   repository.VendorRepository
	CategoryRepo repository.CategoryRepository
	ScanJobRepo  repository.ScanJobRepository
	Extractor    *ocr.Extractor
	Parser       *parse.Parser
	Exporter     *export.Service
	// ScanTimeout bounds one OCR pass; zero means no limit.
	ScanTimeout time.Duration
	Logger      *slog.Logger
}

func NewInvoiceDeskService(deps Deps) *InvoiceDeskService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceDeskService{
		invoiceRepo:  deps.InvoiceRepo,
		vendorRepo:   deps.VendorRepo,
		categoryRepo: deps.CategoryRepo,
		scanJobRepo:  deps.ScanJobRepo,
		extractor:    deps.Extractor,
		parser:       deps.Parser,
		exporter:     deps.Exporter,
		scanTimeout:  deps.ScanTimeout,
		logger:       logger,
	}
}
