package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"invoicedesk/constants"
	invoicedeskpb "invoicedesk/gen/proto/invoicedesk/v1"
	"invoicedesk/internal/entity"
	"invoicedesk/internal/review"
	"invoicedesk/internal/utils"
)

// ScanInvoice runs the OCR + extraction pipeline over an uploaded file. The
// scan job rows record each stage so a failed upload can be diagnosed later;
// the invoice itself is only persisted by a subsequent CreateInvoice call.
func (s *InvoiceDeskService) ScanInvoice(ctx context.Context, req *invoicedeskpb.ScanInvoiceRequest) (*invoicedeskpb.ScanInvoiceResponse, error) {
	path := strings.TrimSpace(req.GetFilePath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "file_path is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file type %q", ext)
	}
	if info, err := os.Stat(path); err == nil && info.Size() > constants.MaxUploadBytes {
		return nil, status.Errorf(codes.InvalidArgument, "file exceeds %d byte limit", constants.MaxUploadBytes)
	}

	job, err := s.scanJobRepo.CreateScanJob(ctx, filepath.Base(path), constants.SourceTypeForExt(ext))
	if err != nil {
		s.logger.Error("failed to create scan job", "file", path, "error", err)
		return nil, status.Errorf(codes.Internal, "create scan job: %v", err)
	}
	if err := s.scanJobRepo.MarkRunning(ctx, job.ID); err != nil {
		s.logger.Warn("failed to mark scan job running", "job_id", job.ID, "error", err)
	}

	ocrCtx := ctx
	if s.scanTimeout > 0 {
		var cancel context.CancelFunc
		ocrCtx, cancel = context.WithTimeout(ctx, s.scanTimeout)
		defer cancel()
	}
	res, err := s.extractor.Extract(ocrCtx, path)
	if err != nil {
		s.failJob(ctx, job.ID, err.Error())
		return nil, status.Errorf(codes.FailedPrecondition, "ocr failed: %v", err)
	}
	if err := s.scanJobRepo.MarkOCROK(ctx, job.ID, res.Text, res.Confidence); err != nil {
		s.logger.Warn("failed to record ocr output", "job_id", job.ID, "error", err)
	}

	taxonomy, err := s.loadTaxonomy(ctx)
	if err != nil {
		s.failJob(ctx, job.ID, err.Error())
		return nil, status.Errorf(codes.Internal, "load categories: %v", err)
	}

	extracted := s.parser.Parse(res.Text, taxonomy)

	allowed := make([]string, 0, len(taxonomy))
	for _, c := range taxonomy {
		allowed = append(allowed, c.Name)
	}
	issues := review.Check(*extracted, allowed)

	raw, err := json.Marshal(extracted)
	if err != nil {
		s.failJob(ctx, job.ID, err.Error())
		return nil, status.Errorf(codes.Internal, "encode extraction: %v", err)
	}
	if err := s.scanJobRepo.MarkParsed(ctx, job.ID, raw, issues); err != nil {
		s.logger.Warn("failed to record extraction", "job_id", job.ID, "error", err)
	}

	matchedVendorID := ""
	if extracted.VendorGSTIN != "" || extracted.VendorName != "" {
		vendor, err := s.vendorRepo.MatchVendor(ctx, extracted.VendorGSTIN, extracted.VendorName)
		if err != nil {
			s.logger.Warn("vendor match failed", "job_id", job.ID, "error", err)
		} else if vendor != nil {
			matchedVendorID = vendor.ID.String()
		}
	}

	s.logger.Info("scan completed",
		"job_id", job.ID,
		"method", res.Method,
		"pages", res.Pages,
		"confidence", res.Confidence,
		"items", len(extracted.Items),
		"issues", len(issues),
	)

	return &invoicedeskpb.ScanInvoiceResponse{
		JobId:           job.ID.String(),
		Status:          string(constants.ScanStatusParsed),
		Confidence:      res.Confidence,
		Extraction:      utils.ToPBExtracted(*extracted),
		ReviewIssues:    issues,
		MatchedVendorId: matchedVendorID,
	}, nil
}

func (s *InvoiceDeskService) loadTaxonomy(ctx context.Context) ([]entity.Category, error) {
	cats, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, *c)
	}
	return out, nil
}

func (s *InvoiceDeskService) failJob(ctx context.Context, id uuid.UUID, message string) {
	if err := s.scanJobRepo.MarkFailed(ctx, id, message); err != nil {
		s.logger.Warn("failed to mark scan job failed", "job_id", id, "error", err)
	}
}
