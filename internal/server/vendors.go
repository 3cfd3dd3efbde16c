package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invoicedeskpb "invoicedesk/gen/proto/invoicedesk/v1"
	"invoicedesk/internal/common"
	"invoicedesk/internal/repository"
	"invoicedesk/internal/utils"
)

func (s *InvoiceDeskService) ListVendors(ctx context.Context, _ *invoicedeskpb.ListVendorsRequest) (*invoicedeskpb.ListVendorsResponse, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		s.logger.Error("failed to list vendors", "error", err)
		return nil, status.Errorf(codes.Internal, "list vendors: %v", err)
	}
	out := make([]*invoicedeskpb.Vendor, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, utils.ToPBVendor(v))
	}
	return &invoicedeskpb.ListVendorsResponse{Vendors: out}, nil
}

func (s *InvoiceDeskService) CreateVendor(ctx context.Context, req *invoicedeskpb.CreateVendorRequest) (*invoicedeskpb.CreateVendorResponse, error) {
	name := strings.TrimSpace(req.GetName())
	gstin := strings.ToUpper(strings.TrimSpace(req.GetGstin()))

	v := common.NewValidator().
		Field("name", name, common.Required).
		Field("gstin", gstin, common.GSTIN)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.CreateVendor(ctx, &repository.CreateVendorRequest{
		Name:    name,
		GSTIN:   gstin,
		Phone:   strings.TrimSpace(req.GetPhone()),
		Address: strings.TrimSpace(req.GetAddress()),
	})
	if err != nil {
		s.logger.Error("failed to create vendor", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create vendor: %v", err)
	}
	s.logger.Info("vendor created", "vendor_id", vendor.ID, "name", vendor.Name)

	return &invoicedeskpb.CreateVendorResponse{Vendor: utils.ToPBVendor(vendor)}, nil
}
