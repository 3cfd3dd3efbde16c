package server

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invoicedeskpb "invoicedesk/gen/proto/invoicedesk/v1"
	"invoicedesk/internal/utils"
)

func (s *InvoiceDeskService) ListCategories(ctx context.Context, _ *invoicedeskpb.ListCategoriesRequest) (*invoicedeskpb.ListCategoriesResponse, error) {
	cats, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		return nil, status.Errorf(codes.Internal, "list categories: %v", err)
	}
	out := make([]*invoicedeskpb.Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, utils.ToPBCategory(c))
	}
	return &invoicedeskpb.ListCategoriesResponse{Categories: out}, nil
}
