package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"invoicedesk/internal/common"
)

// UnaryLogging tags every request with an id and logs its outcome.
func UnaryLogging(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			st, _ := status.FromError(err)
			logger.Warn("rpc failed",
				"request_id", requestID,
				"method", info.FullMethod,
				"code", st.Code().String(),
				"elapsed_ms", elapsed.Milliseconds(),
				"error", err,
			)
			return resp, err
		}
		logger.Info("rpc ok",
			"request_id", requestID,
			"method", info.FullMethod,
			"elapsed_ms", elapsed.Milliseconds(),
		)
		return resp, nil
	}
}
