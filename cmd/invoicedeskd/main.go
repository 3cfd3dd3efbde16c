package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	invoicedeskpb "invoicedesk/gen/proto/invoicedesk/v1"
	"invoicedesk/internal/common"
	"invoicedesk/internal/export"
	"invoicedesk/internal/ocr"
	"invoicedesk/internal/parse"
	repo "invoicedesk/internal/repository"
	"invoicedesk/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	vendorRepo := repo.NewVendorRepository(entc, logger)
	categoryRepo := repo.NewCategoryRepository(entc, logger)
	invoiceRepo := repo.NewInvoiceRepository(entc, vendorRepo, categoryRepo, logger)
	scanJobRepo := repo.NewScanJobRepository(entc, logger)

	if err := categoryRepo.SeedDefaults(ctx); err != nil {
		logger.Error("failed to seed categories", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		logger.Error("failed to create upload directory", "dir", cfg.Upload.Dir, "error", err)
		os.Exit(1)
	}

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.TesseractBin,
		Pdftoppm:      cfg.OCR.PDFConverter,
		TesseractLang: cfg.OCR.Languages,
		TessdataDir:   cfg.OCR.TessdataDir,
		WorkDir:       cfg.OCR.WorkDir,
	}, logger)
	parser := parse.New(parse.DefaultConfig())
	exporter := export.NewService(invoiceRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.UnaryLogging(logger)),
	)

	svc := server.NewInvoiceDeskService(server.Deps{
		InvoiceRepo:  invoiceRepo,
		VendorRepo:   vendorRepo,
		CategoryRepo: categoryRepo,
		ScanJobRepo:  scanJobRepo,
		Extractor:    extractor,
		Parser:       parser,
		Exporter:     exporter,
		ScanTimeout:  cfg.OCR.Timeout,
		Logger:       logger,
	})
	invoicedeskpb.RegisterInvoiceDeskServiceServer(grpcServer, svc)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("invoicedesk listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("grpc serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
