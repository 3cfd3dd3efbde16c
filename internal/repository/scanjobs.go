package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"invoicedesk/constants"
	"invoicedesk/gen/ent"
	"invoicedesk/internal/entity"
	"invoicedesk/internal/utils"
)

type ScanJobRepository interface {
	CreateScanJob(ctx context.Context, fileName, sourceType string) (*entity.ScanJob, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	MarkOCROK(ctx context.Context, id uuid.UUID, ocrText string, confidence float32) error
	MarkParsed(ctx context.Context, id uuid.UUID, extracted json.RawMessage, reviewIssues []string) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	GetScanJob(ctx context.Context, id uuid.UUID) (*entity.ScanJob, error)
}

type scanJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewScanJobRepository(client *ent.Client, logger *slog.Logger) ScanJobRepository {
	return &scanJobRepository{
		client: client,
		logger: logger,
	}
}

func (r *scanJobRepository) CreateScanJob(ctx context.Context, fileName, sourceType string) (*entity.ScanJob, error) {
	job, err := r.client.ScanJob.Create().
		SetFileName(fileName).
		SetSourceType(sourceType).
		SetStatus(string(constants.ScanStatusQueued)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create scan job", "file_name", fileName, "error", err)
		return nil, err
	}
	r.logger.Info("scan job created", "job_id", job.ID, "file_name", fileName, "source_type", sourceType)
	return utils.ToScanJob(job), nil
}

func (r *scanJobRepository) MarkRunning(ctx context.Context, id uuid.UUID) error {
	return r.client.ScanJob.UpdateOneID(id).
		SetStatus(string(constants.ScanStatusRunning)).
		Exec(ctx)
}

func (r *scanJobRepository) MarkOCROK(ctx context.Context, id uuid.UUID, ocrText string, confidence float32) error {
	return r.client.ScanJob.UpdateOneID(id).
		SetStatus(string(constants.ScanStatusOCROK)).
		SetOcrText(ocrText).
		SetConfidence(confidence).
		Exec(ctx)
}

func (r *scanJobRepository) MarkParsed(ctx context.Context, id uuid.UUID, extracted json.RawMessage, reviewIssues []string) error {
	return r.client.ScanJob.UpdateOneID(id).
		SetStatus(string(constants.ScanStatusParsed)).
		SetExtractedJSON(extracted).
		SetReviewIssues(reviewIssues).
		Exec(ctx)
}

func (r *scanJobRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	r.logger.Warn("scan job failed", "job_id", id, "message", message)
	return r.client.ScanJob.UpdateOneID(id).
		SetStatus(string(constants.ScanStatusFailed)).
		SetFailureMessage(message).
		Exec(ctx)
}

func (r *scanJobRepository) GetScanJob(ctx context.Context, id uuid.UUID) (*entity.ScanJob, error) {
	job, err := r.client.ScanJob.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToScanJob(job), nil
}
