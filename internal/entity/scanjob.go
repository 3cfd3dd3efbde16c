package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanJob records one OCR pass over an uploaded invoice file, kept for audit
// and debugging. The raw OCR text is retained verbatim; the extraction JSON
// is the parser output as it was offered for review.
type ScanJob struct {
	ID             uuid.UUID `json:"id"`
	FileName       string    `json:"file_name"`
	SourceType     string    `json:"source_type"` // constants.SourcePDF | constants.SourceImage
	Status         string    `json:"status"`
	OCRText        string    `json:"ocr_text,omitempty"`
	Confidence     float32   `json:"confidence"`
	ExtractedJSON  string    `json:"extracted_json,omitempty"`
	ReviewIssues   []string  `json:"review_issues,omitempty"`
	FailureMessage string    `json:"failure_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
