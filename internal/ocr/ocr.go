package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"invoicedesk/constants"
)

// MinTextLen is the smallest OCR output considered a usable scan. Anything
// shorter fails the job rather than feeding garbage into extraction.
const MinTextLen = 20

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir         string
	EnableTSVConfidence bool
	Preprocess          bool // grayscale/contrast pass before tesseract

	PSM int // 6 is good for the uniform text block of a printed invoice
	OEM int // 1 = LSTM; leave 0 to use default

	WorkDir string
}

type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.SourcePDF | constants.SourceImage
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = "./tmp"
	}
	return &Extractor{cfg: cfg, runner: cmdRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting ocr extraction", "path", path, "ext", ext)

	if _, ok := constants.AllowedExtensions[ext]; !ok {
		e.logger.Error("unsupported scan extension", "extension", ext)
		return ExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	var res ExtractionResult
	var err error
	switch constants.SourceTypeForExt(ext) {
	case constants.SourcePDF:
		res, err = e.extractPDF(ctx, path)
	default:
		res, err = e.extractImage(ctx, path)
	}
	res.Duration = time.Since(start)
	if err != nil {
		return res, err
	}
	if len(res.Text) < MinTextLen {
		e.logger.Warn("ocr produced too little text", "path", path, "bytes", len(res.Text))
		return res, fmt.Errorf("ocr produced too little text (%d bytes)", len(res.Text))
	}
	return res, nil
}
