// scaninvoice runs the OCR + extraction pipeline over a single invoice file
// and prints the proposed extraction as JSON. Useful for tuning tesseract
// settings against a sample invoice without a running server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"invoicedesk/constants"
	"invoicedesk/internal/entity"
	"invoicedesk/internal/ocr"
	"invoicedesk/internal/parse"
	"invoicedesk/internal/review"
)

func main() {
	fs := ff.NewFlagSet("scaninvoice")
	var (
		file       = fs.StringLong("file", "", "invoice file to scan (pdf/jpg/png/webp)")
		lang       = fs.StringLong("lang", "eng", "tesseract language")
		tessdata   = fs.StringLong("tessdata", "", "tessdata directory")
		dpi        = fs.IntLong("dpi", 300, "rasterization DPI for scanned PDFs")
		preprocess = fs.BoolLong("preprocess", "grayscale/contrast pass before OCR")
		rawText    = fs.BoolLong("raw-text", "include the raw OCR text in the output")
		verbose    = fs.BoolLong("verbose", "debug logging")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("INVOICEDESK"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *file == "" {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintln(os.Stderr, "error: --file is required")
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	extractor := ocr.NewExtractor(ocr.Config{
		TesseractLang: *lang,
		TessdataDir:   *tessdata,
		DPI:           *dpi,
		Preprocess:    *preprocess,
	}, logger)

	res, err := extractor.Extract(ctx, *file)
	if err != nil {
		logger.Error("extraction failed", "file", *file, "error", err)
		os.Exit(1)
	}

	taxonomy := defaultTaxonomy()
	parser := parse.New(parse.DefaultConfig())
	extracted := parser.Parse(res.Text, taxonomy)

	allowed := make([]string, 0, len(taxonomy))
	for _, c := range taxonomy {
		allowed = append(allowed, c.Name)
	}
	issues := review.Check(*extracted, allowed)

	if !*rawText {
		extracted.RawText = ""
	}

	out := struct {
		Method       string                   `json:"method"`
		Pages        int                      `json:"pages"`
		Confidence   float32                  `json:"confidence"`
		Extraction   *entity.ExtractedInvoice `json:"extraction"`
		ReviewIssues []string                 `json:"review_issues"`
	}{
		Method:       res.Method,
		Pages:        res.Pages,
		Confidence:   res.Confidence,
		Extraction:   extracted,
		ReviewIssues: issues,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode failed", "error", err)
		os.Exit(1)
	}
}

// defaultTaxonomy mirrors the seed categories so the CLI classifies items the
// same way a freshly seeded server does.
func defaultTaxonomy() []entity.Category {
	out := make([]entity.Category, 0, len(constants.DefaultTaxonomy))
	for _, c := range constants.DefaultTaxonomy {
		cat := entity.Category{ID: uuid.New(), Name: c.Name}
		for _, sub := range c.Subcategories {
			cat.Subcategories = append(cat.Subcategories, entity.Subcategory{
				ID:   uuid.New(),
				Name: sub,
			})
		}
		out = append(out, cat)
	}
	return out
}
