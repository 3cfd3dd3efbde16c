package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// Runner abstracts the external scan tools (tesseract, pdftoppm, pdftotext)
// so tests can stub their output without the binaries installed.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// stderrLogCap bounds how much tool stderr lands in the log. Tesseract can
// emit one warning per glyph on a noisy scan.
const stderrLogCap = 4 << 10

type cmdRunner struct{}

func (cmdRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		slog.Error("scan tool failed",
			"tool", name,
			"args", args,
			"elapsed_ms", elapsed.Milliseconds(),
			"error", err,
			"stderr", clip(stderr.Bytes(), stderrLogCap),
		)
		return stdout.Bytes(), stderr.Bytes(), err
	}

	slog.Debug("scan tool ok",
		"tool", name,
		"args", args,
		"elapsed_ms", elapsed.Milliseconds(),
		"stdout_bytes", stdout.Len(),
	)
	return stdout.Bytes(), stderr.Bytes(), nil
}

func clip(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "...(clipped)"
}
