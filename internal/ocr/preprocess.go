package ocr

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// preprocessImage writes a cleaned-up copy of the scan that tesseract reads
// better than a raw phone photo: grayscale, contrast and sharpen, mild
// brightness lift, upscaled when the source is too small for 300 DPI-ish
// character shapes.
//
// Returns (outPath, cleanup, err). Call cleanup() to remove temp files.
func preprocessImage(in, workDir string) (string, func(), error) {
	src, err := imaging.Open(in, imaging.AutoOrientation(true))
	if err != nil {
		return "", nil, fmt.Errorf("open image: %w", err)
	}

	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)
	img = imaging.AdjustBrightness(img, 10)

	if img.Bounds().Dx() < 1200 {
		img = imaging.Resize(img, 1600, 0, imaging.Lanczos)
	}

	tmpDir, err := os.MkdirTemp(workDir, "id-pre-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	out := filepath.Join(tmpDir, "scan.png")
	if err := imaging.Save(img, out); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("save preprocessed image: %w", err)
	}
	return out, cleanup, nil
}
