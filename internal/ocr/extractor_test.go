package ocr

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const fakeInvoiceText = `Sharma Traders
GSTIN: 27AABCS1234A1Z5
Bill No: 4521
Date: 05/03/2026
Rice 10 80.00 800.00
Grand Total: 800.00`

// fakeRunner scripts external commands per binary name. pdftoppm invocations
// additionally create the page images the extractor globs for.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	if err, ok := f.errs[name]; ok {
		return nil, []byte(name + " broke"), err
	}
	if name == "pdftoppm" {
		prefix := args[len(args)-1]
		Expect(os.WriteFile(prefix+"-1.png", []byte("png"), 0o644)).To(Succeed())
	}
	return []byte(f.outputs[name]), nil, nil
}

func newExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{WorkDir: GinkgoT().TempDir()}, nil)
	e.runner = r
	return e
}

var _ = Describe("Extractor", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("rejects unsupported extensions", func() {
		e := newExtractor(&fakeRunner{})
		_, err := e.Extract(ctx, "scan.tiff")
		Expect(err).To(MatchError(ContainSubstring("unsupported extension")))
	})

	When("scanning an image", func() {
		It("runs tesseract and scores the text", func() {
			r := &fakeRunner{outputs: map[string]string{"tesseract": fakeInvoiceText}}
			e := newExtractor(r)

			res, err := e.Extract(ctx, "invoice.jpg")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Method).To(Equal("image-ocr"))
			Expect(res.SourceType).To(Equal("IMAGE"))
			Expect(res.Pages).To(Equal(1))
			Expect(res.Text).To(ContainSubstring("Sharma Traders"))
			Expect(res.Confidence).To(BeNumerically(">", 0.5))
			Expect(r.calls).To(Equal([]string{"tesseract"}))
		})

		It("fails when OCR yields too little text", func() {
			r := &fakeRunner{outputs: map[string]string{"tesseract": "a b"}}
			e := newExtractor(r)

			_, err := e.Extract(ctx, "invoice.png")
			Expect(err).To(MatchError(ContainSubstring("too little text")))
		})
	})

	When("scanning a PDF", func() {
		It("prefers the embedded text layer", func() {
			r := &fakeRunner{outputs: map[string]string{"pdftotext": fakeInvoiceText + "\f second page"}}
			e := newExtractor(r)

			res, err := e.Extract(ctx, "invoice.pdf")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Method).To(Equal("pdf-text"))
			Expect(res.SourceType).To(Equal("PDF"))
			Expect(res.Pages).To(Equal(2))
			Expect(res.Confidence).To(BeNumerically("~", 0.95, 0.001))
		})

		It("rasterizes and OCRs when the text layer is empty", func() {
			r := &fakeRunner{outputs: map[string]string{
				"pdftotext": "",
				"tesseract": fakeInvoiceText,
			}}
			e := newExtractor(r)

			res, err := e.Extract(ctx, "invoice.pdf")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Method).To(Equal("pdf-ocr"))
			Expect(res.Pages).To(Equal(1))
			Expect(res.Text).To(ContainSubstring("Grand Total"))
			Expect(r.calls).To(ContainElements("pdftotext", "pdftoppm", "tesseract"))
		})

		It("surfaces a rasterization failure", func() {
			r := &fakeRunner{
				outputs: map[string]string{"pdftotext": ""},
				errs:    map[string]error{"pdftoppm": os.ErrPermission},
			}
			e := newExtractor(r)

			_, err := e.Extract(ctx, "invoice.pdf")
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("Normalize", func() {
	It("unifies newlines and strips table borders", func() {
		in := "Rice 10 80\r\n||||\r\n\n\n\nTotal 800"
		out := Normalize(in)
		Expect(out).NotTo(ContainSubstring("\r"))
		Expect(out).NotTo(ContainSubstring("||"))
		Expect(strings.Count(out, "\n\n\n")).To(BeZero())
	})
})

var _ = Describe("heuristicConfidence", func() {
	It("scores invoice-like text well above noise", func() {
		good := heuristicConfidence(fakeInvoiceText + strings.Repeat(" filler", 20))
		bad := heuristicConfidence("zzzz")
		Expect(good).To(BeNumerically(">", bad+0.3))
	})
})

var _ = Describe("pdfToOCR page cap", func() {
	It("honours MaxPages", func() {
		dir := GinkgoT().TempDir()
		r := &fakeRunner{outputs: map[string]string{"tesseract": "page text"}}
		e := NewExtractor(Config{WorkDir: dir, MaxPages: 1}, nil)
		e.runner = r

		// pdftoppm fake writes a single page, so the cap is not exceeded here;
		// the glob path is what we exercise.
		text, pages, _, err := e.pdfToOCR(context.Background(), filepath.Join(dir, "in.pdf"))
		Expect(err).NotTo(HaveOccurred())
		Expect(pages).To(Equal(1))
		Expect(text).To(ContainSubstring("page text"))
	})
})
