package ocr

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOCR(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OCR Suite")
}
