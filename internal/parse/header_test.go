package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extractGSTIN", func() {
	It("finds a GSTIN embedded anywhere in the text", func() {
		Expect(extractGSTIN("noise 27AABCS1234A1Z5 more noise")).To(Equal("27AABCS1234A1Z5"))
	})

	It("returns the first of several candidates", func() {
		Expect(extractGSTIN("24CCCCC0000C1Z5 then 27BBBBB0000B1Z5")).To(Equal("24CCCCC0000C1Z5"))
	})

	It("returns empty when nothing matches", func() {
		Expect(extractGSTIN("no tax id here 123456")).To(Equal(""))
	})

	It("rejects malformed identifiers", func() {
		// letters where digits belong
		Expect(extractGSTIN("2XAABCS1234A1Z5")).To(Equal(""))
	})
})

var _ = Describe("extractPhone", func() {
	It("reads a labeled number with +91 prefix", func() {
		Expect(extractPhone("Phone: +91 9876543210")).To(Equal("9876543210"))
	})

	It("reads an unlabeled bare mobile number", func() {
		Expect(extractPhone("call 8123456789 anytime")).To(Equal("8123456789"))
	})

	It("ignores numbers that cannot start an Indian mobile", func() {
		Expect(extractPhone("ref 1234567890")).To(Equal(""))
	})
})

var _ = Describe("extractInvoiceNumber", func() {
	It("prefers a digit-leading token", func() {
		n, ok := extractInvoiceNumber("Invoice No: 4521/A")
		Expect(ok).To(BeTrue())
		Expect(n).To(Equal("4521/A"))
	})

	It("accepts an alphanumeric token via the second pattern", func() {
		n, ok := extractInvoiceNumber("Bill # AB-2031")
		Expect(ok).To(BeTrue())
		Expect(n).To(Equal("AB-2031"))
	})

	It("reports not-found for unlabeled text", func() {
		_, ok := extractInvoiceNumber("some receipt text 12345")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("vendor name and address", func() {
	var parser *Parser

	BeforeEach(func() {
		parser = newFixedParser()
	})

	It("bounds the search window at the invoice-number label line", func() {
		lines := segmentLines("Patel Packaging\nGST Invoice\nBill No: 12\nNot A Vendor Ltd")
		window := parser.vendorWindow(lines)
		Expect(window).To(Equal([]string{"Patel Packaging", "GST Invoice"}))
	})

	It("falls back to the top-of-document window without a label line", func() {
		lines := segmentLines("a\nb\nc\nd\ne\nf\ng\nh")
		Expect(parser.vendorWindow(lines)).To(HaveLen(6))
	})

	It("skips structural keywords and picks the first real name", func() {
		window := []string{"TAX INVOICE", "GSTIN: 27AABCS1234A1Z5", "Patel Packaging"}
		Expect(parser.extractVendorName(window)).To(Equal("Patel Packaging"))
	})

	It("rejects lines carrying a postal code", func() {
		window := []string{"MG Road Panjim 403001", "Metro Utilities"}
		Expect(parser.extractVendorName(window)).To(Equal("Metro Utilities"))
	})

	It("strips pipe-glued column remnants and trailing digit runs", func() {
		window := []string{"Sharma Traders | Estd 1998"}
		Expect(parser.extractVendorName(window)).To(Equal("Sharma Traders"))
	})

	It("returns empty when every candidate is disqualified", func() {
		window := []string{"TAX INVOICE", "9876543210", "403001"}
		Expect(parser.extractVendorName(window)).To(Equal(""))
	})

	It("treats a postal-code line as the address", func() {
		window := []string{"Sharma Traders", "Shop 4, FC Road 411004"}
		Expect(parser.extractAddress(window)).To(Equal("Shop 4, FC Road 411004"))
	})

	It("treats a known city token as the address", func() {
		window := []string{"Sharma Traders", "Andheri East, Mumbai"}
		Expect(parser.extractAddress(window)).To(Equal("Andheri East, Mumbai"))
	})

	It("returns empty when no line looks like an address", func() {
		Expect(parser.extractAddress([]string{"Sharma Traders"})).To(Equal(""))
	})
})
