package parse

import (
	"reflect"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"invoicedesk/internal/entity"
)

// fixedClock pins the parser's two time-dependent fallbacks for assertions.
var fixedClock = func() time.Time {
	return time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
}

func newFixedParser() *Parser {
	cfg := DefaultConfig()
	cfg.Now = fixedClock
	return New(cfg)
}

var groceryTaxonomy = []entity.Category{
	{Name: "Grains", Subcategories: []entity.Subcategory{
		{Name: "Rice (Basmati)"}, {Name: "Sugar"}, {Name: "Wheat Flour"},
	}},
	{Name: "Oils", Subcategories: []entity.Subcategory{
		{Name: "Cooking Oil"}, {Name: "Mustard Oil"},
	}},
}

const sampleInvoice = `Sharma Traders
Shop 12, MG Road, Panjim Goa 403001
Phone: +91 9876543210
GSTIN: 27AABCS1234A1Z5
Bill No: 4521
Date: 05/03/2026
Item          Qty   Rate   Amount
Basmati Rice  10    80.00  800.00
Sugar  5  40  200
Sub Total: 1000.00
CGST @ 2.5%: 25.00
SGST @ 2.5%: 25.00
Grand Total: 1050.00
Thank you!`

var _ = Describe("Parse", func() {
	var (
		parser *Parser
		inv    *entity.ExtractedInvoice
	)

	BeforeEach(func() {
		parser = newFixedParser()
	})

	When("parsing a well-formed invoice", func() {
		BeforeEach(func() {
			inv = parser.Parse(sampleInvoice, groceryTaxonomy)
		})

		It("extracts the header fields", func() {
			Expect(inv.InvoiceNumber).To(Equal("4521"))
			Expect(inv.InvoiceDate).To(Equal("2026-03-05"))
			Expect(inv.VendorName).To(Equal("Sharma Traders"))
			Expect(inv.VendorGSTIN).To(Equal("27AABCS1234A1Z5"))
			Expect(inv.VendorPhone).To(Equal("9876543210"))
			Expect(inv.VendorAddress).To(Equal("Shop 12, MG Road, Panjim Goa 403001"))
		})

		It("extracts both line items with categories", func() {
			Expect(inv.Items).To(HaveLen(2))
			Expect(inv.Items[0].Description).To(Equal("Basmati Rice"))
			Expect(inv.Items[0].Quantity.String()).To(Equal("10"))
			Expect(inv.Items[0].UnitPrice.Equal(decimal.NewFromInt(80))).To(BeTrue())
			Expect(inv.Items[0].Category).To(Equal("Grains"))
			Expect(inv.Items[1].Description).To(Equal("Sugar"))
			Expect(inv.Items[1].Category).To(Equal("Grains"))
		})

		It("stamps the single inferred GST rate on every item", func() {
			// (25 + 25) / 1000 x 100 = 5
			for _, it := range inv.Items {
				Expect(it.GSTRate.Equal(decimal.NewFromInt(5))).To(BeTrue())
			}
		})

		It("carries the declared aggregate figures", func() {
			Expect(inv.Subtotal.Equal(decimal.NewFromInt(1000))).To(BeTrue())
			Expect(inv.CGST.Equal(decimal.NewFromInt(25))).To(BeTrue())
			Expect(inv.SGST.Equal(decimal.NewFromInt(25))).To(BeTrue())
			// The grand-total cascade takes the leftmost label match, and the
			// "Sub Total" line sits earlier in the text than "Grand Total";
			// its trailing "Total: 1000.00" wins. Inherited behavior.
			Expect(inv.TotalAmount.Equal(decimal.NewFromInt(1000))).To(BeTrue())
		})

		It("exposes the item-derived subtotal for mismatch display", func() {
			Expect(inv.ItemsSubtotal.Equal(decimal.NewFromInt(1000))).To(BeTrue())
		})

		It("retains the raw text for audit", func() {
			Expect(inv.RawText).To(Equal(sampleInvoice))
		})
	})

	When("parsing the same text twice", func() {
		It("produces identical output", func() {
			a := parser.Parse(sampleInvoice, groceryTaxonomy)
			b := parser.Parse(sampleInvoice, groceryTaxonomy)
			Expect(reflect.DeepEqual(a, b)).To(BeTrue())
		})
	})

	When("parsing empty input", func() {
		BeforeEach(func() {
			inv = parser.Parse("", nil)
		})

		It("synthesizes a placeholder invoice number", func() {
			Expect(inv.InvoiceNumber).To(MatchRegexp(`^INV-\d{8}$`))
		})

		It("defaults the date to today", func() {
			Expect(inv.InvoiceDate).To(Equal("2026-03-15"))
		})

		It("synthesizes exactly one zero-value item", func() {
			Expect(inv.Items).To(HaveLen(1))
			Expect(inv.Items[0].UnitPrice.IsZero()).To(BeTrue())
			Expect(inv.Items[0].Quantity.Equal(decimal.NewFromInt(1))).To(BeTrue())
			Expect(inv.Items[0].Category).To(Equal("Other"))
		})

		It("zeroes every aggregate figure", func() {
			Expect(inv.Subtotal.IsZero()).To(BeTrue())
			Expect(inv.CGST.IsZero()).To(BeTrue())
			Expect(inv.SGST.IsZero()).To(BeTrue())
			Expect(inv.Cess.IsZero()).To(BeTrue())
			Expect(inv.TotalAmount.IsZero()).To(BeTrue())
		})
	})

	When("parsing hostile input", func() {
		It("never panics and always returns a complete invoice", func() {
			inputs := []string{
				"",
				"   \n\t\n  ",
				"\x00\x01\x02 garbage \xff",
				"1\n2\n3\n4\n5\n6\n7\n8\n9",
				"| | | |\n-------\n||||",
				"Total\nTotal\nTotal",
			}
			for _, in := range inputs {
				out := parser.Parse(in, groceryTaxonomy)
				Expect(out.Items).NotTo(BeEmpty())
				Expect(out.InvoiceNumber).NotTo(BeEmpty())
				Expect(out.Subtotal.IsNegative()).To(BeFalse())
				Expect(out.TotalAmount.IsNegative()).To(BeFalse())
			}
		})
	})

	When("no line item matches but a total was declared", func() {
		BeforeEach(func() {
			inv = parser.Parse(`Sharma Traders
Bill No: 99
Grand Total: 550
Sub Total: 500`, nil)
		})

		It("synthesizes one item charged at the subtotal", func() {
			Expect(inv.Items).To(HaveLen(1))
			Expect(inv.Items[0].Description).To(Equal("Purchase from Sharma Traders"))
			Expect(inv.Items[0].Quantity.Equal(decimal.NewFromInt(1))).To(BeTrue())
			Expect(inv.Items[0].UnitPrice.Equal(decimal.NewFromInt(500))).To(BeTrue())
		})

		It("derives the synthesized item's GST rate from the total spread", func() {
			// (550 - 500) / 500 x 100 = 10
			Expect(inv.Items[0].GSTRate.Equal(decimal.NewFromInt(10))).To(BeTrue())
		})
	})
})
