package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"invoicedesk/internal/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	Expect(err).NotTo(HaveOccurred())
	return d
}

var _ = Describe("itemRegion", func() {
	It("starts after the header row and stops at the first aggregate line", func() {
		lines := segmentLines(`Sharma Traders
Item Qty Rate Amount
Rice 10 80 800
Oil 2 100 200
Sub Total: 1000
Grand Total: 1050`)
		Expect(itemRegion(lines)).To(Equal([]string{"Rice 10 80 800", "Oil 2 100 200"}))
	})

	It("stops at a bare non-numeric total line", func() {
		lines := segmentLines("Particulars Qty Amount\nRice 10 800\nTotal Items\nFooter")
		Expect(itemRegion(lines)).To(Equal([]string{"Rice 10 800"}))
	})

	It("falls back to the whole document without a header row", func() {
		lines := segmentLines("Rice 10 800\nOil 2 200")
		Expect(itemRegion(lines)).To(Equal(lines))
	})

	It("treats a footer naming the same columns as an end, not a new header", func() {
		// "Total Items: 1 Qty 10" mentions both an item and a quantity
		// column; it must close the region rather than restart it past the
		// real rows.
		lines := segmentLines("Item Qty Rate Amount\nRice 10 80 800\nTotal Items: 1 Qty 10\nStray 1 1")
		Expect(itemRegion(lines)).To(Equal([]string{"Rice 10 80 800"}))
	})
})

var _ = Describe("extractItems", func() {
	parseItems := func(text string) []entity.ExtractedLineItem {
		return extractItems(segmentLines(text), groceryTaxonomy)
	}

	When("columns are separated by wide whitespace", func() {
		It("reads name, quantity, rate and ignores the printed total", func() {
			items := parseItems("Item   Qty   Rate   Total\nCooking Oil   2   450.00   900.00")
			Expect(items).To(HaveLen(1))
			Expect(items[0].Description).To(Equal("Cooking Oil"))
			Expect(items[0].Quantity.Equal(dec("2"))).To(BeTrue())
			Expect(items[0].UnitPrice.Equal(dec("450"))).To(BeTrue())
			Expect(items[0].Category).To(Equal("Oils"))
		})

		It("tolerates a slash between quantity and rate", func() {
			items := parseItems("Item   Qty   Rate   Total\nSugar  5/40  200")
			Expect(items).To(HaveLen(1))
			Expect(items[0].Quantity.Equal(dec("5"))).To(BeTrue())
			Expect(items[0].UnitPrice.Equal(dec("40"))).To(BeTrue())
		})
	})

	When("columns are single-space separated", func() {
		It("accepts a line whose qty x rate approximates the total", func() {
			items := parseItems("Item Qty Rate Total\nWheat Flour 10 42 425")
			Expect(items).To(HaveLen(1))
			Expect(items[0].Description).To(Equal("Wheat Flour"))
			Expect(items[0].Category).To(Equal("Grains"))
		})

		It("rejects a line whose total is far from qty x rate", func() {
			// 10 x 42 = 420, printed total 900: outside the 15%+1 band. The
			// two-number pattern then reads "Wheat Flour 10" + 42/900.
			items := parseItems("Item Qty Rate Total\nWheat Flour 10 42 900")
			Expect(items).To(HaveLen(1))
			Expect(items[0].Description).To(Equal("Wheat Flour 10"))
		})
	})

	When("lines carry a serial-number prefix", func() {
		It("strips the prefix once the printed total rules out a column read", func() {
			// With the total consistent, the single-space pattern wins and
			// keeps the "1." in the description; an inconsistent total lets
			// the serial pattern strip it.
			items := parseItems("Item Qty Rate Total\n1. Mustard Oil 3 210 900")
			Expect(items).To(HaveLen(1))
			Expect(items[0].Description).To(Equal("Mustard Oil"))
			Expect(items[0].Category).To(Equal("Oils"))
		})
	})

	When("a line has only two numbers", func() {
		It("derives the unit price when the first number is smaller", func() {
			items := parseItems("Rice 10 800")
			Expect(items).To(HaveLen(1))
			Expect(items[0].Quantity.Equal(dec("10"))).To(BeTrue())
			Expect(items[0].UnitPrice.Equal(dec("80"))).To(BeTrue())
		})

		It("takes both numbers literally otherwise", func() {
			items := parseItems("Rice 10 8")
			Expect(items).To(HaveLen(1))
			Expect(items[0].Quantity.Equal(dec("10"))).To(BeTrue())
			Expect(items[0].UnitPrice.Equal(dec("8"))).To(BeTrue())
		})

		It("rejects aggregate rows leaked into the region", func() {
			Expect(parseItems("Total 5 100")).To(BeEmpty())
		})
	})

	When("an item name wraps across two OCR lines", func() {
		It("concatenates the pending name onto the next numeric match", func() {
			items := parseItems("Item Qty Rate Total\nPremium Long Grain\nRice 10 80 800")
			Expect(items).To(HaveLen(1))
			Expect(items[0].Description).To(Equal("Premium Long Grain Rice"))
		})

		It("drops a pending name that never finds its numbers", func() {
			Expect(parseItems("Item Qty Rate Total\nOrphan Name")).To(BeEmpty())
		})
	})

	It("skips structural rows inside the region", func() {
		items := parseItems("Item Qty Rate Total\nHSN 1234 5678\nRice 10 80 800")
		Expect(items).To(HaveLen(1))
		Expect(items[0].Description).To(Equal("Rice"))
	})
})

var _ = Describe("fallbackItem", func() {
	It("charges the recovered subtotal as a single row", func() {
		it := fallbackItem("Sharma Traders", aggregateTotals{
			subtotal: dec("500"), total: dec("550"),
			cgst: decimal.Zero, sgst: decimal.Zero, cess: decimal.Zero,
		})
		Expect(it.Description).To(Equal("Purchase from Sharma Traders"))
		Expect(it.UnitPrice.Equal(dec("500"))).To(BeTrue())
		Expect(it.GSTRate.Equal(dec("10"))).To(BeTrue())
	})

	It("uses the generic description without a vendor name", func() {
		it := fallbackItem("", aggregateTotals{
			total:    dec("550"),
			subtotal: decimal.Zero, cgst: decimal.Zero, sgst: decimal.Zero, cess: decimal.Zero,
		})
		Expect(it.Description).To(Equal("Purchase (enter details manually)"))
		Expect(it.UnitPrice.Equal(dec("550"))).To(BeTrue())
		Expect(it.GSTRate.IsZero()).To(BeTrue())
	})

	It("emits a zero-value placeholder when nothing was recovered", func() {
		it := fallbackItem("", aggregateTotals{
			subtotal: decimal.Zero, cgst: decimal.Zero, sgst: decimal.Zero,
			cess: decimal.Zero, total: decimal.Zero,
		})
		Expect(it.Description).To(Equal("Item (enter details manually)"))
		Expect(it.UnitPrice.IsZero()).To(BeTrue())
		Expect(it.Quantity.Equal(dec("1"))).To(BeTrue())
	})
})
