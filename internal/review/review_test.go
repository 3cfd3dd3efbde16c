package review

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"invoicedesk/internal/entity"
)

func cleanExtraction() entity.ExtractedInvoice {
	return entity.ExtractedInvoice{
		InvoiceNumber: "4521",
		InvoiceDate:   "2026-03-05",
		VendorName:    "Sharma Traders",
		VendorGSTIN:   "27AABCS1234A1Z5",
		Items: []entity.ExtractedLineItem{{
			Category:    "Grains",
			Description: "Basmati Rice",
			Quantity:    decimal.NewFromInt(10),
			UnitPrice:   decimal.NewFromInt(80),
			GSTRate:     decimal.NewFromInt(5),
		}},
		Subtotal:      decimal.NewFromInt(800),
		TotalAmount:   decimal.NewFromInt(840),
		ItemsSubtotal: decimal.NewFromInt(800),
	}
}

var _ = Describe("Check", func() {
	It("passes a clean extraction", func() {
		Expect(Check(cleanExtraction(), nil)).To(BeEmpty())
	})

	It("flags a missing vendor and GSTIN", func() {
		inv := cleanExtraction()
		inv.VendorName = ""
		inv.VendorGSTIN = ""
		issues := Check(inv, nil)
		Expect(issues).To(ContainElement("vendor name not detected"))
		Expect(issues).To(ContainElement("vendor GSTIN not detected"))
	})

	It("flags a synthesized invoice number", func() {
		inv := cleanExtraction()
		inv.InvoiceNumber = "INV-45671234"
		Expect(Check(inv, nil)).To(ContainElement(ContainSubstring("synthesized")))
	})

	It("flags a subtotal mismatch beyond one rupee", func() {
		inv := cleanExtraction()
		inv.ItemsSubtotal = decimal.NewFromInt(950)
		issues := Check(inv, nil)
		Expect(issues).To(ContainElement(ContainSubstring("950.00")))
	})

	It("tolerates a subtotal drift within one rupee", func() {
		inv := cleanExtraction()
		inv.ItemsSubtotal = decimal.NewFromFloat(800.60)
		Expect(Check(inv, nil)).To(BeEmpty())
	})

	It("flags a placeholder row", func() {
		inv := cleanExtraction()
		inv.Items[0].Description = "Item (enter details manually)"
		inv.Items[0].Quantity = decimal.NewFromInt(1)
		inv.Items[0].UnitPrice = decimal.Zero
		Expect(Check(inv, nil)).To(ContainElement(ContainSubstring("placeholder")))
	})

	It("rejects a category outside the allowed set", func() {
		inv := cleanExtraction()
		issues := Check(inv, []string{"Oils", "Other"})
		Expect(issues).To(ContainElement(ContainSubstring("does not match schema")))
	})
})

var _ = Describe("BuildExtractionJSONSchema", func() {
	It("rejects a payload without items", func() {
		inv := cleanExtraction()
		inv.Items = nil
		payload, err := json.Marshal(inv)
		Expect(err).NotTo(HaveOccurred())
		Expect(ValidateJSONAgainstSchema(BuildExtractionJSONSchema(nil), payload)).NotTo(Succeed())
	})

	It("rejects a malformed GSTIN", func() {
		inv := cleanExtraction()
		inv.VendorGSTIN = "NOT-A-GSTIN"
		payload, err := json.Marshal(inv)
		Expect(err).NotTo(HaveOccurred())
		Expect(ValidateJSONAgainstSchema(BuildExtractionJSONSchema(nil), payload)).NotTo(Succeed())
	})

	It("accepts an empty GSTIN", func() {
		inv := cleanExtraction()
		inv.VendorGSTIN = ""
		payload, err := json.Marshal(inv)
		Expect(err).NotTo(HaveOccurred())
		Expect(ValidateJSONAgainstSchema(BuildExtractionJSONSchema(nil), payload)).To(Succeed())
	})
})
