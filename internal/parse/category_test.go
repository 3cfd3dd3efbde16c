package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"invoicedesk/internal/entity"
)

var _ = Describe("MatchCategory", func() {
	It("matches a subcategory name exactly, ignoring case", func() {
		Expect(MatchCategory("cooking oil", groceryTaxonomy)).To(Equal("Oils"))
		Expect(MatchCategory("  SUGAR  ", groceryTaxonomy)).To(Equal("Grains"))
	})

	It("matches when the subcategory is a substring of the description", func() {
		Expect(MatchCategory("Cooking Oil 1L Refined", groceryTaxonomy)).To(Equal("Oils"))
	})

	It("matches when the description is a substring of the subcategory", func() {
		Expect(MatchCategory("Wheat", groceryTaxonomy)).To(Equal("Grains"))
	})

	It("matches on word tokens when word order and punctuation differ", func() {
		Expect(MatchCategory("Basmati Rice 5kg", groceryTaxonomy)).To(Equal("Grains"))
	})

	It("honours taxonomy order when several subcategories could claim", func() {
		overlapping := []entity.Category{
			{Name: "Snacks", Subcategories: []entity.Subcategory{{Name: "Oil Chips"}}},
			{Name: "Oils", Subcategories: []entity.Subcategory{{Name: "Oil"}}},
		}
		Expect(MatchCategory("Oil Chips 200g", overlapping)).To(Equal("Snacks"))
	})

	It("returns Other for unmatched descriptions", func() {
		Expect(MatchCategory("Stapler", groceryTaxonomy)).To(Equal("Other"))
	})

	It("returns Other for an empty taxonomy", func() {
		Expect(MatchCategory("Sugar", nil)).To(Equal("Other"))
	})
})
