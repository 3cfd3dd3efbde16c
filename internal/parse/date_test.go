package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extractDate", func() {
	var parser *Parser

	BeforeEach(func() {
		parser = newFixedParser()
	})

	When("a labeled numeric date is present", func() {
		It("reads day-first D/M/Y", func() {
			Expect(parser.extractDate("Invoice Date: 05/03/2026")).To(Equal("2026-03-05"))
		})

		It("accepts dash and dot separators", func() {
			Expect(parser.extractDate("Bill Date: 5-3-2026")).To(Equal("2026-03-05"))
			Expect(parser.extractDate("Date: 5.3.2026")).To(Equal("2026-03-05"))
		})

		It("promotes two-digit years to 2000+", func() {
			Expect(parser.extractDate("Date: 05/03/26")).To(Equal("2026-03-05"))
		})

		It("accepts the Created On label", func() {
			Expect(parser.extractDate("Created On: 28/12/2025")).To(Equal("2025-12-28"))
		})
	})

	When("a labeled month-name date is present", func() {
		It("reads D Monthname Y", func() {
			Expect(parser.extractDate("Invoice Date: 5 Mar 2026")).To(Equal("2026-03-05"))
		})

		It("matches month names on their 3-letter prefix, any case", func() {
			Expect(parser.extractDate("Date: 17 september 2025")).To(Equal("2025-09-17"))
		})
	})

	When("only unlabeled dates are present", func() {
		It("takes the first valid D/M/YYYY", func() {
			Expect(parser.extractDate("delivered 21/07/2025 by truck")).To(Equal("2025-07-21"))
		})

		It("falls through to D/M/YY", func() {
			Expect(parser.extractDate("ref 21/07/25 ok")).To(Equal("2025-07-21"))
		})

		It("lets D/M/YY claim a substring of an ISO-ordered date", func() {
			// The two-digit-year pattern runs before YYYY-M-D and grabs the
			// "25-7-21" suffix, so the stamp reads as 25 July 2021.
			Expect(parser.extractDate("stamp 2025-7-21 end")).To(Equal("2021-07-25"))
		})

		It("recognizes ISO-ordered YYYY-M-D when D/M/YY cannot claim it", func() {
			// The trailing digit breaks the word boundary the two-digit-year
			// pattern requires, so the cascade falls through to the ISO
			// ordering, whose day group simply stops after two digits.
			Expect(parser.extractDate("stamp 2025-7-210 end")).To(Equal("2025-07-21"))
		})

		It("skips candidates with an impossible month", func() {
			// 21/13 cannot be day/month, and the trailing year digits keep
			// the two-digit-year pattern from matching, so the clock wins.
			Expect(parser.extractDate("21/13/2020")).To(Equal("2026-03-15"))
		})
	})

	When("no date is found at all", func() {
		It("falls back to today", func() {
			Expect(parser.extractDate("no dates here")).To(Equal("2026-03-15"))
		})
	})
})
