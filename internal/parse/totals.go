package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// aggregateTotals holds the invoice-level figures declared in the text.
// Each field independently defaults to zero when its label was not found.
type aggregateTotals struct {
	subtotal decimal.Decimal
	cgst     decimal.Decimal
	sgst     decimal.Decimal
	cess     decimal.Decimal
	total    decimal.Decimal
}

var (
	subtotalRe = regexp.MustCompile(`(?i)sub\s*total\s*[:\-]?\s*₹?\s*(\d[\d,]*(?:\.\d{1,2})?)`)
	cgstRe     = regexp.MustCompile(`(?i)cgst\s*(?:@?\s*\d+(?:\.\d+)?%?)?\s*[:\-]?\s*₹?\s*(\d[\d,]*(?:\.\d{1,2})?)`)
	sgstRe     = regexp.MustCompile(`(?i)sgst\s*(?:@?\s*\d+(?:\.\d+)?%?)?\s*[:\-]?\s*₹?\s*(\d[\d,]*(?:\.\d{1,2})?)`)
	cessRe     = regexp.MustCompile(`(?i)cess\s*[:\-]?\s*₹?\s*(\d[\d,]*(?:\.\d{1,2})?)`)

	// Grand-total cascade: explicit label, then a bare line-leading
	// "Total <number>", then "Balance". First positive match wins.
	grandTotalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:grand\s*total|total\s*(?:amount|amt)?)\s*[:\-]?\s*₹?\s*(\d[\d,]*(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?im)^Total\s+(\d[\d,]*(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)balance\s*[:\-]?\s*₹?\s*(\d[\d,]*(?:\.\d{1,2})?)`),
	}
)

func extractTotals(text string) aggregateTotals {
	agg := aggregateTotals{
		subtotal: decimal.Zero,
		cgst:     decimal.Zero,
		sgst:     decimal.Zero,
		cess:     decimal.Zero,
		total:    decimal.Zero,
	}
	if m := subtotalRe.FindStringSubmatch(text); m != nil {
		agg.subtotal = amount(m[1])
	}
	if m := cgstRe.FindStringSubmatch(text); m != nil {
		agg.cgst = amount(m[1])
	}
	if m := sgstRe.FindStringSubmatch(text); m != nil {
		agg.sgst = amount(m[1])
	}
	if m := cessRe.FindStringSubmatch(text); m != nil {
		agg.cess = amount(m[1])
	}
	for _, re := range grandTotalPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			agg.total = amount(m[1])
			if agg.total.IsPositive() {
				break
			}
		}
	}
	return agg
}

// amount parses a matched money group, tolerating thousands separators. The
// capture groups only admit digit/comma/point runs, so a parse failure means
// a broken regex, not broken input; zero is the safe answer either way.
func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}
