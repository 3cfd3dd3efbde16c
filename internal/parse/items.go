package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"invoicedesk/internal/entity"
)

var (
	// Region end markers: aggregate/footer lines that terminate the item
	// table once a header row has been seen.
	itemRegionEndPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^total\s*items`),
		regexp.MustCompile(`(?i)^total\s*quantity`),
		regexp.MustCompile(`(?i)^sub\s*total`),
		regexp.MustCompile(`(?i)^\s*cgst`),
		regexp.MustCompile(`(?i)^\s*sgst`),
		regexp.MustCompile(`(?i)^grand\s*total`),
		regexp.MustCompile(`(?i)^thank`),
	}
	totalWordRe   = regexp.MustCompile(`(?i)^total\s`)
	totalNumberRe = regexp.MustCompile(`(?i)^total\s+\d`)

	// Structural rows inside the region that are never items.
	itemSkipRe = regexp.MustCompile(`(?i)^(?:s\.?no|sr|#|item|description|particular|hsn|qty|quantity|rate|amount|total\s*items|total\s*qty|sub\s*total|grand|cgst|sgst|igst|cess|tax|net|gross|discount|round|balance|thank|page|bill\s*to|bill\s*no|created|date|invoice|receipt|address|phone|tel|mob|gst\s*num|billing)`)

	// Descriptions that are really aggregate rows leaked into the region.
	aggregateDescRe = regexp.MustCompile(`(?i)^(?:total|sub|grand|cgst|sgst|igst|cess|tax|balance|round)`)

	itemWideRe    = regexp.MustCompile(`^(.+?)\s{2,}(\d+(?:\.\d+)?)\s*[/\-]?\s*(\d[\d,]*(?:\.\d{1,2})?)\s+(\d[\d,]*(?:\.\d{1,2})?)\s*$`)
	itemNarrowRe  = regexp.MustCompile(`^(.+?)\s+(\d+(?:\.\d+)?)\s+(\d[\d,]*(?:\.\d{1,2})?)\s+(\d[\d,]*(?:\.\d{1,2})?)\s*$`)
	itemSerialRe  = regexp.MustCompile(`^\d+[.)]\s*(.+?)\s+(\d+(?:\.\d+)?)\s+(\d[\d,]*(?:\.\d{1,2})?)\s+(\d[\d,]*(?:\.\d{1,2})?)\s*$`)
	itemPairRe    = regexp.MustCompile(`^(.+?)\s+(\d+(?:\.\d+)?)\s+(\d[\d,]*(?:\.\d{1,2})?)\s*$`)
	itemNumbersRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(\d[\d,]*(?:\.\d{1,2})?)\s+(\d[\d,]*(?:\.\d{1,2})?)\s*$`)

	digitRunRe   = regexp.MustCompile(`\d{2,}`)
	letterLeadRe = regexp.MustCompile(`^[a-zA-Z]`)
)

// itemPattern is one entry in the ordered per-line cascade. Group 1 of re is
// the description; build turns the remaining groups into a line item or
// rejects the match, letting the next pattern try the same line.
type itemPattern struct {
	re    *regexp.Regexp
	build func(desc string, nums []string) (entity.ExtractedLineItem, bool)
}

// Fixed priority order; first accepting pattern consumes the line.
var itemPatterns = []itemPattern{
	{itemWideRe, buildQtyRate},   // name  qty [/unit] rate total, wide separator
	{itemNarrowRe, buildChecked}, // name qty rate total, qty x rate must approximate total
	{itemSerialRe, buildQtyRate}, // serial-prefixed: "1. name qty rate total"
	{itemPairRe, buildPair},      // name + two numbers, quantity/total ambiguity
}

// extractItems runs the line-item stage: bound the item table, then feed each
// line through the pattern cascade. Item names that wrapped onto their own
// OCR line are held in pending and prepended to the next numeric match.
func extractItems(lines []string, taxonomy []entity.Category) []entity.ExtractedLineItem {
	region := itemRegion(lines)

	var items []entity.ExtractedLineItem
	pending := ""
	for _, line := range region {
		if itemSkipRe.MatchString(strings.TrimSpace(line)) {
			continue
		}

		consumed := false
		for _, pat := range itemPatterns {
			m := pat.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			desc := strings.TrimSpace(pending + " " + m[1])
			pending = ""
			if it, ok := pat.build(desc, m[2:]); ok {
				it.Category = MatchCategory(desc, taxonomy)
				items = append(items, it)
				consumed = true
				break
			}
		}
		if consumed {
			continue
		}

		noNumbers := !digitRunRe.MatchString(line)
		switch {
		case noNumbers && letterLeadRe.MatchString(line) && len(line) < 40:
			// Short text-only line: probably an item name wrapped by OCR.
			pending = strings.TrimSpace(pending + " " + line)
		case pending != "" && !noNumbers:
			// Numbers-only continuation of the pending name: qty rate total.
			if m := itemNumbersRe.FindStringSubmatch(line); m != nil {
				desc := pending
				pending = ""
				if it, ok := buildQtyRate(desc, m[1:]); ok {
					it.Category = MatchCategory(desc, taxonomy)
					items = append(items, it)
				}
			}
		}
	}
	return items
}

// itemRegion bounds the candidate item table: everything after a header row
// naming an item column and a quantity/amount column, up to the first
// aggregate/footer marker. With no header row the entire document is the
// candidate region (best effort; see package doc for the false-positive
// trade-off).
func itemRegion(lines []string) []string {
	start, end := -1, len(lines)
	for i, line := range lines {
		low := strings.ToLower(line)
		// Only the first header row opens the region; footer lines like
		// "Total Items" mention the same column words and must close it,
		// not re-open it.
		if start == -1 &&
			(strings.Contains(low, "item") || strings.Contains(low, "particular")) &&
			(strings.Contains(low, "qty") || strings.Contains(low, "rate") ||
				strings.Contains(low, "amount") || strings.Contains(low, "total")) {
			start = i + 1
			continue
		}
		if start > -1 && regionEnds(low) {
			end = i
			break
		}
	}
	if start == -1 {
		return lines
	}
	return lines[start:end]
}

func regionEnds(low string) bool {
	for _, re := range itemRegionEndPatterns {
		if re.MatchString(low) {
			return true
		}
	}
	// A bare "total <non-digit>" line also closes the table.
	return totalWordRe.MatchString(low) && !totalNumberRe.MatchString(low)
}

// buildQtyRate accepts nums = (qty, rate, ...) and requires both positive.
// Any trailing total group is ignored.
func buildQtyRate(desc string, nums []string) (entity.ExtractedLineItem, bool) {
	qty := amount(nums[0])
	rate := amount(nums[1])
	if len(desc) < 2 || !qty.IsPositive() || !rate.IsPositive() {
		return entity.ExtractedLineItem{}, false
	}
	return lineItem(desc, qty, rate), true
}

// buildChecked additionally validates qty x rate against the printed line
// total, with a 15%+1 tolerance band for OCR digit misreads.
func buildChecked(desc string, nums []string) (entity.ExtractedLineItem, bool) {
	qty := amount(nums[0])
	rate := amount(nums[1])
	total := amount(nums[2])
	if len(desc) < 2 || !qty.IsPositive() || !rate.IsPositive() {
		return entity.ExtractedLineItem{}, false
	}
	tolerance := total.Mul(decimal.NewFromFloat(0.15)).Add(decimal.NewFromInt(1))
	if qty.Mul(rate).Sub(total).Abs().GreaterThan(tolerance) {
		return entity.ExtractedLineItem{}, false
	}
	return lineItem(desc, qty, rate), true
}

// buildPair handles lines with only two numbers, where quantity and total
// cannot be told apart from text alone. Tie-break: when the first number is
// smaller, treat the second as a line total and derive the unit price;
// otherwise take both literally as quantity and unit price. Heuristic, not a
// guarantee; the ambiguity is surfaced to review, never silently resolved.
func buildPair(desc string, nums []string) (entity.ExtractedLineItem, bool) {
	first := amount(nums[0])
	second := amount(nums[1])
	if len(desc) < 2 || !first.IsPositive() || !second.IsPositive() || aggregateDescRe.MatchString(desc) {
		return entity.ExtractedLineItem{}, false
	}
	if first.LessThan(second) {
		return lineItem(desc, first, second.Div(first).Round(2)), true
	}
	return lineItem(desc, first, second), true
}

func lineItem(desc string, qty, rate decimal.Decimal) entity.ExtractedLineItem {
	return entity.ExtractedLineItem{
		Description: desc,
		Quantity:    qty,
		UnitPrice:   rate,
		GSTRate:     decimal.Zero, // uniform rate stamped later from aggregates
	}
}

// fallbackItem keeps the item list non-empty when no line matched: a single
// synthesized row charged at the recovered subtotal/total, or an all-zero
// placeholder when no figure was recovered either.
func fallbackItem(vendorName string, agg aggregateTotals) entity.ExtractedLineItem {
	if agg.total.IsPositive() {
		base := agg.total
		if agg.subtotal.IsPositive() {
			base = agg.subtotal
		}
		rate := decimal.Zero
		if agg.subtotal.IsPositive() && agg.total.GreaterThan(agg.subtotal) {
			rate = agg.total.Sub(agg.subtotal).Div(agg.subtotal).Mul(hundred).Round(0)
		}
		desc := "Purchase (enter details manually)"
		if vendorName != "" {
			desc = "Purchase from " + vendorName
		}
		return entity.ExtractedLineItem{
			Category:    "Other",
			Description: desc,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   base,
			GSTRate:     rate,
		}
	}
	return entity.ExtractedLineItem{
		Category:    "Other",
		Description: "Item (enter details manually)",
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   decimal.Zero,
		GSTRate:     decimal.Zero,
	}
}
