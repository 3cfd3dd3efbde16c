package review

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"invoicedesk/internal/entity"
)

// mismatchTolerance is how far the item-derived subtotal may drift from the
// declared one before the reviewer is warned. One rupee absorbs rounding.
var mismatchTolerance = decimal.NewFromInt(1)

// Check reports everything about an extraction a reviewer should look at
// before approving. An empty slice means nothing stood out; it never means
// the figures are certainly right.
func Check(inv entity.ExtractedInvoice, allowedCategories []string) []string {
	var issues []string

	payload, err := json.Marshal(inv)
	if err != nil {
		return []string{fmt.Sprintf("extraction not serializable: %v", err)}
	}
	if err := ValidateJSONAgainstSchema(BuildExtractionJSONSchema(allowedCategories), payload); err != nil {
		issues = append(issues, err.Error())
	}

	if inv.VendorName == "" {
		issues = append(issues, "vendor name not detected")
	}
	if inv.VendorGSTIN == "" {
		issues = append(issues, "vendor GSTIN not detected")
	}
	if strings.HasPrefix(inv.InvoiceNumber, "INV-") {
		issues = append(issues, "invoice number was synthesized, not read from the document")
	}
	if inv.TotalAmount.IsZero() {
		issues = append(issues, "total amount is zero")
	}

	if inv.Subtotal.IsPositive() && inv.ItemsSubtotal.Sub(inv.Subtotal).Abs().GreaterThan(mismatchTolerance) {
		issues = append(issues, fmt.Sprintf(
			"line items sum to %s but the invoice declares %s",
			inv.ItemsSubtotal.StringFixed(2), inv.Subtotal.StringFixed(2)))
	}

	for i, it := range inv.Items {
		if strings.Contains(it.Description, "enter details manually") {
			issues = append(issues, "no line items recognized; a placeholder row was synthesized")
			continue
		}
		if !it.Quantity.IsPositive() || !it.UnitPrice.IsPositive() {
			issues = append(issues, fmt.Sprintf("item %d (%s) has a non-positive quantity or price", i+1, it.Description))
		}
	}

	return issues
}
