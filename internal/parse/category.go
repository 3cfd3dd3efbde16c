package parse

import (
	"regexp"
	"strings"

	"invoicedesk/internal/entity"
)

var categoryTokenRe = regexp.MustCompile(`[a-z]+`)

// MatchCategory resolves a free-text item description against the caller's
// category/subcategory taxonomy. Matching is case-insensitive: exact name,
// substring in either direction, then a word-token check so a subcategory
// like "Rice (Basmati)" still claims "Basmati Rice 5kg". Iteration order is
// the taxonomy order, first match wins; unmatched descriptions land in
// "Other". No fuzzy/edit-distance matching.
//
// Exported separately from Parse so the review UI can re-categorize after a
// manual description edit.
func MatchCategory(description string, taxonomy []entity.Category) string {
	name := strings.ToLower(strings.TrimSpace(description))
	for _, cat := range taxonomy {
		for _, sub := range cat.Subcategories {
			subName := strings.ToLower(strings.TrimSpace(sub.Name))
			if subName == name || strings.Contains(name, subName) || strings.Contains(subName, name) {
				return cat.Name
			}
			if tokensWithin(subName, name) {
				return cat.Name
			}
		}
	}
	return "Other"
}

// tokensWithin reports whether every alphabetic token of sub occurs somewhere
// in desc. Both arguments must already be lowercased.
func tokensWithin(sub, desc string) bool {
	tokens := categoryTokenRe.FindAllString(sub, -1)
	if len(tokens) == 0 {
		return false
	}
	for _, t := range tokens {
		if !strings.Contains(desc, t) {
			return false
		}
	}
	return true
}
