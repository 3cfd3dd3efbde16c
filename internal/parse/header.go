package parse

import (
	"regexp"
	"strings"
)

var (
	// 15-character Indian GSTIN: 2 digits, 5 letters, 4 digits, letter,
	// alphanumeric, letter, alphanumeric.
	gstinRe = regexp.MustCompile(`[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z][A-Z][0-9A-Z]`)

	// Optional label, optional +91 prefix, then a 10-digit mobile number
	// starting 6-9.
	phoneRe = regexp.MustCompile(`(?i)(?:Ph(?:one)?|Tel|Mob(?:ile)?|Contact)?\s*[:\-]?\s*(?:\+91[\s\-]?)?([6-9]\d{9})`)

	// Invoice number cascade: the first pattern prefers a digit-leading
	// token, the second accepts any alphanumeric-leading token.
	invoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Bill|Invoice|Receipt)\s*(?:#|No\.?|Num(?:ber)?)\s*[:\-]?\s*(\d[\w\-/.]*)`),
		regexp.MustCompile(`(?i)(?:Bill|Invoice|Receipt)\s*(?:#|No\.?|Num(?:ber)?)\s*[:\-]?\s*([A-Z0-9][\w\-/.]+)`),
	}

	// Label only, used to bound the vendor-name search window.
	invoiceLabelRe = regexp.MustCompile(`(?i)(?:bill|invoice|receipt)\s*(?:#|no\.?|num)`)

	lettersOnlyRe    = regexp.MustCompile(`[^a-zA-Z\s]`)
	pureDigitsRe     = regexp.MustCompile(`^\d+$`)
	gstinLeadRe      = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}`)
	bareMobileRe     = regexp.MustCompile(`^[6-9]\d{9}$`)
	nonDigitRe       = regexp.MustCompile(`\D`)
	postalRunRe      = regexp.MustCompile(`\d{6}`)
	pipeTailRe       = regexp.MustCompile(`\|.*$`)
	trailingDigitsRe = regexp.MustCompile(`\s*\d{4,}$`)
)

// extractGSTIN returns the first GSTIN-shaped token anywhere in the text,
// uppercased, or "".
func extractGSTIN(text string) string {
	return strings.ToUpper(gstinRe.FindString(text))
}

// extractPhone returns the first Indian mobile number, or "".
func extractPhone(text string) string {
	if m := phoneRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// extractInvoiceNumber runs the labeled-number cascade. found is false when
// no pattern matched and the caller should synthesize a placeholder.
func extractInvoiceNumber(text string) (number string, found bool) {
	for _, re := range invoiceNumberPatterns {
		if m := re.FindStringSubmatch(text); m != nil && len(m[1]) >= 1 {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// vendorWindow bounds the vendor-name/address search: all lines strictly
// before the first invoice-number label line, or the first VendorWindow lines
// when no such line exists.
func (p *Parser) vendorWindow(lines []string) []string {
	for i, line := range lines {
		if invoiceLabelRe.MatchString(line) {
			if i > 0 {
				return lines[:i]
			}
			break
		}
	}
	n := p.cfg.VendorWindow
	if n > len(lines) {
		n = len(lines)
	}
	return lines[:n]
}

// extractVendorName returns the first line in the window that plausibly names
// the vendor. Vendor names are positional, not labeled: the heuristics reject
// structural keywords, digit strings, GSTINs, phone numbers, address noise
// and postal codes, and take the first survivor.
func (p *Parser) extractVendorName(window []string) string {
	for _, line := range window {
		letters := strings.TrimSpace(lettersOnlyRe.ReplaceAllString(line, ""))
		trimmed := strings.TrimSpace(line)
		if len(letters) < 3 ||
			p.stopWords.MatchString(letters) ||
			pureDigitsRe.MatchString(trimmed) ||
			gstinLeadRe.MatchString(trimmed) ||
			bareMobileRe.MatchString(nonDigitRe.ReplaceAllString(line, "")) ||
			p.vendorNoise.MatchString(letters) ||
			postalRunRe.MatchString(line) {
			continue
		}
		// OCR often glues column remnants after a pipe, and trailing digit
		// runs are usually phone/registration fragments.
		name := strings.TrimSpace(pipeTailRe.ReplaceAllString(line, ""))
		name = strings.TrimSpace(trailingDigitsRe.ReplaceAllString(name, ""))
		if len(name) >= 2 {
			return name
		}
	}
	return ""
}

// extractAddress returns the first window line carrying a 6-digit postal code
// or a known city token, or "".
func (p *Parser) extractAddress(window []string) string {
	for _, line := range window {
		if postalRunRe.MatchString(line) || p.cityNames.MatchString(line) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
