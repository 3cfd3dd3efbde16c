package ocr

import (
	"regexp"
	"strings"
)

var (
	reDate   = regexp.MustCompile(`\b\d{1,2}\s*[/\-.]\s*\d{1,2}\s*[/\-.]\s*\d{2,4}\b`)
	reRupee  = regexp.MustCompile(`₹|\binr\b|\brs\.?\b`)
	reAmount = regexp.MustCompile(`\b\d{1,3}(,\d{3})*(\.\d{2})\b|\b\d+\.\d{2}\b`)
	reGSTIN  = regexp.MustCompile(`\b\d{2}[a-z]{5}\d{4}[a-z][0-9a-z][a-z][0-9a-z]\b`)
	reBill   = regexp.MustCompile(`\b(invoice|bill|gst|total)\b`)
)

func hasDatePattern(s string) bool   { return reDate.MatchString(s) }
func hasRupeePattern(s string) bool  { return reRupee.MatchString(s) }
func hasAmountPattern(s string) bool { return reAmount.MatchString(s) }
func hasGSTINPattern(s string) bool  { return reGSTIN.MatchString(s) }
func hasBillWords(s string) bool     { return reBill.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// boost for common Indian purchase-invoice artifacts: a date, rupee or
	// amount figures, a GSTIN, invoice vocabulary.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasDatePattern(txtL) {
		score += 0.15
	}
	if hasRupeePattern(txtL) {
		score += 0.1
	}
	if hasAmountPattern(txtL) {
		score += 0.15
	}
	if hasGSTINPattern(txtL) {
		score += 0.2
	}
	if hasBillWords(txtL) {
		score += 0.1
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}

var (
	reCRLF     = regexp.MustCompile(`\r\n?`)
	reBoxNoise = regexp.MustCompile(`[|¦]{2,}|[-_=]{5,}`)
	reBlanks   = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans OCR output: unix newlines, obvious table-border noise
// runs removed, blank-line runs collapsed.
func Normalize(s string) string {
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reBoxNoise.ReplaceAllString(s, "")
	s = reBlanks.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
