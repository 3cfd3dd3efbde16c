package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// Tier 1: a date label immediately followed by D/M/Y numerics or
	// "D Monthname Y". Month names match on their 3-letter prefix.
	dateLabelNumericRe = regexp.MustCompile(`(?i)(?:Created\s*On|Invoice\s*Date|Bill\s*Date|Date)\s*[:\-]?\s*(\d{1,2})\s*[/\-.]\s*(\d{1,2})\s*[/\-.]\s*(\d{2,4})`)
	dateLabelMonthRe   = regexp.MustCompile(`(?i)(?:Created\s*On|Invoice\s*Date|Bill\s*Date|Date)\s*[:\-]?\s*(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[A-Za-z]*\s+(\d{2,4})`)

	// Tier 2: unlabeled positional patterns, tried in order. Day-first is the
	// convention on the invoices this was tuned against.
	dateBareDMY4 = regexp.MustCompile(`(\d{1,2})\s*[/\-.]\s*(\d{1,2})\s*[/\-.]\s*(\d{4})`)
	dateBareDMY2 = regexp.MustCompile(`(\d{1,2})\s*[/\-.]\s*(\d{1,2})\s*[/\-.]\s*(\d{2})\b`)
	dateBareYMD  = regexp.MustCompile(`(\d{4})\s*-\s*(\d{1,2})\s*-\s*(\d{1,2})`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// extractDate runs the two-tier date cascade and falls back to today.
// Output is always YYYY-MM-DD.
func (p *Parser) extractDate(text string) string {
	if m := dateLabelNumericRe.FindStringSubmatch(text); m != nil {
		if d, ok := calendarDate(m[1], m[2], m[3]); ok {
			return d
		}
	}
	if m := dateLabelMonthRe.FindStringSubmatch(text); m != nil {
		month := monthsByPrefix[strings.ToLower(m[2])]
		if d, ok := monthNameDate(m[1], month, m[3]); ok {
			return d
		}
	}

	if m := dateBareDMY4.FindStringSubmatch(text); m != nil {
		if d, ok := calendarDate(m[1], m[2], m[3]); ok {
			return d
		}
	}
	if m := dateBareDMY2.FindStringSubmatch(text); m != nil {
		if d, ok := calendarDate(m[1], m[2], m[3]); ok {
			return d
		}
	}
	if m := dateBareYMD.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return formatDate(year, time.Month(month), day)
	}

	return p.now().Format("2006-01-02")
}

// calendarDate validates day-first numeric fields (month 1-12, day 1-31,
// two-digit years promoted to 2000+YY) and normalizes.
func calendarDate(dayStr, monthStr, yearStr string) (string, bool) {
	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	return formatDate(year, time.Month(month), day), true
}

func monthNameDate(dayStr string, month time.Month, yearStr string) (string, bool) {
	day, _ := strconv.Atoi(dayStr)
	year, _ := strconv.Atoi(yearStr)
	if year < 100 {
		year += 2000
	}
	if month == 0 || day < 1 || day > 31 {
		return "", false
	}
	return formatDate(year, month, day), true
}

// formatDate normalizes overflowing day-of-month the same way the review UI's
// date widget does (time.Date carries the overflow into the next month).
func formatDate(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
