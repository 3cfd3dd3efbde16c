// Package parse reconstructs a structured purchase invoice from noisy OCR
// text. Every extraction stage is an ordered cascade of regular expressions
// with an explicit fallback value, so Parse always returns a complete
// ExtractedInvoice no matter how garbled or sparse the input is. Degraded
// input shows up as lower-quality fields for a human reviewer to correct,
// never as an error.
//
// The parser is a pure function over its input: it performs no I/O, holds no
// state between calls, and is safe to invoke concurrently. The only ambient
// input is the clock, which is injectable through Config and feeds exactly
// two fallbacks: the invoice date when no date is found, and the synthesized
// invoice number when no number pattern matches.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"invoicedesk/internal/entity"
)

// Config carries the tunable data behind the heuristics. The stop and noise
// lists are data rather than control flow so new invoice layouts can be
// accommodated without touching the cascade logic.
type Config struct {
	// VendorStopWords disqualify a vendor-name candidate line when the line,
	// reduced to letters, starts with one of these regex fragments. These are
	// structural invoice keywords that never name a vendor.
	VendorStopWords []string

	// VendorNoise are locality and address tokens that disqualify vendor-name
	// candidates (the vendor line sits above the address on the layouts this
	// was tuned against).
	VendorNoise []string

	// CityNames mark a line inside the vendor window as an address line.
	CityNames []string

	// VendorWindow is how many top-of-document lines are searched for the
	// vendor name and address when no invoice-number label line bounds the
	// search. Defaults to 6.
	VendorWindow int

	// Now supplies the clock for the two time-dependent fallbacks.
	// Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns the stop lists tuned against the original invoice
// corpus (Indian small-business purchase invoices).
func DefaultConfig() Config {
	return Config{
		VendorStopWords: []string{
			`tax`, `invoice`, `bill\s*to`, `bill\s*no`, `receipt`, `date`,
			`gst`, `gstin`, `no\.?`, `ref`, `created`, `phone`, `tel`, `mob`,
			`fax`, `email`, `address`, `billing`, `ship`, `hsn`, `sac`,
			`s\.?no`, `item`, `description`, `particular`, `qty`, `quantity`,
			`rate`, `amount`, `total`, `sub`, `grand`, `cgst`, `sgst`, `igst`,
			`cess`, `discount`, `net`, `gross`, `round`, `balance`, `thank`,
			`page`, `www\.`, `http`,
		},
		VendorNoise: []string{`volant`, `panjim`, `goa`, `mumbai`, `delhi`, `address`},
		CityNames: []string{
			`goa`, `mumbai`, `delhi`, `pune`, `bangalore`, `chennai`,
			`kolkata`, `hyderabad`,
		},
		VendorWindow: 6,
	}
}

// Parser extracts invoice fields from raw OCR text. Construct with New;
// a zero Parser is not usable.
type Parser struct {
	cfg Config
	now func() time.Time

	stopWords   *regexp.Regexp
	vendorNoise *regexp.Regexp
	cityNames   *regexp.Regexp
}

// New compiles the configured stop lists into a Parser. Zero-value Config
// fields fall back to DefaultConfig.
func New(cfg Config) *Parser {
	def := DefaultConfig()
	if len(cfg.VendorStopWords) == 0 {
		cfg.VendorStopWords = def.VendorStopWords
	}
	if len(cfg.VendorNoise) == 0 {
		cfg.VendorNoise = def.VendorNoise
	}
	if len(cfg.CityNames) == 0 {
		cfg.CityNames = def.CityNames
	}
	if cfg.VendorWindow <= 0 {
		cfg.VendorWindow = def.VendorWindow
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Parser{
		cfg:         cfg,
		now:         now,
		stopWords:   regexp.MustCompile(`(?i)^(?:` + strings.Join(cfg.VendorStopWords, "|") + `)`),
		vendorNoise: regexp.MustCompile(`(?i)^(?:` + strings.Join(cfg.VendorNoise, "|") + `)`),
		cityNames:   regexp.MustCompile(`(?i)(?:` + strings.Join(cfg.CityNames, "|") + `)`),
	}
}

// Parse extracts a structured invoice from raw OCR text. taxonomy is the
// caller-supplied category vocabulary used only to soft-match item
// descriptions; pass nil to classify everything as "Other".
func (p *Parser) Parse(text string, taxonomy []entity.Category) *entity.ExtractedInvoice {
	lines := segmentLines(text)

	inv := &entity.ExtractedInvoice{RawText: text}
	inv.VendorGSTIN = extractGSTIN(text)
	inv.VendorPhone = extractPhone(text)

	number, found := extractInvoiceNumber(text)
	if !found {
		// Placeholder the reviewer must correct; better than blocking the
		// whole scan on an unreadable label.
		number = p.syntheticInvoiceNumber()
	}
	inv.InvoiceNumber = number

	window := p.vendorWindow(lines)
	inv.VendorName = p.extractVendorName(window)
	inv.VendorAddress = p.extractAddress(window)
	inv.InvoiceDate = p.extractDate(text)

	items := extractItems(lines, taxonomy)
	agg := extractTotals(text)

	// One GST slab per invoice: the rate is inferred once from the aggregate
	// figures and stamped on every parsed item. Per-line rates are never read.
	if agg.subtotal.IsPositive() && agg.cgst.Add(agg.sgst).IsPositive() {
		rate := agg.cgst.Add(agg.sgst).Div(agg.subtotal).Mul(hundred).Round(0)
		for i := range items {
			items[i].GSTRate = rate
		}
	}

	if len(items) == 0 {
		items = append(items, fallbackItem(inv.VendorName, agg))
	}
	inv.Items = items

	itemsSubtotal := decimal.Zero
	for _, it := range items {
		itemsSubtotal = itemsSubtotal.Add(it.Quantity.Mul(it.UnitPrice))
	}
	inv.ItemsSubtotal = itemsSubtotal

	inv.Subtotal = agg.subtotal
	if inv.Subtotal.IsZero() {
		inv.Subtotal = itemsSubtotal
	}
	inv.CGST = agg.cgst
	inv.SGST = agg.sgst
	inv.Cess = agg.cess
	inv.TotalAmount = agg.total
	if !inv.TotalAmount.IsPositive() {
		inv.TotalAmount = itemsSubtotal
	}
	return inv
}

// syntheticInvoiceNumber builds the "INV-" placeholder from the last 8 digits
// of the current epoch-millisecond timestamp.
func (p *Parser) syntheticInvoiceNumber() string {
	ms := strconv.FormatInt(p.now().UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "INV-" + ms
}

var hundred = decimal.NewFromInt(100)
