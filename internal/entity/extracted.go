package entity

import "github.com/shopspring/decimal"

// ExtractedLineItem is one parsed invoice row, offered to the reviewer for
// correction before anything is persisted.
type ExtractedLineItem struct {
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
}

// ExtractedInvoice is the parser's best-effort reconstruction of an invoice
// from OCR text. Every field has a documented fallback, so a value of this
// type is always complete: Items is never empty and InvoiceNumber is never
// blank, however sparse the input was.
//
// Subtotal and TotalAmount carry the figures declared on the invoice when
// they were found, otherwise the item-derived sum. ItemsSubtotal always
// carries the item-derived sum so the review UI can flag a mismatch; the
// parser itself never reconciles the two.
type ExtractedInvoice struct {
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date"` // YYYY-MM-DD
	VendorName    string `json:"vendor_name"`
	VendorGSTIN   string `json:"vendor_gstin"`
	VendorPhone   string `json:"vendor_phone"`
	VendorAddress string `json:"vendor_address"`

	Items []ExtractedLineItem `json:"items"`

	Subtotal      decimal.Decimal `json:"subtotal"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	Cess          decimal.Decimal `json:"cess"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ItemsSubtotal decimal.Decimal `json:"items_subtotal"`

	// RawText is the verbatim OCR output, retained for audit display.
	RawText string `json:"raw_text"`
}
