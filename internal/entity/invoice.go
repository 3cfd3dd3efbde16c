package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceItem is one persisted invoice row.
type InvoiceItem struct {
	ID           uuid.UUID       `json:"id"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	GSTRate      decimal.Decimal `json:"gst_rate"`
	CategoryName string          `json:"category_name"`
}

// GSTAmount is the tax charged on the row at its GST rate.
func (it InvoiceItem) GSTAmount() decimal.Decimal {
	return it.Quantity.Mul(it.UnitPrice).Mul(it.GSTRate).Div(decimal.NewFromInt(100))
}

// TotalAmount is the row value including tax.
func (it InvoiceItem) TotalAmount() decimal.Decimal {
	return it.Quantity.Mul(it.UnitPrice).Add(it.GSTAmount())
}

// Invoice represents a persisted, human-approved purchase invoice.
type Invoice struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	VendorID      *uuid.UUID      `json:"vendor_id,omitempty"`
	VendorName    string          `json:"vendor_name,omitempty"`
	VendorGSTIN   string          `json:"vendor_gstin,omitempty"`
	Items         []InvoiceItem   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	Cess          decimal.Decimal `json:"cess"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	TallyPushedAt *time.Time      `json:"tally_pushed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
