// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"invoicedesk/gen/ent/invoice"
	"invoicedesk/gen/ent/vendor"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// VendorID holds the value of the "vendor_id" field.
	VendorID *uuid.UUID `json:"vendor_id,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber string `json:"invoice_number,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate time.Time `json:"invoice_date,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal decimal.Decimal `json:"subtotal,omitempty"`
	// Cgst holds the value of the "cgst" field.
	Cgst decimal.Decimal `json:"cgst,omitempty"`
	// Sgst holds the value of the "sgst" field.
	Sgst decimal.Decimal `json:"sgst,omitempty"`
	// Cess holds the value of the "cess" field.
	Cess decimal.Decimal `json:"cess,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount decimal.Decimal `json:"total_amount,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// TallyPushedAt holds the value of the "tally_pushed_at" field.
	TallyPushedAt *time.Time `json:"tally_pushed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges        InvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// Vendor holds the value of the vendor edge.
	Vendor *Vendor `json:"vendor,omitempty"`
	// Items holds the value of the items edge.
	Items []*InvoiceItem `json:"items,omitempty"`
	// Scans holds the value of the scans edge.
	Scans []*ScanJob `json:"scans,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// VendorOrErr returns the Vendor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) VendorOrErr() (*Vendor, error) {
	if e.Vendor != nil {
		return e.Vendor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: vendor.Label}
	}
	return nil, &NotLoadedError{edge: "vendor"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) ItemsOrErr() ([]*InvoiceItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// ScansOrErr returns the Scans value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) ScansOrErr() ([]*ScanJob, error) {
	if e.loadedTypes[2] {
		return e.Scans, nil
	}
	return nil, &NotLoadedError{edge: "scans"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldVendorID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case invoice.FieldSubtotal, invoice.FieldCgst, invoice.FieldSgst, invoice.FieldCess, invoice.FieldTotalAmount:
			values[i] = new(decimal.Decimal)
		case invoice.FieldInvoiceNumber, invoice.FieldStatus, invoice.FieldNotes:
			values[i] = new(sql.NullString)
		case invoice.FieldInvoiceDate, invoice.FieldTallyPushedAt, invoice.FieldCreatedAt, invoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (_m *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoice.FieldVendorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_id", values[i])
			} else if value.Valid {
				_m.VendorID = new(uuid.UUID)
				*_m.VendorID = *value.S.(*uuid.UUID)
			}
		case invoice.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = value.String
			}
		case invoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = value.Time
			}
		case invoice.FieldSubtotal:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value != nil {
				_m.Subtotal = *value
			}
		case invoice.FieldCgst:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field cgst", values[i])
			} else if value != nil {
				_m.Cgst = *value
			}
		case invoice.FieldSgst:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field sgst", values[i])
			} else if value != nil {
				_m.Sgst = *value
			}
		case invoice.FieldCess:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field cess", values[i])
			} else if value != nil {
				_m.Cess = *value
			}
		case invoice.FieldTotalAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value != nil {
				_m.TotalAmount = *value
			}
		case invoice.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case invoice.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case invoice.FieldTallyPushedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field tally_pushed_at", values[i])
			} else if value.Valid {
				_m.TallyPushedAt = new(time.Time)
				*_m.TallyPushedAt = value.Time
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (_m *Invoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVendor queries the "vendor" edge of the Invoice entity.
func (_m *Invoice) QueryVendor() *VendorQuery {
	return NewInvoiceClient(_m.config).QueryVendor(_m)
}

// QueryItems queries the "items" edge of the Invoice entity.
func (_m *Invoice) QueryItems() *InvoiceItemQuery {
	return NewInvoiceClient(_m.config).QueryItems(_m)
}

// QueryScans queries the "scans" edge of the Invoice entity.
func (_m *Invoice) QueryScans() *ScanJobQuery {
	return NewInvoiceClient(_m.config).QueryScans(_m)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Invoice) Unwrap() *Invoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.VendorID; v != nil {
		builder.WriteString("vendor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("invoice_number=")
	builder.WriteString(_m.InvoiceNumber)
	builder.WriteString(", ")
	builder.WriteString("invoice_date=")
	builder.WriteString(_m.InvoiceDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("subtotal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subtotal))
	builder.WriteString(", ")
	builder.WriteString("cgst=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cgst))
	builder.WriteString(", ")
	builder.WriteString("sgst=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sgst))
	builder.WriteString(", ")
	builder.WriteString("cess=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cess))
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	if v := _m.TallyPushedAt; v != nil {
		builder.WriteString("tally_pushed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
