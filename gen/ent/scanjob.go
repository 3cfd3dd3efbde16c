// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"invoicedesk/gen/ent/invoice"
	"invoicedesk/gen/ent/scanjob"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ScanJob is the model entity for the ScanJob schema.
type ScanJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// InvoiceID holds the value of the "invoice_id" field.
	InvoiceID *uuid.UUID `json:"invoice_id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType string `json:"source_type,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// OcrText holds the value of the "ocr_text" field.
	OcrText string `json:"ocr_text,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// ExtractedJSON holds the value of the "extracted_json" field.
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	// ReviewIssues holds the value of the "review_issues" field.
	ReviewIssues []string `json:"review_issues,omitempty"`
	// FailureMessage holds the value of the "failure_message" field.
	FailureMessage string `json:"failure_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScanJobQuery when eager-loading is set.
	Edges        ScanJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScanJobEdges holds the relations/edges for other nodes in the graph.
type ScanJobEdges struct {
	// Invoice holds the value of the invoice edge.
	Invoice *Invoice `json:"invoice,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InvoiceOrErr returns the Invoice value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScanJobEdges) InvoiceOrErr() (*Invoice, error) {
	if e.Invoice != nil {
		return e.Invoice, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: invoice.Label}
	}
	return nil, &NotLoadedError{edge: "invoice"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScanJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scanjob.FieldInvoiceID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case scanjob.FieldExtractedJSON, scanjob.FieldReviewIssues:
			values[i] = new([]byte)
		case scanjob.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case scanjob.FieldFileName, scanjob.FieldSourceType, scanjob.FieldStatus, scanjob.FieldOcrText, scanjob.FieldFailureMessage:
			values[i] = new(sql.NullString)
		case scanjob.FieldCreatedAt, scanjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case scanjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScanJob fields.
func (_m *ScanJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scanjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case scanjob.FieldInvoiceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_id", values[i])
			} else if value.Valid {
				_m.InvoiceID = new(uuid.UUID)
				*_m.InvoiceID = *value.S.(*uuid.UUID)
			}
		case scanjob.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case scanjob.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = value.String
			}
		case scanjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case scanjob.FieldOcrText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_text", values[i])
			} else if value.Valid {
				_m.OcrText = value.String
			}
		case scanjob.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case scanjob.FieldExtractedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedJSON); err != nil {
					return fmt.Errorf("unmarshal field extracted_json: %w", err)
				}
			}
		case scanjob.FieldReviewIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field review_issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReviewIssues); err != nil {
					return fmt.Errorf("unmarshal field review_issues: %w", err)
				}
			}
		case scanjob.FieldFailureMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_message", values[i])
			} else if value.Valid {
				_m.FailureMessage = value.String
			}
		case scanjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case scanjob.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ScanJob.
// This includes values selected through modifiers, order, etc.
func (_m *ScanJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInvoice queries the "invoice" edge of the ScanJob entity.
func (_m *ScanJob) QueryInvoice() *InvoiceQuery {
	return NewScanJobClient(_m.config).QueryInvoice(_m)
}

// Update returns a builder for updating this ScanJob.
// Note that you need to call ScanJob.Unwrap() before calling this method if this ScanJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScanJob) Update() *ScanJobUpdateOne {
	return NewScanJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScanJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScanJob) Unwrap() *ScanJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScanJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScanJob) String() string {
	var builder strings.Builder
	builder.WriteString("ScanJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.InvoiceID; v != nil {
		builder.WriteString("invoice_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(_m.SourceType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("ocr_text=")
	builder.WriteString(_m.OcrText)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("extracted_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedJSON))
	builder.WriteString(", ")
	builder.WriteString("review_issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewIssues))
	builder.WriteString(", ")
	builder.WriteString("failure_message=")
	builder.WriteString(_m.FailureMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScanJobs is a parsable slice of ScanJob.
type ScanJobs []*ScanJob
