// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"invoicedesk/gen/ent/category"
	"invoicedesk/gen/ent/subcategory"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Subcategory is the model entity for the Subcategory schema.
type Subcategory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID uuid.UUID `json:"category_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubcategoryQuery when eager-loading is set.
	Edges        SubcategoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubcategoryEdges holds the relations/edges for other nodes in the graph.
type SubcategoryEdges struct {
	// Category holds the value of the category edge.
	Category *Category `json:"category,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CategoryOrErr returns the Category value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubcategoryEdges) CategoryOrErr() (*Category, error) {
	if e.Category != nil {
		return e.Category, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: category.Label}
	}
	return nil, &NotLoadedError{edge: "category"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Subcategory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subcategory.FieldName:
			values[i] = new(sql.NullString)
		case subcategory.FieldID, subcategory.FieldCategoryID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Subcategory fields.
func (_m *Subcategory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subcategory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case subcategory.FieldCategoryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value != nil {
				_m.CategoryID = *value
			}
		case subcategory.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Subcategory.
// This includes values selected through modifiers, order, etc.
func (_m *Subcategory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCategory queries the "category" edge of the Subcategory entity.
func (_m *Subcategory) QueryCategory() *CategoryQuery {
	return NewSubcategoryClient(_m.config).QueryCategory(_m)
}

// Update returns a builder for updating this Subcategory.
// Note that you need to call Subcategory.Unwrap() before calling this method if this Subcategory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Subcategory) Update() *SubcategoryUpdateOne {
	return NewSubcategoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Subcategory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Subcategory) Unwrap() *Subcategory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Subcategory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Subcategory) String() string {
	var builder strings.Builder
	builder.WriteString("Subcategory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteByte(')')
	return builder.String()
}

// Subcategories is a parsable slice of Subcategory.
type Subcategories []*Subcategory
