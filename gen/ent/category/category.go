// Code generated by ent, DO NOT EDIT.

package category

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the category type in the database.
	Label = "category"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// EdgeSubcategories holds the string denoting the subcategories edge name in mutations.
	EdgeSubcategories = "subcategories"
	// Table holds the table name of the category in the database.
	Table = "categories"
	// SubcategoriesTable is the table that holds the subcategories relation/edge.
	SubcategoriesTable = "subcategories"
	// SubcategoriesInverseTable is the table name for the Subcategory entity.
	// It exists in this package in order to avoid circular dependency with the "subcategory" package.
	SubcategoriesInverseTable = "subcategories"
	// SubcategoriesColumn is the table column denoting the subcategories relation/edge.
	SubcategoriesColumn = "category_id"
)

// Columns holds all SQL columns for category fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldPosition,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Category queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// BySubcategoriesCount orders the results by subcategories count.
func BySubcategoriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubcategoriesStep(), opts...)
	}
}

// BySubcategories orders the results by subcategories terms.
func BySubcategories(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubcategoriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubcategoriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubcategoriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubcategoriesTable, SubcategoriesColumn),
	)
}
