// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"invoicedesk/gen/ent/invoice"
	"invoicedesk/gen/ent/invoiceitem"
	"invoicedesk/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceItemUpdate is the builder for updating InvoiceItem entities.
type InvoiceItemUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceItemMutation
}

// Where appends a list predicates to the InvoiceItemUpdate builder.
func (_u *InvoiceItemUpdate) Where(ps ...predicate.InvoiceItem) *InvoiceItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *InvoiceItemUpdate) SetInvoiceID(v uuid.UUID) *InvoiceItemUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableInvoiceID(v *uuid.UUID) *InvoiceItemUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InvoiceItemUpdate) SetDescription(v string) *InvoiceItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableDescription(v *string) *InvoiceItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InvoiceItemUpdate) SetQuantity(v decimal.Decimal) *InvoiceItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableQuantity(v *decimal.Decimal) *InvoiceItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InvoiceItemUpdate) AddQuantity(v decimal.Decimal) *InvoiceItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *InvoiceItemUpdate) SetUnit(v string) *InvoiceItemUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableUnit(v *string) *InvoiceItemUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *InvoiceItemUpdate) SetUnitPrice(v decimal.Decimal) *InvoiceItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableUnitPrice(v *decimal.Decimal) *InvoiceItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *InvoiceItemUpdate) AddUnitPrice(v decimal.Decimal) *InvoiceItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetGstRate sets the "gst_rate" field.
func (_u *InvoiceItemUpdate) SetGstRate(v decimal.Decimal) *InvoiceItemUpdate {
	_u.mutation.ResetGstRate()
	_u.mutation.SetGstRate(v)
	return _u
}

// SetNillableGstRate sets the "gst_rate" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableGstRate(v *decimal.Decimal) *InvoiceItemUpdate {
	if v != nil {
		_u.SetGstRate(*v)
	}
	return _u
}

// AddGstRate adds value to the "gst_rate" field.
func (_u *InvoiceItemUpdate) AddGstRate(v decimal.Decimal) *InvoiceItemUpdate {
	_u.mutation.AddGstRate(v)
	return _u
}

// SetCategoryName sets the "category_name" field.
func (_u *InvoiceItemUpdate) SetCategoryName(v string) *InvoiceItemUpdate {
	_u.mutation.SetCategoryName(v)
	return _u
}

// SetNillableCategoryName sets the "category_name" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableCategoryName(v *string) *InvoiceItemUpdate {
	if v != nil {
		_u.SetCategoryName(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceItemUpdate) SetCreatedAt(v time.Time) *InvoiceItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceItemUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *InvoiceItemUpdate) SetInvoice(v *Invoice) *InvoiceItemUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceItemMutation object of the builder.
func (_u *InvoiceItemUpdate) Mutation() *InvoiceItemMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *InvoiceItemUpdate) ClearInvoice() *InvoiceItemUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceItemUpdate) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := invoiceitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "InvoiceItem.description": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceItem.invoice"`)
	}
	return nil
}

func (_u *InvoiceItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceitem.Table, invoiceitem.Columns, sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(invoiceitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(invoiceitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(invoiceitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(invoiceitem.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(invoiceitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(invoiceitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GstRate(); ok {
		_spec.SetField(invoiceitem.FieldGstRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGstRate(); ok {
		_spec.AddField(invoiceitem.FieldGstRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CategoryName(); ok {
		_spec.SetField(invoiceitem.FieldCategoryName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceitem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceitem.InvoiceTable,
			Columns: []string{invoiceitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceitem.InvoiceTable,
			Columns: []string{invoiceitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceItemUpdateOne is the builder for updating a single InvoiceItem entity.
type InvoiceItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceItemMutation
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *InvoiceItemUpdateOne) SetInvoiceID(v uuid.UUID) *InvoiceItemUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InvoiceItemUpdateOne) SetDescription(v string) *InvoiceItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableDescription(v *string) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InvoiceItemUpdateOne) SetQuantity(v decimal.Decimal) *InvoiceItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableQuantity(v *decimal.Decimal) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InvoiceItemUpdateOne) AddQuantity(v decimal.Decimal) *InvoiceItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *InvoiceItemUpdateOne) SetUnit(v string) *InvoiceItemUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableUnit(v *string) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *InvoiceItemUpdateOne) SetUnitPrice(v decimal.Decimal) *InvoiceItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableUnitPrice(v *decimal.Decimal) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *InvoiceItemUpdateOne) AddUnitPrice(v decimal.Decimal) *InvoiceItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetGstRate sets the "gst_rate" field.
func (_u *InvoiceItemUpdateOne) SetGstRate(v decimal.Decimal) *InvoiceItemUpdateOne {
	_u.mutation.ResetGstRate()
	_u.mutation.SetGstRate(v)
	return _u
}

// SetNillableGstRate sets the "gst_rate" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableGstRate(v *decimal.Decimal) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetGstRate(*v)
	}
	return _u
}

// AddGstRate adds value to the "gst_rate" field.
func (_u *InvoiceItemUpdateOne) AddGstRate(v decimal.Decimal) *InvoiceItemUpdateOne {
	_u.mutation.AddGstRate(v)
	return _u
}

// SetCategoryName sets the "category_name" field.
func (_u *InvoiceItemUpdateOne) SetCategoryName(v string) *InvoiceItemUpdateOne {
	_u.mutation.SetCategoryName(v)
	return _u
}

// SetNillableCategoryName sets the "category_name" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableCategoryName(v *string) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetCategoryName(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceItemUpdateOne) SetCreatedAt(v time.Time) *InvoiceItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceItemUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *InvoiceItemUpdateOne) SetInvoice(v *Invoice) *InvoiceItemUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceItemMutation object of the builder.
func (_u *InvoiceItemUpdateOne) Mutation() *InvoiceItemMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *InvoiceItemUpdateOne) ClearInvoice() *InvoiceItemUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the InvoiceItemUpdate builder.
func (_u *InvoiceItemUpdateOne) Where(ps ...predicate.InvoiceItem) *InvoiceItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceItemUpdateOne) Select(field string, fields ...string) *InvoiceItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceItem entity.
func (_u *InvoiceItemUpdateOne) Save(ctx context.Context) (*InvoiceItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceItemUpdateOne) SaveX(ctx context.Context) *InvoiceItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceItemUpdateOne) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := invoiceitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "InvoiceItem.description": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceItem.invoice"`)
	}
	return nil
}

func (_u *InvoiceItemUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceitem.Table, invoiceitem.Columns, sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoiceitem.FieldID)
		for _, f := range fields {
			if !invoiceitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoiceitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(invoiceitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(invoiceitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(invoiceitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(invoiceitem.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(invoiceitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(invoiceitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GstRate(); ok {
		_spec.SetField(invoiceitem.FieldGstRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGstRate(); ok {
		_spec.AddField(invoiceitem.FieldGstRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CategoryName(); ok {
		_spec.SetField(invoiceitem.FieldCategoryName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceitem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceitem.InvoiceTable,
			Columns: []string{invoiceitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceitem.InvoiceTable,
			Columns: []string{invoiceitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InvoiceItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
