// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"invoicedesk/gen/ent/invoice"
	"invoicedesk/gen/ent/invoiceitem"
	"invoicedesk/gen/ent/predicate"
	"invoicedesk/gen/ent/scanjob"
	"invoicedesk/gen/ent/vendor"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *InvoiceUpdate) SetVendorID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *InvoiceUpdate) ClearVendorID() *InvoiceUpdate {
	_u.mutation.ClearVendorID()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdate) SetSubtotal(v decimal.Decimal) *InvoiceUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSubtotal(v *decimal.Decimal) *InvoiceUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdate) AddSubtotal(v decimal.Decimal) *InvoiceUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetCgst sets the "cgst" field.
func (_u *InvoiceUpdate) SetCgst(v decimal.Decimal) *InvoiceUpdate {
	_u.mutation.ResetCgst()
	_u.mutation.SetCgst(v)
	return _u
}

// SetNillableCgst sets the "cgst" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCgst(v *decimal.Decimal) *InvoiceUpdate {
	if v != nil {
		_u.SetCgst(*v)
	}
	return _u
}

// AddCgst adds value to the "cgst" field.
func (_u *InvoiceUpdate) AddCgst(v decimal.Decimal) *InvoiceUpdate {
	_u.mutation.AddCgst(v)
	return _u
}

// SetSgst sets the "sgst" field.
func (_u *InvoiceUpdate) SetSgst(v decimal.Decimal) *InvoiceUpdate {
	_u.mutation.ResetSgst()
	_u.mutation.SetSgst(v)
	return _u
}

// SetNillableSgst sets the "sgst" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSgst(v *decimal.Decimal) *InvoiceUpdate {
	if v != nil {
		_u.SetSgst(*v)
	}
	return _u
}

// AddSgst adds value to the "sgst" field.
func (_u *InvoiceUpdate) AddSgst(v decimal.Decimal) *InvoiceUpdate {
	_u.mutation.AddSgst(v)
	return _u
}

// SetCess sets the "cess" field.
func (_u *InvoiceUpdate) SetCess(v decimal.Decimal) *InvoiceUpdate {
	_u.mutation.ResetCess()
	_u.mutation.SetCess(v)
	return _u
}

// SetNillableCess sets the "cess" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCess(v *decimal.Decimal) *InvoiceUpdate {
	if v != nil {
		_u.SetCess(*v)
	}
	return _u
}

// AddCess adds value to the "cess" field.
func (_u *InvoiceUpdate) AddCess(v decimal.Decimal) *InvoiceUpdate {
	_u.mutation.AddCess(v)
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdate) SetTotalAmount(v decimal.Decimal) *InvoiceUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalAmount(v *decimal.Decimal) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdate) AddTotalAmount(v decimal.Decimal) *InvoiceUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdate) SetStatus(v string) *InvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableStatus(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdate) SetNotes(v string) *InvoiceUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNotes(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdate) ClearNotes() *InvoiceUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetTallyPushedAt sets the "tally_pushed_at" field.
func (_u *InvoiceUpdate) SetTallyPushedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetTallyPushedAt(v)
	return _u
}

// SetNillableTallyPushedAt sets the "tally_pushed_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTallyPushedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetTallyPushedAt(*v)
	}
	return _u
}

// ClearTallyPushedAt clears the value of the "tally_pushed_at" field.
func (_u *InvoiceUpdate) ClearTallyPushedAt() *InvoiceUpdate {
	_u.mutation.ClearTallyPushedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdate) SetVendor(v *Vendor) *InvoiceUpdate {
	return _u.SetVendorID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdate) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) AddItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddScanIDs adds the "scans" edge to the ScanJob entity by IDs.
func (_u *InvoiceUpdate) AddScanIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddScanIDs(ids...)
	return _u
}

// AddScans adds the "scans" edges to the ScanJob entity.
func (_u *InvoiceUpdate) AddScans(v ...*ScanJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScanIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdate) ClearVendor() *InvoiceUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) ClearItems() *InvoiceUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdate) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdate) RemoveItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearScans clears all "scans" edges to the ScanJob entity.
func (_u *InvoiceUpdate) ClearScans() *InvoiceUpdate {
	_u.mutation.ClearScans()
	return _u
}

// RemoveScanIDs removes the "scans" edge to ScanJob entities by IDs.
func (_u *InvoiceUpdate) RemoveScanIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveScanIDs(ids...)
	return _u
}

// RemoveScans removes "scans" edges to ScanJob entities.
func (_u *InvoiceUpdate) RemoveScans(v ...*ScanJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScanIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Cgst(); ok {
		_spec.SetField(invoice.FieldCgst, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCgst(); ok {
		_spec.AddField(invoice.FieldCgst, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Sgst(); ok {
		_spec.SetField(invoice.FieldSgst, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSgst(); ok {
		_spec.AddField(invoice.FieldSgst, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Cess(); ok {
		_spec.SetField(invoice.FieldCess, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCess(); ok {
		_spec.AddField(invoice.FieldCess, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.TallyPushedAt(); ok {
		_spec.SetField(invoice.FieldTallyPushedAt, field.TypeTime, value)
	}
	if _u.mutation.TallyPushedAtCleared() {
		_spec.ClearField(invoice.FieldTallyPushedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ScansTable,
			Columns: []string{invoice.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScansIDs(); len(nodes) > 0 && !_u.mutation.ScansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ScansTable,
			Columns: []string{invoice.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ScansTable,
			Columns: []string{invoice.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetVendorID sets the "vendor_id" field.
func (_u *InvoiceUpdateOne) SetVendorID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *InvoiceUpdateOne) ClearVendorID() *InvoiceUpdateOne {
	_u.mutation.ClearVendorID()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdateOne) SetSubtotal(v decimal.Decimal) *InvoiceUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSubtotal(v *decimal.Decimal) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdateOne) AddSubtotal(v decimal.Decimal) *InvoiceUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetCgst sets the "cgst" field.
func (_u *InvoiceUpdateOne) SetCgst(v decimal.Decimal) *InvoiceUpdateOne {
	_u.mutation.ResetCgst()
	_u.mutation.SetCgst(v)
	return _u
}

// SetNillableCgst sets the "cgst" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCgst(v *decimal.Decimal) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCgst(*v)
	}
	return _u
}

// AddCgst adds value to the "cgst" field.
func (_u *InvoiceUpdateOne) AddCgst(v decimal.Decimal) *InvoiceUpdateOne {
	_u.mutation.AddCgst(v)
	return _u
}

// SetSgst sets the "sgst" field.
func (_u *InvoiceUpdateOne) SetSgst(v decimal.Decimal) *InvoiceUpdateOne {
	_u.mutation.ResetSgst()
	_u.mutation.SetSgst(v)
	return _u
}

// SetNillableSgst sets the "sgst" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSgst(v *decimal.Decimal) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSgst(*v)
	}
	return _u
}

// AddSgst adds value to the "sgst" field.
func (_u *InvoiceUpdateOne) AddSgst(v decimal.Decimal) *InvoiceUpdateOne {
	_u.mutation.AddSgst(v)
	return _u
}

// SetCess sets the "cess" field.
func (_u *InvoiceUpdateOne) SetCess(v decimal.Decimal) *InvoiceUpdateOne {
	_u.mutation.ResetCess()
	_u.mutation.SetCess(v)
	return _u
}

// SetNillableCess sets the "cess" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCess(v *decimal.Decimal) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCess(*v)
	}
	return _u
}

// AddCess adds value to the "cess" field.
func (_u *InvoiceUpdateOne) AddCess(v decimal.Decimal) *InvoiceUpdateOne {
	_u.mutation.AddCess(v)
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdateOne) SetTotalAmount(v decimal.Decimal) *InvoiceUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalAmount(v *decimal.Decimal) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdateOne) AddTotalAmount(v decimal.Decimal) *InvoiceUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdateOne) SetStatus(v string) *InvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableStatus(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdateOne) SetNotes(v string) *InvoiceUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNotes(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdateOne) ClearNotes() *InvoiceUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetTallyPushedAt sets the "tally_pushed_at" field.
func (_u *InvoiceUpdateOne) SetTallyPushedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetTallyPushedAt(v)
	return _u
}

// SetNillableTallyPushedAt sets the "tally_pushed_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTallyPushedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTallyPushedAt(*v)
	}
	return _u
}

// ClearTallyPushedAt clears the value of the "tally_pushed_at" field.
func (_u *InvoiceUpdateOne) ClearTallyPushedAt() *InvoiceUpdateOne {
	_u.mutation.ClearTallyPushedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdateOne) SetVendor(v *Vendor) *InvoiceUpdateOne {
	return _u.SetVendorID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdateOne) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) AddItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddScanIDs adds the "scans" edge to the ScanJob entity by IDs.
func (_u *InvoiceUpdateOne) AddScanIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddScanIDs(ids...)
	return _u
}

// AddScans adds the "scans" edges to the ScanJob entity.
func (_u *InvoiceUpdateOne) AddScans(v ...*ScanJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScanIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdateOne) ClearVendor() *InvoiceUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) ClearItems() *InvoiceUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdateOne) RemoveItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearScans clears all "scans" edges to the ScanJob entity.
func (_u *InvoiceUpdateOne) ClearScans() *InvoiceUpdateOne {
	_u.mutation.ClearScans()
	return _u
}

// RemoveScanIDs removes the "scans" edge to ScanJob entities by IDs.
func (_u *InvoiceUpdateOne) RemoveScanIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveScanIDs(ids...)
	return _u
}

// RemoveScans removes "scans" edges to ScanJob entities.
func (_u *InvoiceUpdateOne) RemoveScans(v ...*ScanJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScanIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Cgst(); ok {
		_spec.SetField(invoice.FieldCgst, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCgst(); ok {
		_spec.AddField(invoice.FieldCgst, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Sgst(); ok {
		_spec.SetField(invoice.FieldSgst, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSgst(); ok {
		_spec.AddField(invoice.FieldSgst, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Cess(); ok {
		_spec.SetField(invoice.FieldCess, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCess(); ok {
		_spec.AddField(invoice.FieldCess, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.TallyPushedAt(); ok {
		_spec.SetField(invoice.FieldTallyPushedAt, field.TypeTime, value)
	}
	if _u.mutation.TallyPushedAtCleared() {
		_spec.ClearField(invoice.FieldTallyPushedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ScansTable,
			Columns: []string{invoice.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScansIDs(); len(nodes) > 0 && !_u.mutation.ScansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ScansTable,
			Columns: []string{invoice.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ScansTable,
			Columns: []string{invoice.ScansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
