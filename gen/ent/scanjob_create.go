// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"invoicedesk/gen/ent/invoice"
	"invoicedesk/gen/ent/scanjob"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ScanJobCreate is the builder for creating a ScanJob entity.
type ScanJobCreate struct {
	config
	mutation *ScanJobMutation
	hooks    []Hook
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *ScanJobCreate) SetInvoiceID(v uuid.UUID) *ScanJobCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableInvoiceID(v *uuid.UUID) *ScanJobCreate {
	if v != nil {
		_c.SetInvoiceID(*v)
	}
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ScanJobCreate) SetFileName(v string) *ScanJobCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *ScanJobCreate) SetSourceType(v string) *ScanJobCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScanJobCreate) SetStatus(v string) *ScanJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableStatus(v *string) *ScanJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *ScanJobCreate) SetOcrText(v string) *ScanJobCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableOcrText(v *string) *ScanJobCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ScanJobCreate) SetConfidence(v float32) *ScanJobCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableConfidence(v *float32) *ScanJobCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetExtractedJSON sets the "extracted_json" field.
func (_c *ScanJobCreate) SetExtractedJSON(v json.RawMessage) *ScanJobCreate {
	_c.mutation.SetExtractedJSON(v)
	return _c
}

// SetReviewIssues sets the "review_issues" field.
func (_c *ScanJobCreate) SetReviewIssues(v []string) *ScanJobCreate {
	_c.mutation.SetReviewIssues(v)
	return _c
}

// SetFailureMessage sets the "failure_message" field.
func (_c *ScanJobCreate) SetFailureMessage(v string) *ScanJobCreate {
	_c.mutation.SetFailureMessage(v)
	return _c
}

// SetNillableFailureMessage sets the "failure_message" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableFailureMessage(v *string) *ScanJobCreate {
	if v != nil {
		_c.SetFailureMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScanJobCreate) SetCreatedAt(v time.Time) *ScanJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableCreatedAt(v *time.Time) *ScanJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScanJobCreate) SetUpdatedAt(v time.Time) *ScanJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableUpdatedAt(v *time.Time) *ScanJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScanJobCreate) SetID(v uuid.UUID) *ScanJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableID(v *uuid.UUID) *ScanJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_c *ScanJobCreate) SetInvoice(v *Invoice) *ScanJobCreate {
	return _c.SetInvoiceID(v.ID)
}

// Mutation returns the ScanJobMutation object of the builder.
func (_c *ScanJobCreate) Mutation() *ScanJobMutation {
	return _c.mutation
}

// Save creates the ScanJob in the database.
func (_c *ScanJobCreate) Save(ctx context.Context) (*ScanJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScanJobCreate) SaveX(ctx context.Context) *ScanJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScanJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := scanjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scanjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scanjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scanjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScanJobCreate) check() error {
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ScanJob.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := scanjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ScanJob.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "ScanJob.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := scanjob.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "ScanJob.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScanJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScanJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScanJob.updated_at"`)}
	}
	return nil
}

func (_c *ScanJobCreate) sqlSave(ctx context.Context) (*ScanJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScanJobCreate) createSpec() (*ScanJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ScanJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scanjob.Table, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(scanjob.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(scanjob.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(scanjob.FieldOcrText, field.TypeString, value)
		_node.OcrText = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(scanjob.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ExtractedJSON(); ok {
		_spec.SetField(scanjob.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := _c.mutation.ReviewIssues(); ok {
		_spec.SetField(scanjob.FieldReviewIssues, field.TypeJSON, value)
		_node.ReviewIssues = value
	}
	if value, ok := _c.mutation.FailureMessage(); ok {
		_spec.SetField(scanjob.FieldFailureMessage, field.TypeString, value)
		_node.FailureMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scanjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scanjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.InvoiceTable,
			Columns: []string{scanjob.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InvoiceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScanJobCreateBulk is the builder for creating many ScanJob entities in bulk.
type ScanJobCreateBulk struct {
	config
	err      error
	builders []*ScanJobCreate
}

// Save creates the ScanJob entities in the database.
func (_c *ScanJobCreateBulk) Save(ctx context.Context) ([]*ScanJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScanJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScanJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScanJobCreateBulk) SaveX(ctx context.Context) []*ScanJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
