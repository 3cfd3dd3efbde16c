// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"invoicedesk/gen/ent/invoice"
	"invoicedesk/gen/ent/predicate"
	"invoicedesk/gen/ent/scanjob"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ScanJobUpdate is the builder for updating ScanJob entities.
type ScanJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScanJobMutation
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (_u *ScanJobUpdate) Where(ps ...predicate.ScanJob) *ScanJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *ScanJobUpdate) SetInvoiceID(v uuid.UUID) *ScanJobUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableInvoiceID(v *uuid.UUID) *ScanJobUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (_u *ScanJobUpdate) ClearInvoiceID() *ScanJobUpdate {
	_u.mutation.ClearInvoiceID()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ScanJobUpdate) SetFileName(v string) *ScanJobUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableFileName(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *ScanJobUpdate) SetSourceType(v string) *ScanJobUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableSourceType(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanJobUpdate) SetStatus(v string) *ScanJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableStatus(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ScanJobUpdate) SetOcrText(v string) *ScanJobUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableOcrText(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ScanJobUpdate) ClearOcrText() *ScanJobUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ScanJobUpdate) SetConfidence(v float32) *ScanJobUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableConfidence(v *float32) *ScanJobUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ScanJobUpdate) AddConfidence(v float32) *ScanJobUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ScanJobUpdate) ClearConfidence() *ScanJobUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ScanJobUpdate) SetExtractedJSON(v json.RawMessage) *ScanJobUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ScanJobUpdate) AppendExtractedJSON(v json.RawMessage) *ScanJobUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ScanJobUpdate) ClearExtractedJSON() *ScanJobUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetReviewIssues sets the "review_issues" field.
func (_u *ScanJobUpdate) SetReviewIssues(v []string) *ScanJobUpdate {
	_u.mutation.SetReviewIssues(v)
	return _u
}

// AppendReviewIssues appends value to the "review_issues" field.
func (_u *ScanJobUpdate) AppendReviewIssues(v []string) *ScanJobUpdate {
	_u.mutation.AppendReviewIssues(v)
	return _u
}

// ClearReviewIssues clears the value of the "review_issues" field.
func (_u *ScanJobUpdate) ClearReviewIssues() *ScanJobUpdate {
	_u.mutation.ClearReviewIssues()
	return _u
}

// SetFailureMessage sets the "failure_message" field.
func (_u *ScanJobUpdate) SetFailureMessage(v string) *ScanJobUpdate {
	_u.mutation.SetFailureMessage(v)
	return _u
}

// SetNillableFailureMessage sets the "failure_message" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableFailureMessage(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetFailureMessage(*v)
	}
	return _u
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (_u *ScanJobUpdate) ClearFailureMessage() *ScanJobUpdate {
	_u.mutation.ClearFailureMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ScanJobUpdate) SetCreatedAt(v time.Time) *ScanJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableCreatedAt(v *time.Time) *ScanJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScanJobUpdate) SetUpdatedAt(v time.Time) *ScanJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *ScanJobUpdate) SetInvoice(v *Invoice) *ScanJobUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the ScanJobMutation object of the builder.
func (_u *ScanJobUpdate) Mutation() *ScanJobMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *ScanJobUpdate) ClearInvoice() *ScanJobUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScanJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scanjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanJobUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := scanjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ScanJob.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := scanjob.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "ScanJob.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(scanjob.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(scanjob.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(scanjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(scanjob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(scanjob.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(scanjob.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(scanjob.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(scanjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scanjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(scanjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewIssues(); ok {
		_spec.SetField(scanjob.FieldReviewIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviewIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scanjob.FieldReviewIssues, value)
		})
	}
	if _u.mutation.ReviewIssuesCleared() {
		_spec.ClearField(scanjob.FieldReviewIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureMessage(); ok {
		_spec.SetField(scanjob.FieldFailureMessage, field.TypeString, value)
	}
	if _u.mutation.FailureMessageCleared() {
		_spec.ClearField(scanjob.FieldFailureMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(scanjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scanjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanJobUpdateOne is the builder for updating a single ScanJob entity.
type ScanJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanJobMutation
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *ScanJobUpdateOne) SetInvoiceID(v uuid.UUID) *ScanJobUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *ScanJobUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (_u *ScanJobUpdateOne) ClearInvoiceID() *ScanJobUpdateOne {
	_u.mutation.ClearInvoiceID()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ScanJobUpdateOne) SetFileName(v string) *ScanJobUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableFileName(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *ScanJobUpdateOne) SetSourceType(v string) *ScanJobUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableSourceType(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanJobUpdateOne) SetStatus(v string) *ScanJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableStatus(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ScanJobUpdateOne) SetOcrText(v string) *ScanJobUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableOcrText(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ScanJobUpdateOne) ClearOcrText() *ScanJobUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ScanJobUpdateOne) SetConfidence(v float32) *ScanJobUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableConfidence(v *float32) *ScanJobUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ScanJobUpdateOne) AddConfidence(v float32) *ScanJobUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ScanJobUpdateOne) ClearConfidence() *ScanJobUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ScanJobUpdateOne) SetExtractedJSON(v json.RawMessage) *ScanJobUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ScanJobUpdateOne) AppendExtractedJSON(v json.RawMessage) *ScanJobUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ScanJobUpdateOne) ClearExtractedJSON() *ScanJobUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetReviewIssues sets the "review_issues" field.
func (_u *ScanJobUpdateOne) SetReviewIssues(v []string) *ScanJobUpdateOne {
	_u.mutation.SetReviewIssues(v)
	return _u
}

// AppendReviewIssues appends value to the "review_issues" field.
func (_u *ScanJobUpdateOne) AppendReviewIssues(v []string) *ScanJobUpdateOne {
	_u.mutation.AppendReviewIssues(v)
	return _u
}

// ClearReviewIssues clears the value of the "review_issues" field.
func (_u *ScanJobUpdateOne) ClearReviewIssues() *ScanJobUpdateOne {
	_u.mutation.ClearReviewIssues()
	return _u
}

// SetFailureMessage sets the "failure_message" field.
func (_u *ScanJobUpdateOne) SetFailureMessage(v string) *ScanJobUpdateOne {
	_u.mutation.SetFailureMessage(v)
	return _u
}

// SetNillableFailureMessage sets the "failure_message" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableFailureMessage(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetFailureMessage(*v)
	}
	return _u
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (_u *ScanJobUpdateOne) ClearFailureMessage() *ScanJobUpdateOne {
	_u.mutation.ClearFailureMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ScanJobUpdateOne) SetCreatedAt(v time.Time) *ScanJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableCreatedAt(v *time.Time) *ScanJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScanJobUpdateOne) SetUpdatedAt(v time.Time) *ScanJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *ScanJobUpdateOne) SetInvoice(v *Invoice) *ScanJobUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the ScanJobMutation object of the builder.
func (_u *ScanJobUpdateOne) Mutation() *ScanJobMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *ScanJobUpdateOne) ClearInvoice() *ScanJobUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (_u *ScanJobUpdateOne) Where(ps ...predicate.ScanJob) *ScanJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanJobUpdateOne) Select(field string, fields ...string) *ScanJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScanJob entity.
func (_u *ScanJobUpdateOne) Save(ctx context.Context) (*ScanJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanJobUpdateOne) SaveX(ctx context.Context) *ScanJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScanJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scanjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanJobUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := scanjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ScanJob.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := scanjob.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "ScanJob.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanJobUpdateOne) sqlSave(ctx context.Context) (_node *ScanJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanjob.FieldID)
		for _, f := range fields {
			if !scanjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanjob.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(scanjob.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(scanjob.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(scanjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(scanjob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(scanjob.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(scanjob.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(scanjob.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(scanjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scanjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(scanjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewIssues(); ok {
		_spec.SetField(scanjob.FieldReviewIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviewIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scanjob.FieldReviewIssues, value)
		})
	}
	if _u.mutation.ReviewIssuesCleared() {
		_spec.ClearField(scanjob.FieldReviewIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureMessage(); ok {
		_spec.SetField(scanjob.FieldFailureMessage, field.TypeString, value)
	}
	if _u.mutation.FailureMessageCleared() {
		_spec.ClearField(scanjob.FieldFailureMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(scanjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scanjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScanJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
