// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"invoicedesk/gen/ent/predicate"
	"invoicedesk/gen/ent/subcategory"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SubcategoryDelete is the builder for deleting a Subcategory entity.
type SubcategoryDelete struct {
	config
	hooks    []Hook
	mutation *SubcategoryMutation
}

// Where appends a list predicates to the SubcategoryDelete builder.
func (_d *SubcategoryDelete) Where(ps ...predicate.Subcategory) *SubcategoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SubcategoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SubcategoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SubcategoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(subcategory.Table, sqlgraph.NewFieldSpec(subcategory.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SubcategoryDeleteOne is the builder for deleting a single Subcategory entity.
type SubcategoryDeleteOne struct {
	_d *SubcategoryDelete
}

// Where appends a list predicates to the SubcategoryDelete builder.
func (_d *SubcategoryDeleteOne) Where(ps ...predicate.Subcategory) *SubcategoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SubcategoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{subcategory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SubcategoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
