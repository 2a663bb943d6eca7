// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studychamp/studychamp/ent/plannertask"
	"github.com/studychamp/studychamp/ent/predicate"
)

// PlannerTaskUpdate is the builder for updating PlannerTask entities.
type PlannerTaskUpdate struct {
	config
	hooks    []Hook
	mutation *PlannerTaskMutation
}

// Where appends a list predicates to the PlannerTaskUpdate builder.
func (_u *PlannerTaskUpdate) Where(ps ...predicate.PlannerTask) *PlannerTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *PlannerTaskUpdate) SetTaskID(v string) *PlannerTaskUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *PlannerTaskUpdate) SetNillableTaskID(v *string) *PlannerTaskUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PlannerTaskUpdate) SetTitle(v string) *PlannerTaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PlannerTaskUpdate) SetNillableTitle(v *string) *PlannerTaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *PlannerTaskUpdate) SetDueDate(v time.Time) *PlannerTaskUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *PlannerTaskUpdate) SetNillableDueDate(v *time.Time) *PlannerTaskUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *PlannerTaskUpdate) SetCompleted(v bool) *PlannerTaskUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *PlannerTaskUpdate) SetNillableCompleted(v *bool) *PlannerTaskUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the PlannerTaskMutation object of the builder.
func (_u *PlannerTaskUpdate) Mutation() *PlannerTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlannerTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlannerTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlannerTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlannerTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlannerTaskUpdate) check() error {
	if v, ok := _u.mutation.TaskID(); ok {
		if err := plannertask.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "PlannerTask.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := plannertask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PlannerTask.title": %w`, err)}
		}
	}
	return nil
}

func (_u *PlannerTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plannertask.Table, plannertask.Columns, sqlgraph.NewFieldSpec(plannertask.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(plannertask.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(plannertask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(plannertask.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(plannertask.FieldCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plannertask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlannerTaskUpdateOne is the builder for updating a single PlannerTask entity.
type PlannerTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlannerTaskMutation
}

// SetTaskID sets the "task_id" field.
func (_u *PlannerTaskUpdateOne) SetTaskID(v string) *PlannerTaskUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *PlannerTaskUpdateOne) SetNillableTaskID(v *string) *PlannerTaskUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PlannerTaskUpdateOne) SetTitle(v string) *PlannerTaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PlannerTaskUpdateOne) SetNillableTitle(v *string) *PlannerTaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *PlannerTaskUpdateOne) SetDueDate(v time.Time) *PlannerTaskUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *PlannerTaskUpdateOne) SetNillableDueDate(v *time.Time) *PlannerTaskUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *PlannerTaskUpdateOne) SetCompleted(v bool) *PlannerTaskUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *PlannerTaskUpdateOne) SetNillableCompleted(v *bool) *PlannerTaskUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the PlannerTaskMutation object of the builder.
func (_u *PlannerTaskUpdateOne) Mutation() *PlannerTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlannerTaskUpdate builder.
func (_u *PlannerTaskUpdateOne) Where(ps ...predicate.PlannerTask) *PlannerTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlannerTaskUpdateOne) Select(field string, fields ...string) *PlannerTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlannerTask entity.
func (_u *PlannerTaskUpdateOne) Save(ctx context.Context) (*PlannerTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlannerTaskUpdateOne) SaveX(ctx context.Context) *PlannerTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlannerTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlannerTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlannerTaskUpdateOne) check() error {
	if v, ok := _u.mutation.TaskID(); ok {
		if err := plannertask.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "PlannerTask.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := plannertask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PlannerTask.title": %w`, err)}
		}
	}
	return nil
}

func (_u *PlannerTaskUpdateOne) sqlSave(ctx context.Context) (_node *PlannerTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plannertask.Table, plannertask.Columns, sqlgraph.NewFieldSpec(plannertask.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlannerTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plannertask.FieldID)
		for _, f := range fields {
			if !plannertask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plannertask.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(plannertask.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(plannertask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(plannertask.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(plannertask.FieldCompleted, field.TypeBool, value)
	}
	_node = &PlannerTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plannertask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
