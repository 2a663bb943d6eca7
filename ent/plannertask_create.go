// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studychamp/studychamp/ent/plannertask"
)

// PlannerTaskCreate is the builder for creating a PlannerTask entity.
type PlannerTaskCreate struct {
	config
	mutation *PlannerTaskMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *PlannerTaskCreate) SetTaskID(v string) *PlannerTaskCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PlannerTaskCreate) SetTitle(v string) *PlannerTaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *PlannerTaskCreate) SetDueDate(v time.Time) *PlannerTaskCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *PlannerTaskCreate) SetCompleted(v bool) *PlannerTaskCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *PlannerTaskCreate) SetNillableCompleted(v *bool) *PlannerTaskCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlannerTaskCreate) SetCreatedAt(v time.Time) *PlannerTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlannerTaskCreate) SetNillableCreatedAt(v *time.Time) *PlannerTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PlannerTaskMutation object of the builder.
func (_c *PlannerTaskCreate) Mutation() *PlannerTaskMutation {
	return _c.mutation
}

// Save creates the PlannerTask in the database.
func (_c *PlannerTaskCreate) Save(ctx context.Context) (*PlannerTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlannerTaskCreate) SaveX(ctx context.Context) *PlannerTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlannerTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlannerTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlannerTaskCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := plannertask.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plannertask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlannerTaskCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "PlannerTask.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := plannertask.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "PlannerTask.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "PlannerTask.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := plannertask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PlannerTask.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DueDate(); !ok {
		return &ValidationError{Name: "due_date", err: errors.New(`ent: missing required field "PlannerTask.due_date"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "PlannerTask.completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlannerTask.created_at"`)}
	}
	return nil
}

func (_c *PlannerTaskCreate) sqlSave(ctx context.Context) (*PlannerTask, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlannerTaskCreate) createSpec() (*PlannerTask, *sqlgraph.CreateSpec) {
	var (
		_node = &PlannerTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plannertask.Table, sqlgraph.NewFieldSpec(plannertask.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(plannertask.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(plannertask.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(plannertask.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(plannertask.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plannertask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PlannerTaskCreateBulk is the builder for creating many PlannerTask entities in bulk.
type PlannerTaskCreateBulk struct {
	config
	err      error
	builders []*PlannerTaskCreate
}

// Save creates the PlannerTask entities in the database.
func (_c *PlannerTaskCreateBulk) Save(ctx context.Context) ([]*PlannerTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlannerTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlannerTaskMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *PlannerTaskCreateBulk) SaveX(ctx context.Context) []*PlannerTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlannerTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlannerTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
