// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studychamp/studychamp/ent/quizattemptevent"
)

// QuizAttemptEventCreate is the builder for creating a QuizAttemptEvent entity.
type QuizAttemptEventCreate struct {
	config
	mutation *QuizAttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizAttemptEventCreate) SetSequence(v int64) *QuizAttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizAttemptEventCreate) SetTimestamp(v time.Time) *QuizAttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizAttemptEventCreate) SetNillableTimestamp(v *time.Time) *QuizAttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *QuizAttemptEventCreate) SetAttemptID(v string) *QuizAttemptEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuizAttemptEventCreate) SetTopic(v string) *QuizAttemptEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *QuizAttemptEventCreate) SetNillableTopic(v *string) *QuizAttemptEventCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuizAttemptEventCreate) SetDifficulty(v string) *QuizAttemptEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *QuizAttemptEventCreate) SetNillableDifficulty(v *string) *QuizAttemptEventCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizAttemptEventCreate) SetScore(v int) *QuizAttemptEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotalPoints sets the "total_points" field.
func (_c *QuizAttemptEventCreate) SetTotalPoints(v int) *QuizAttemptEventCreate {
	_c.mutation.SetTotalPoints(v)
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *QuizAttemptEventCreate) SetCorrectCount(v int) *QuizAttemptEventCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *QuizAttemptEventCreate) SetTotalQuestions(v int) *QuizAttemptEventCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetScorePercentage sets the "score_percentage" field.
func (_c *QuizAttemptEventCreate) SetScorePercentage(v float64) *QuizAttemptEventCreate {
	_c.mutation.SetScorePercentage(v)
	return _c
}

// SetTimeMinutes sets the "time_minutes" field.
func (_c *QuizAttemptEventCreate) SetTimeMinutes(v float64) *QuizAttemptEventCreate {
	_c.mutation.SetTimeMinutes(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *QuizAttemptEventCreate) SetStartedAt(v time.Time) *QuizAttemptEventCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *QuizAttemptEventCreate) SetFinishedAt(v time.Time) *QuizAttemptEventCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// Mutation returns the QuizAttemptEventMutation object of the builder.
func (_c *QuizAttemptEventCreate) Mutation() *QuizAttemptEventMutation {
	return _c.mutation
}

// Save creates the QuizAttemptEvent in the database.
func (_c *QuizAttemptEventCreate) Save(ctx context.Context) (*QuizAttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAttemptEventCreate) SaveX(ctx context.Context) *QuizAttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizattemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := quizattemptevent.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := quizattemptevent.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizAttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizAttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "QuizAttemptEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := quizattemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "QuizAttemptEvent.topic"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "QuizAttemptEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizAttemptEvent.score"`)}
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`ent: missing required field "QuizAttemptEvent.total_points"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "QuizAttemptEvent.correct_count"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "QuizAttemptEvent.total_questions"`)}
	}
	if _, ok := _c.mutation.ScorePercentage(); !ok {
		return &ValidationError{Name: "score_percentage", err: errors.New(`ent: missing required field "QuizAttemptEvent.score_percentage"`)}
	}
	if _, ok := _c.mutation.TimeMinutes(); !ok {
		return &ValidationError{Name: "time_minutes", err: errors.New(`ent: missing required field "QuizAttemptEvent.time_minutes"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "QuizAttemptEvent.started_at"`)}
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "QuizAttemptEvent.finished_at"`)}
	}
	return nil
}

func (_c *QuizAttemptEventCreate) sqlSave(ctx context.Context) (*QuizAttemptEvent, error) {
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

func (_c *QuizAttemptEventCreate) createSpec() (*QuizAttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizattemptevent.Table, sqlgraph.NewFieldSpec(quizattemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizattemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizattemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(quizattemptevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(quizattemptevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(quizattemptevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizattemptevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalPoints(); ok {
		_spec.SetField(quizattemptevent.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(quizattemptevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(quizattemptevent.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.ScorePercentage(); ok {
		_spec.SetField(quizattemptevent.FieldScorePercentage, field.TypeFloat64, value)
		_node.ScorePercentage = value
	}
	if value, ok := _c.mutation.TimeMinutes(); ok {
		_spec.SetField(quizattemptevent.FieldTimeMinutes, field.TypeFloat64, value)
		_node.TimeMinutes = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(quizattemptevent.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(quizattemptevent.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	return _node, _spec
}

// QuizAttemptEventCreateBulk is the builder for creating many QuizAttemptEvent entities in bulk.
type QuizAttemptEventCreateBulk struct {
	config
	err      error
	builders []*QuizAttemptEventCreate
}

// Save creates the QuizAttemptEvent entities in the database.
func (_c *QuizAttemptEventCreateBulk) Save(ctx context.Context) ([]*QuizAttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAttemptEventMutation)
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
func (_c *QuizAttemptEventCreateBulk) SaveX(ctx context.Context) []*QuizAttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
