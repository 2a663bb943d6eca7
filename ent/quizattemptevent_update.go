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
	"github.com/studychamp/studychamp/ent/predicate"
	"github.com/studychamp/studychamp/ent/quizattemptevent"
)

// QuizAttemptEventUpdate is the builder for updating QuizAttemptEvent entities.
type QuizAttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAttemptEventMutation
}

// Where appends a list predicates to the QuizAttemptEventUpdate builder.
func (_u *QuizAttemptEventUpdate) Where(ps ...predicate.QuizAttemptEvent) *QuizAttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizAttemptEventUpdate) SetAttemptID(v string) *QuizAttemptEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableAttemptID(v *string) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizAttemptEventUpdate) SetTopic(v string) *QuizAttemptEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableTopic(v *string) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizAttemptEventUpdate) SetDifficulty(v string) *QuizAttemptEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableDifficulty(v *string) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptEventUpdate) SetScore(v int) *QuizAttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableScore(v *int) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptEventUpdate) AddScore(v int) *QuizAttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *QuizAttemptEventUpdate) SetTotalPoints(v int) *QuizAttemptEventUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableTotalPoints(v *int) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *QuizAttemptEventUpdate) AddTotalPoints(v int) *QuizAttemptEventUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuizAttemptEventUpdate) SetCorrectCount(v int) *QuizAttemptEventUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableCorrectCount(v *int) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuizAttemptEventUpdate) AddCorrectCount(v int) *QuizAttemptEventUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizAttemptEventUpdate) SetTotalQuestions(v int) *QuizAttemptEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableTotalQuestions(v *int) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizAttemptEventUpdate) AddTotalQuestions(v int) *QuizAttemptEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetScorePercentage sets the "score_percentage" field.
func (_u *QuizAttemptEventUpdate) SetScorePercentage(v float64) *QuizAttemptEventUpdate {
	_u.mutation.ResetScorePercentage()
	_u.mutation.SetScorePercentage(v)
	return _u
}

// SetNillableScorePercentage sets the "score_percentage" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableScorePercentage(v *float64) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetScorePercentage(*v)
	}
	return _u
}

// AddScorePercentage adds value to the "score_percentage" field.
func (_u *QuizAttemptEventUpdate) AddScorePercentage(v float64) *QuizAttemptEventUpdate {
	_u.mutation.AddScorePercentage(v)
	return _u
}

// SetTimeMinutes sets the "time_minutes" field.
func (_u *QuizAttemptEventUpdate) SetTimeMinutes(v float64) *QuizAttemptEventUpdate {
	_u.mutation.ResetTimeMinutes()
	_u.mutation.SetTimeMinutes(v)
	return _u
}

// SetNillableTimeMinutes sets the "time_minutes" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableTimeMinutes(v *float64) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetTimeMinutes(*v)
	}
	return _u
}

// AddTimeMinutes adds value to the "time_minutes" field.
func (_u *QuizAttemptEventUpdate) AddTimeMinutes(v float64) *QuizAttemptEventUpdate {
	_u.mutation.AddTimeMinutes(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QuizAttemptEventUpdate) SetStartedAt(v time.Time) *QuizAttemptEventUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableStartedAt(v *time.Time) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *QuizAttemptEventUpdate) SetFinishedAt(v time.Time) *QuizAttemptEventUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableFinishedAt(v *time.Time) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// Mutation returns the QuizAttemptEventMutation object of the builder.
func (_u *QuizAttemptEventUpdate) Mutation() *QuizAttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := quizattemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattemptevent.Table, quizattemptevent.Columns, sqlgraph.NewFieldSpec(quizattemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(quizattemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizattemptevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizattemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(quizattemptevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(quizattemptevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(quizattemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizattemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizattemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizattemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScorePercentage(); ok {
		_spec.SetField(quizattemptevent.FieldScorePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercentage(); ok {
		_spec.AddField(quizattemptevent.FieldScorePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeMinutes(); ok {
		_spec.SetField(quizattemptevent.FieldTimeMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeMinutes(); ok {
		_spec.AddField(quizattemptevent.FieldTimeMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(quizattemptevent.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(quizattemptevent.FieldFinishedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAttemptEventUpdateOne is the builder for updating a single QuizAttemptEvent entity.
type QuizAttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizAttemptEventUpdateOne) SetAttemptID(v string) *QuizAttemptEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableAttemptID(v *string) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizAttemptEventUpdateOne) SetTopic(v string) *QuizAttemptEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableTopic(v *string) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizAttemptEventUpdateOne) SetDifficulty(v string) *QuizAttemptEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableDifficulty(v *string) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptEventUpdateOne) SetScore(v int) *QuizAttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableScore(v *int) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptEventUpdateOne) AddScore(v int) *QuizAttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *QuizAttemptEventUpdateOne) SetTotalPoints(v int) *QuizAttemptEventUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableTotalPoints(v *int) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *QuizAttemptEventUpdateOne) AddTotalPoints(v int) *QuizAttemptEventUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuizAttemptEventUpdateOne) SetCorrectCount(v int) *QuizAttemptEventUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableCorrectCount(v *int) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuizAttemptEventUpdateOne) AddCorrectCount(v int) *QuizAttemptEventUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizAttemptEventUpdateOne) SetTotalQuestions(v int) *QuizAttemptEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableTotalQuestions(v *int) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizAttemptEventUpdateOne) AddTotalQuestions(v int) *QuizAttemptEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetScorePercentage sets the "score_percentage" field.
func (_u *QuizAttemptEventUpdateOne) SetScorePercentage(v float64) *QuizAttemptEventUpdateOne {
	_u.mutation.ResetScorePercentage()
	_u.mutation.SetScorePercentage(v)
	return _u
}

// SetNillableScorePercentage sets the "score_percentage" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableScorePercentage(v *float64) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetScorePercentage(*v)
	}
	return _u
}

// AddScorePercentage adds value to the "score_percentage" field.
func (_u *QuizAttemptEventUpdateOne) AddScorePercentage(v float64) *QuizAttemptEventUpdateOne {
	_u.mutation.AddScorePercentage(v)
	return _u
}

// SetTimeMinutes sets the "time_minutes" field.
func (_u *QuizAttemptEventUpdateOne) SetTimeMinutes(v float64) *QuizAttemptEventUpdateOne {
	_u.mutation.ResetTimeMinutes()
	_u.mutation.SetTimeMinutes(v)
	return _u
}

// SetNillableTimeMinutes sets the "time_minutes" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableTimeMinutes(v *float64) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeMinutes(*v)
	}
	return _u
}

// AddTimeMinutes adds value to the "time_minutes" field.
func (_u *QuizAttemptEventUpdateOne) AddTimeMinutes(v float64) *QuizAttemptEventUpdateOne {
	_u.mutation.AddTimeMinutes(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QuizAttemptEventUpdateOne) SetStartedAt(v time.Time) *QuizAttemptEventUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableStartedAt(v *time.Time) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *QuizAttemptEventUpdateOne) SetFinishedAt(v time.Time) *QuizAttemptEventUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableFinishedAt(v *time.Time) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// Mutation returns the QuizAttemptEventMutation object of the builder.
func (_u *QuizAttemptEventUpdateOne) Mutation() *QuizAttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAttemptEventUpdate builder.
func (_u *QuizAttemptEventUpdateOne) Where(ps ...predicate.QuizAttemptEvent) *QuizAttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAttemptEventUpdateOne) Select(field string, fields ...string) *QuizAttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAttemptEvent entity.
func (_u *QuizAttemptEventUpdateOne) Save(ctx context.Context) (*QuizAttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptEventUpdateOne) SaveX(ctx context.Context) *QuizAttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := quizattemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizAttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattemptevent.Table, quizattemptevent.Columns, sqlgraph.NewFieldSpec(quizattemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattemptevent.FieldID)
		for _, f := range fields {
			if !quizattemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizattemptevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(quizattemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizattemptevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizattemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(quizattemptevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(quizattemptevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(quizattemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizattemptevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizattemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizattemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScorePercentage(); ok {
		_spec.SetField(quizattemptevent.FieldScorePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercentage(); ok {
		_spec.AddField(quizattemptevent.FieldScorePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeMinutes(); ok {
		_spec.SetField(quizattemptevent.FieldTimeMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeMinutes(); ok {
		_spec.AddField(quizattemptevent.FieldTimeMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(quizattemptevent.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(quizattemptevent.FieldFinishedAt, field.TypeTime, value)
	}
	_node = &QuizAttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
