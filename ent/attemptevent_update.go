// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"soliddojo/ent/attemptevent"
	"soliddojo/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *AttemptEventUpdate) SetRunID(v string) *AttemptEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableRunID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuizName sets the "quiz_name" field.
func (_u *AttemptEventUpdate) SetQuizName(v string) *AttemptEventUpdate {
	_u.mutation.SetQuizName(v)
	return _u
}

// SetNillableQuizName sets the "quiz_name" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuizName(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuizName(*v)
	}
	return _u
}

// SetPrinciple sets the "principle" field.
func (_u *AttemptEventUpdate) SetPrinciple(v string) *AttemptEventUpdate {
	_u.mutation.SetPrinciple(v)
	return _u
}

// SetNillablePrinciple sets the "principle" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePrinciple(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetPrinciple(*v)
	}
	return _u
}

// SetSelected sets the "selected" field.
func (_u *AttemptEventUpdate) SetSelected(v []string) *AttemptEventUpdate {
	_u.mutation.SetSelected(v)
	return _u
}

// AppendSelected appends value to the "selected" field.
func (_u *AttemptEventUpdate) AppendSelected(v []string) *AttemptEventUpdate {
	_u.mutation.AppendSelected(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AttemptEventUpdate) SetCorrectAnswers(v []string) *AttemptEventUpdate {
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// AppendCorrectAnswers appends value to the "correct_answers" field.
func (_u *AttemptEventUpdate) AppendCorrectAnswers(v []string) *AttemptEventUpdate {
	_u.mutation.AppendCorrectAnswers(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AttemptEventUpdate) SetTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeMs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AttemptEventUpdate) AddTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := attemptevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizName(); ok {
		if err := attemptevent.QuizNameValidator(v); err != nil {
			return &ValidationError{Name: "quiz_name", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.quiz_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Principle(); ok {
		if err := attemptevent.PrincipleValidator(v); err != nil {
			return &ValidationError{Name: "principle", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.principle": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(attemptevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizName(); ok {
		_spec.SetField(attemptevent.FieldQuizName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Principle(); ok {
		_spec.SetField(attemptevent.FieldPrinciple, field.TypeString, value)
	}
	if value, ok := _u.mutation.Selected(); ok {
		_spec.SetField(attemptevent.FieldSelected, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSelected(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldSelected, value)
		})
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldCorrectAnswers, value)
		})
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *AttemptEventUpdateOne) SetRunID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableRunID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuizName sets the "quiz_name" field.
func (_u *AttemptEventUpdateOne) SetQuizName(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuizName(v)
	return _u
}

// SetNillableQuizName sets the "quiz_name" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuizName(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuizName(*v)
	}
	return _u
}

// SetPrinciple sets the "principle" field.
func (_u *AttemptEventUpdateOne) SetPrinciple(v string) *AttemptEventUpdateOne {
	_u.mutation.SetPrinciple(v)
	return _u
}

// SetNillablePrinciple sets the "principle" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePrinciple(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPrinciple(*v)
	}
	return _u
}

// SetSelected sets the "selected" field.
func (_u *AttemptEventUpdateOne) SetSelected(v []string) *AttemptEventUpdateOne {
	_u.mutation.SetSelected(v)
	return _u
}

// AppendSelected appends value to the "selected" field.
func (_u *AttemptEventUpdateOne) AppendSelected(v []string) *AttemptEventUpdateOne {
	_u.mutation.AppendSelected(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AttemptEventUpdateOne) SetCorrectAnswers(v []string) *AttemptEventUpdateOne {
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// AppendCorrectAnswers appends value to the "correct_answers" field.
func (_u *AttemptEventUpdateOne) AppendCorrectAnswers(v []string) *AttemptEventUpdateOne {
	_u.mutation.AppendCorrectAnswers(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AttemptEventUpdateOne) SetTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeMs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AttemptEventUpdateOne) AddTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := attemptevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizName(); ok {
		if err := attemptevent.QuizNameValidator(v); err != nil {
			return &ValidationError{Name: "quiz_name", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.quiz_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Principle(); ok {
		if err := attemptevent.PrincipleValidator(v); err != nil {
			return &ValidationError{Name: "principle", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.principle": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(attemptevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizName(); ok {
		_spec.SetField(attemptevent.FieldQuizName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Principle(); ok {
		_spec.SetField(attemptevent.FieldPrinciple, field.TypeString, value)
	}
	if value, ok := _u.mutation.Selected(); ok {
		_spec.SetField(attemptevent.FieldSelected, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSelected(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldSelected, value)
		})
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldCorrectAnswers, value)
		})
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
