// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"soliddojo/ent/predicate"
	"soliddojo/ent/runevent"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RunEventUpdate is the builder for updating RunEvent entities.
type RunEventUpdate struct {
	config
	hooks    []Hook
	mutation *RunEventMutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdate) Where(ps ...predicate.RunEvent) *RunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *RunEventUpdate) SetRunID(v string) *RunEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableRunID(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *RunEventUpdate) SetAction(v string) *RunEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableAction(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *RunEventUpdate) SetScope(v string) *RunEventUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableScope(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetQuizzesServed sets the "quizzes_served" field.
func (_u *RunEventUpdate) SetQuizzesServed(v int) *RunEventUpdate {
	_u.mutation.ResetQuizzesServed()
	_u.mutation.SetQuizzesServed(v)
	return _u
}

// SetNillableQuizzesServed sets the "quizzes_served" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableQuizzesServed(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetQuizzesServed(*v)
	}
	return _u
}

// AddQuizzesServed adds value to the "quizzes_served" field.
func (_u *RunEventUpdate) AddQuizzesServed(v int) *RunEventUpdate {
	_u.mutation.AddQuizzesServed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *RunEventUpdate) SetCorrectAnswers(v int) *RunEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableCorrectAnswers(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *RunEventUpdate) AddCorrectAnswers(v int) *RunEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *RunEventUpdate) SetDurationSecs(v int) *RunEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableDurationSecs(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *RunEventUpdate) AddDurationSecs(v int) *RunEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdate) Mutation() *RunEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := runevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := runevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RunEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *RunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(runevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(runevent.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizzesServed(); ok {
		_spec.SetField(runevent.FieldQuizzesServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesServed(); ok {
		_spec.AddField(runevent.FieldQuizzesServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(runevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(runevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(runevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(runevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunEventUpdateOne is the builder for updating a single RunEvent entity.
type RunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *RunEventUpdateOne) SetRunID(v string) *RunEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableRunID(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *RunEventUpdateOne) SetAction(v string) *RunEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableAction(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *RunEventUpdateOne) SetScope(v string) *RunEventUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableScope(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetQuizzesServed sets the "quizzes_served" field.
func (_u *RunEventUpdateOne) SetQuizzesServed(v int) *RunEventUpdateOne {
	_u.mutation.ResetQuizzesServed()
	_u.mutation.SetQuizzesServed(v)
	return _u
}

// SetNillableQuizzesServed sets the "quizzes_served" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableQuizzesServed(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetQuizzesServed(*v)
	}
	return _u
}

// AddQuizzesServed adds value to the "quizzes_served" field.
func (_u *RunEventUpdateOne) AddQuizzesServed(v int) *RunEventUpdateOne {
	_u.mutation.AddQuizzesServed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *RunEventUpdateOne) SetCorrectAnswers(v int) *RunEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableCorrectAnswers(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *RunEventUpdateOne) AddCorrectAnswers(v int) *RunEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *RunEventUpdateOne) SetDurationSecs(v int) *RunEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableDurationSecs(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *RunEventUpdateOne) AddDurationSecs(v int) *RunEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdateOne) Mutation() *RunEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdateOne) Where(ps ...predicate.RunEvent) *RunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunEventUpdateOne) Select(field string, fields ...string) *RunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunEvent entity.
func (_u *RunEventUpdateOne) Save(ctx context.Context) (*RunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdateOne) SaveX(ctx context.Context) *RunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := runevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := runevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RunEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *RunEventUpdateOne) sqlSave(ctx context.Context) (_node *RunEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runevent.FieldID)
		for _, f := range fields {
			if !runevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runevent.FieldID {
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
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(runevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(runevent.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizzesServed(); ok {
		_spec.SetField(runevent.FieldQuizzesServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesServed(); ok {
		_spec.AddField(runevent.FieldQuizzesServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(runevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(runevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(runevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(runevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &RunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
