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
	"github.com/weftworks/weft/ent/predicate"
	"github.com/weftworks/weft/ent/projectcredential"
)

// ProjectCredentialUpdate is the builder for updating ProjectCredential entities.
type ProjectCredentialUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectCredentialMutation
}

// Where appends a list predicates to the ProjectCredentialUpdate builder.
func (_u *ProjectCredentialUpdate) Where(ps ...predicate.ProjectCredential) *ProjectCredentialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ProjectCredentialUpdate) SetProjectID(v string) *ProjectCredentialUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ProjectCredentialUpdate) SetNillableProjectID(v *string) *ProjectCredentialUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ProjectCredentialUpdate) SetProvider(v string) *ProjectCredentialUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProjectCredentialUpdate) SetNillableProvider(v *string) *ProjectCredentialUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetCiphertext sets the "ciphertext" field.
func (_u *ProjectCredentialUpdate) SetCiphertext(v []byte) *ProjectCredentialUpdate {
	_u.mutation.SetCiphertext(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectCredentialUpdate) SetUpdatedAt(v time.Time) *ProjectCredentialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProjectCredentialMutation object of the builder.
func (_u *ProjectCredentialUpdate) Mutation() *ProjectCredentialMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectCredentialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectCredentialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectCredentialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectCredentialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectCredentialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectcredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectCredentialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(projectcredential.Table, projectcredential.Columns, sqlgraph.NewFieldSpec(projectcredential.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(projectcredential.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(projectcredential.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ciphertext(); ok {
		_spec.SetField(projectcredential.FieldCiphertext, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectcredential.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectcredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectCredentialUpdateOne is the builder for updating a single ProjectCredential entity.
type ProjectCredentialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectCredentialMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ProjectCredentialUpdateOne) SetProjectID(v string) *ProjectCredentialUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ProjectCredentialUpdateOne) SetNillableProjectID(v *string) *ProjectCredentialUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ProjectCredentialUpdateOne) SetProvider(v string) *ProjectCredentialUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProjectCredentialUpdateOne) SetNillableProvider(v *string) *ProjectCredentialUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetCiphertext sets the "ciphertext" field.
func (_u *ProjectCredentialUpdateOne) SetCiphertext(v []byte) *ProjectCredentialUpdateOne {
	_u.mutation.SetCiphertext(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectCredentialUpdateOne) SetUpdatedAt(v time.Time) *ProjectCredentialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProjectCredentialMutation object of the builder.
func (_u *ProjectCredentialUpdateOne) Mutation() *ProjectCredentialMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectCredentialUpdate builder.
func (_u *ProjectCredentialUpdateOne) Where(ps ...predicate.ProjectCredential) *ProjectCredentialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectCredentialUpdateOne) Select(field string, fields ...string) *ProjectCredentialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectCredential entity.
func (_u *ProjectCredentialUpdateOne) Save(ctx context.Context) (*ProjectCredential, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectCredentialUpdateOne) SaveX(ctx context.Context) *ProjectCredential {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectCredentialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectCredentialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectCredentialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectcredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectCredentialUpdateOne) sqlSave(ctx context.Context) (_node *ProjectCredential, err error) {
	_spec := sqlgraph.NewUpdateSpec(projectcredential.Table, projectcredential.Columns, sqlgraph.NewFieldSpec(projectcredential.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectCredential.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectcredential.FieldID)
		for _, f := range fields {
			if !projectcredential.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projectcredential.FieldID {
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
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(projectcredential.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(projectcredential.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ciphertext(); ok {
		_spec.SetField(projectcredential.FieldCiphertext, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectcredential.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProjectCredential{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectcredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
