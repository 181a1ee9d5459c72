// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/medera/medera_backend/internal/repo/content"
	"github.com/medera/medera_backend/internal/repo/predicate"
)

// ContentUpdate is the builder for updating Content entities.
type ContentUpdate struct {
	config
	hooks    []Hook
	mutation *ContentMutation
}

// Where appends a list predicates to the ContentUpdate builder.
func (_u *ContentUpdate) Where(ps ...predicate.Content) *ContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContentUpdate) SetUpdatedAt(v time.Time) *ContentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ContentUpdate) SetDeletedAt(v time.Time) *ContentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableDeletedAt(v *time.Time) *ContentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ContentUpdate) ClearDeletedAt() *ContentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ContentUpdate) SetKind(v content.Kind) *ContentUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableKind(v *content.Kind) *ContentUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ContentUpdate) SetSlug(v string) *ContentUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableSlug(v *string) *ContentUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ContentUpdate) SetTitle(v string) *ContentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableTitle(v *string) *ContentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ContentUpdate) SetBody(v string) *ContentUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableBody(v *string) *ContentUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *ContentUpdate) SetTags(v []string) *ContentUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ContentUpdate) AppendTags(v []string) *ContentUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// SetIsPublished sets the "is_published" field.
func (_u *ContentUpdate) SetIsPublished(v bool) *ContentUpdate {
	_u.mutation.SetIsPublished(v)
	return _u
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableIsPublished(v *bool) *ContentUpdate {
	if v != nil {
		_u.SetIsPublished(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *ContentUpdate) SetSortOrder(v int) *ContentUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableSortOrder(v *int) *ContentUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *ContentUpdate) AddSortOrder(v int) *ContentUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// Mutation returns the ContentMutation object of the builder.
func (_u *ContentUpdate) Mutation() *ContentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := content.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := content.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Content.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := content.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Content.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := content.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Content.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(content.Table, content.Columns, sqlgraph.NewFieldSpec(content.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(content.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(content.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(content.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(content.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(content.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(content.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(content.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(content.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, content.FieldTags, value)
		})
	}
	if value, ok := _u.mutation.IsPublished(); ok {
		_spec.SetField(content.FieldIsPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(content.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(content.FieldSortOrder, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{content.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentUpdateOne is the builder for updating a single Content entity.
type ContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContentUpdateOne) SetUpdatedAt(v time.Time) *ContentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ContentUpdateOne) SetDeletedAt(v time.Time) *ContentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableDeletedAt(v *time.Time) *ContentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ContentUpdateOne) ClearDeletedAt() *ContentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ContentUpdateOne) SetKind(v content.Kind) *ContentUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableKind(v *content.Kind) *ContentUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ContentUpdateOne) SetSlug(v string) *ContentUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableSlug(v *string) *ContentUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ContentUpdateOne) SetTitle(v string) *ContentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableTitle(v *string) *ContentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ContentUpdateOne) SetBody(v string) *ContentUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableBody(v *string) *ContentUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *ContentUpdateOne) SetTags(v []string) *ContentUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ContentUpdateOne) AppendTags(v []string) *ContentUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// SetIsPublished sets the "is_published" field.
func (_u *ContentUpdateOne) SetIsPublished(v bool) *ContentUpdateOne {
	_u.mutation.SetIsPublished(v)
	return _u
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableIsPublished(v *bool) *ContentUpdateOne {
	if v != nil {
		_u.SetIsPublished(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *ContentUpdateOne) SetSortOrder(v int) *ContentUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableSortOrder(v *int) *ContentUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *ContentUpdateOne) AddSortOrder(v int) *ContentUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// Mutation returns the ContentMutation object of the builder.
func (_u *ContentUpdateOne) Mutation() *ContentMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentUpdate builder.
func (_u *ContentUpdateOne) Where(ps ...predicate.Content) *ContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentUpdateOne) Select(field string, fields ...string) *ContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Content entity.
func (_u *ContentUpdateOne) Save(ctx context.Context) (*Content, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentUpdateOne) SaveX(ctx context.Context) *Content {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := content.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := content.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Content.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := content.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Content.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := content.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Content.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentUpdateOne) sqlSave(ctx context.Context) (_node *Content, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(content.Table, content.Columns, sqlgraph.NewFieldSpec(content.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Content.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, content.FieldID)
		for _, f := range fields {
			if !content.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != content.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(content.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(content.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(content.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(content.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(content.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(content.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(content.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(content.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, content.FieldTags, value)
		})
	}
	if value, ok := _u.mutation.IsPublished(); ok {
		_spec.SetField(content.FieldIsPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(content.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(content.FieldSortOrder, field.TypeInt, value)
	}
	_node = &Content{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{content.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
