// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medera/medera_backend/internal/repo/content"
)

// ContentCreate is the builder for creating a Content entity.
type ContentCreate struct {
	config
	mutation *ContentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContentCreate) SetCreatedAt(v time.Time) *ContentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContentCreate) SetNillableCreatedAt(v *time.Time) *ContentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContentCreate) SetUpdatedAt(v time.Time) *ContentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContentCreate) SetNillableUpdatedAt(v *time.Time) *ContentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ContentCreate) SetDeletedAt(v time.Time) *ContentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ContentCreate) SetNillableDeletedAt(v *time.Time) *ContentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *ContentCreate) SetKind(v content.Kind) *ContentCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ContentCreate) SetSlug(v string) *ContentCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ContentCreate) SetTitle(v string) *ContentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *ContentCreate) SetBody(v string) *ContentCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *ContentCreate) SetTags(v []string) *ContentCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetIsPublished sets the "is_published" field.
func (_c *ContentCreate) SetIsPublished(v bool) *ContentCreate {
	_c.mutation.SetIsPublished(v)
	return _c
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_c *ContentCreate) SetNillableIsPublished(v *bool) *ContentCreate {
	if v != nil {
		_c.SetIsPublished(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *ContentCreate) SetSortOrder(v int) *ContentCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *ContentCreate) SetNillableSortOrder(v *int) *ContentCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContentCreate) SetID(v uuid.UUID) *ContentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContentCreate) SetNillableID(v *uuid.UUID) *ContentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ContentMutation object of the builder.
func (_c *ContentCreate) Mutation() *ContentMutation {
	return _c.mutation
}

// Save creates the Content in the database.
func (_c *ContentCreate) Save(ctx context.Context) (*Content, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentCreate) SaveX(ctx context.Context) *Content {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := content.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := content.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Tags(); !ok {
		v := content.DefaultTags
		_c.mutation.SetTags(v)
	}
	if _, ok := _c.mutation.IsPublished(); !ok {
		v := content.DefaultIsPublished
		_c.mutation.SetIsPublished(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := content.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := content.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Content.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Content.updated_at"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`repo: missing required field "Content.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := content.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Content.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Content.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := content.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Content.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Content.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := content.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Content.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`repo: missing required field "Content.body"`)}
	}
	if _, ok := _c.mutation.Tags(); !ok {
		return &ValidationError{Name: "tags", err: errors.New(`repo: missing required field "Content.tags"`)}
	}
	if _, ok := _c.mutation.IsPublished(); !ok {
		return &ValidationError{Name: "is_published", err: errors.New(`repo: missing required field "Content.is_published"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`repo: missing required field "Content.sort_order"`)}
	}
	return nil
}

func (_c *ContentCreate) sqlSave(ctx context.Context) (*Content, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContentCreate) createSpec() (*Content, *sqlgraph.CreateSpec) {
	var (
		_node = &Content{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(content.Table, sqlgraph.NewFieldSpec(content.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(content.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(content.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(content.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(content.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(content.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(content.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(content.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(content.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.IsPublished(); ok {
		_spec.SetField(content.FieldIsPublished, field.TypeBool, value)
		_node.IsPublished = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(content.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Content.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ContentCreate) OnConflict(opts ...sql.ConflictOption) *ContentUpsertOne {
	_c.conflict = opts
	return &ContentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Content.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContentCreate) OnConflictColumns(columns ...string) *ContentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContentUpsertOne{
		create: _c,
	}
}

type (
	// ContentUpsertOne is the builder for "upsert"-ing
	//  one Content node.
	ContentUpsertOne struct {
		create *ContentCreate
	}

	// ContentUpsert is the "OnConflict" setter.
	ContentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ContentUpsert) SetUpdatedAt(v time.Time) *ContentUpsert {
	u.Set(content.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContentUpsert) UpdateUpdatedAt() *ContentUpsert {
	u.SetExcluded(content.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ContentUpsert) SetDeletedAt(v time.Time) *ContentUpsert {
	u.Set(content.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ContentUpsert) UpdateDeletedAt() *ContentUpsert {
	u.SetExcluded(content.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ContentUpsert) ClearDeletedAt() *ContentUpsert {
	u.SetNull(content.FieldDeletedAt)
	return u
}

// SetKind sets the "kind" field.
func (u *ContentUpsert) SetKind(v content.Kind) *ContentUpsert {
	u.Set(content.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ContentUpsert) UpdateKind() *ContentUpsert {
	u.SetExcluded(content.FieldKind)
	return u
}

// SetSlug sets the "slug" field.
func (u *ContentUpsert) SetSlug(v string) *ContentUpsert {
	u.Set(content.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ContentUpsert) UpdateSlug() *ContentUpsert {
	u.SetExcluded(content.FieldSlug)
	return u
}

// SetTitle sets the "title" field.
func (u *ContentUpsert) SetTitle(v string) *ContentUpsert {
	u.Set(content.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ContentUpsert) UpdateTitle() *ContentUpsert {
	u.SetExcluded(content.FieldTitle)
	return u
}

// SetBody sets the "body" field.
func (u *ContentUpsert) SetBody(v string) *ContentUpsert {
	u.Set(content.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ContentUpsert) UpdateBody() *ContentUpsert {
	u.SetExcluded(content.FieldBody)
	return u
}

// SetTags sets the "tags" field.
func (u *ContentUpsert) SetTags(v []string) *ContentUpsert {
	u.Set(content.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ContentUpsert) UpdateTags() *ContentUpsert {
	u.SetExcluded(content.FieldTags)
	return u
}

// SetIsPublished sets the "is_published" field.
func (u *ContentUpsert) SetIsPublished(v bool) *ContentUpsert {
	u.Set(content.FieldIsPublished, v)
	return u
}

// UpdateIsPublished sets the "is_published" field to the value that was provided on create.
func (u *ContentUpsert) UpdateIsPublished() *ContentUpsert {
	u.SetExcluded(content.FieldIsPublished)
	return u
}

// SetSortOrder sets the "sort_order" field.
func (u *ContentUpsert) SetSortOrder(v int) *ContentUpsert {
	u.Set(content.FieldSortOrder, v)
	return u
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *ContentUpsert) UpdateSortOrder() *ContentUpsert {
	u.SetExcluded(content.FieldSortOrder)
	return u
}

// AddSortOrder adds v to the "sort_order" field.
func (u *ContentUpsert) AddSortOrder(v int) *ContentUpsert {
	u.Add(content.FieldSortOrder, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Content.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(content.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContentUpsertOne) UpdateNewValues() *ContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(content.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(content.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Content.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContentUpsertOne) Ignore() *ContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContentUpsertOne) DoNothing() *ContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContentCreate.OnConflict
// documentation for more info.
func (u *ContentUpsertOne) Update(set func(*ContentUpsert)) *ContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContentUpsertOne) SetUpdatedAt(v time.Time) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateUpdatedAt() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ContentUpsertOne) SetDeletedAt(v time.Time) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateDeletedAt() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ContentUpsertOne) ClearDeletedAt() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.ClearDeletedAt()
	})
}

// SetKind sets the "kind" field.
func (u *ContentUpsertOne) SetKind(v content.Kind) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateKind() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateKind()
	})
}

// SetSlug sets the "slug" field.
func (u *ContentUpsertOne) SetSlug(v string) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateSlug() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateSlug()
	})
}

// SetTitle sets the "title" field.
func (u *ContentUpsertOne) SetTitle(v string) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateTitle() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *ContentUpsertOne) SetBody(v string) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateBody() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateBody()
	})
}

// SetTags sets the "tags" field.
func (u *ContentUpsertOne) SetTags(v []string) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateTags() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateTags()
	})
}

// SetIsPublished sets the "is_published" field.
func (u *ContentUpsertOne) SetIsPublished(v bool) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetIsPublished(v)
	})
}

// UpdateIsPublished sets the "is_published" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateIsPublished() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateIsPublished()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *ContentUpsertOne) SetSortOrder(v int) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *ContentUpsertOne) AddSortOrder(v int) *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *ContentUpsertOne) UpdateSortOrder() *ContentUpsertOne {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateSortOrder()
	})
}

// Exec executes the query.
func (u *ContentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ContentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ContentUpsertOne.ID is not supported by MySQL driver. Use ContentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContentCreateBulk is the builder for creating many Content entities in bulk.
type ContentCreateBulk struct {
	config
	err      error
	builders []*ContentCreate
	conflict []sql.ConflictOption
}

// Save creates the Content entities in the database.
func (_c *ContentCreateBulk) Save(ctx context.Context) ([]*Content, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Content, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ContentCreateBulk) SaveX(ctx context.Context) []*Content {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Content.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ContentCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContentUpsertBulk {
	_c.conflict = opts
	return &ContentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Content.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContentCreateBulk) OnConflictColumns(columns ...string) *ContentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContentUpsertBulk{
		create: _c,
	}
}

// ContentUpsertBulk is the builder for "upsert"-ing
// a bulk of Content nodes.
type ContentUpsertBulk struct {
	create *ContentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Content.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(content.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContentUpsertBulk) UpdateNewValues() *ContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(content.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(content.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Content.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContentUpsertBulk) Ignore() *ContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContentUpsertBulk) DoNothing() *ContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContentCreateBulk.OnConflict
// documentation for more info.
func (u *ContentUpsertBulk) Update(set func(*ContentUpsert)) *ContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContentUpsertBulk) SetUpdatedAt(v time.Time) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateUpdatedAt() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ContentUpsertBulk) SetDeletedAt(v time.Time) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateDeletedAt() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ContentUpsertBulk) ClearDeletedAt() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.ClearDeletedAt()
	})
}

// SetKind sets the "kind" field.
func (u *ContentUpsertBulk) SetKind(v content.Kind) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateKind() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateKind()
	})
}

// SetSlug sets the "slug" field.
func (u *ContentUpsertBulk) SetSlug(v string) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateSlug() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateSlug()
	})
}

// SetTitle sets the "title" field.
func (u *ContentUpsertBulk) SetTitle(v string) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateTitle() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *ContentUpsertBulk) SetBody(v string) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateBody() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateBody()
	})
}

// SetTags sets the "tags" field.
func (u *ContentUpsertBulk) SetTags(v []string) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateTags() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateTags()
	})
}

// SetIsPublished sets the "is_published" field.
func (u *ContentUpsertBulk) SetIsPublished(v bool) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetIsPublished(v)
	})
}

// UpdateIsPublished sets the "is_published" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateIsPublished() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateIsPublished()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *ContentUpsertBulk) SetSortOrder(v int) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *ContentUpsertBulk) AddSortOrder(v int) *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *ContentUpsertBulk) UpdateSortOrder() *ContentUpsertBulk {
	return u.Update(func(s *ContentUpsert) {
		s.UpdateSortOrder()
	})
}

// Exec executes the query.
func (u *ContentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ContentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ContentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
