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
	"github.com/medera/medera_backend/internal/repo/testimonial"
)

// TestimonialCreate is the builder for creating a Testimonial entity.
type TestimonialCreate struct {
	config
	mutation *TestimonialMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestimonialCreate) SetCreatedAt(v time.Time) *TestimonialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableCreatedAt(v *time.Time) *TestimonialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TestimonialCreate) SetUpdatedAt(v time.Time) *TestimonialCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableUpdatedAt(v *time.Time) *TestimonialCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *TestimonialCreate) SetDoctorID(v uuid.UUID) *TestimonialCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *TestimonialCreate) SetAppointmentID(v uuid.UUID) *TestimonialCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *TestimonialCreate) SetPatientName(v string) *TestimonialCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetDoctorName sets the "doctor_name" field.
func (_c *TestimonialCreate) SetDoctorName(v string) *TestimonialCreate {
	_c.mutation.SetDoctorName(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *TestimonialCreate) SetRating(v int) *TestimonialCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetComment sets the "comment" field.
func (_c *TestimonialCreate) SetComment(v string) *TestimonialCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetTreatmentType sets the "treatment_type" field.
func (_c *TestimonialCreate) SetTreatmentType(v string) *TestimonialCreate {
	_c.mutation.SetTreatmentType(v)
	return _c
}

// SetNillableTreatmentType sets the "treatment_type" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableTreatmentType(v *string) *TestimonialCreate {
	if v != nil {
		_c.SetTreatmentType(*v)
	}
	return _c
}

// SetIsVerified sets the "is_verified" field.
func (_c *TestimonialCreate) SetIsVerified(v bool) *TestimonialCreate {
	_c.mutation.SetIsVerified(v)
	return _c
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableIsVerified(v *bool) *TestimonialCreate {
	if v != nil {
		_c.SetIsVerified(*v)
	}
	return _c
}

// SetIsPublic sets the "is_public" field.
func (_c *TestimonialCreate) SetIsPublic(v bool) *TestimonialCreate {
	_c.mutation.SetIsPublic(v)
	return _c
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableIsPublic(v *bool) *TestimonialCreate {
	if v != nil {
		_c.SetIsPublic(*v)
	}
	return _c
}

// SetHelpfulVotes sets the "helpful_votes" field.
func (_c *TestimonialCreate) SetHelpfulVotes(v int) *TestimonialCreate {
	_c.mutation.SetHelpfulVotes(v)
	return _c
}

// SetNillableHelpfulVotes sets the "helpful_votes" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableHelpfulVotes(v *int) *TestimonialCreate {
	if v != nil {
		_c.SetHelpfulVotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestimonialCreate) SetID(v uuid.UUID) *TestimonialCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableID(v *uuid.UUID) *TestimonialCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TestimonialMutation object of the builder.
func (_c *TestimonialCreate) Mutation() *TestimonialMutation {
	return _c.mutation
}

// Save creates the Testimonial in the database.
func (_c *TestimonialCreate) Save(ctx context.Context) (*Testimonial, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestimonialCreate) SaveX(ctx context.Context) *Testimonial {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestimonialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestimonialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestimonialCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testimonial.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := testimonial.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		v := testimonial.DefaultIsVerified
		_c.mutation.SetIsVerified(v)
	}
	if _, ok := _c.mutation.IsPublic(); !ok {
		v := testimonial.DefaultIsPublic
		_c.mutation.SetIsPublic(v)
	}
	if _, ok := _c.mutation.HelpfulVotes(); !ok {
		v := testimonial.DefaultHelpfulVotes
		_c.mutation.SetHelpfulVotes(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := testimonial.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestimonialCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Testimonial.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Testimonial.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Testimonial.doctor_id"`)}
	}
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "Testimonial.appointment_id"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`repo: missing required field "Testimonial.patient_name"`)}
	}
	if v, ok := _c.mutation.PatientName(); ok {
		if err := testimonial.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Testimonial.patient_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DoctorName(); !ok {
		return &ValidationError{Name: "doctor_name", err: errors.New(`repo: missing required field "Testimonial.doctor_name"`)}
	}
	if v, ok := _c.mutation.DoctorName(); ok {
		if err := testimonial.DoctorNameValidator(v); err != nil {
			return &ValidationError{Name: "doctor_name", err: fmt.Errorf(`repo: validator failed for field "Testimonial.doctor_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`repo: missing required field "Testimonial.rating"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := testimonial.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`repo: validator failed for field "Testimonial.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Comment(); !ok {
		return &ValidationError{Name: "comment", err: errors.New(`repo: missing required field "Testimonial.comment"`)}
	}
	if v, ok := _c.mutation.TreatmentType(); ok {
		if err := testimonial.TreatmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "treatment_type", err: fmt.Errorf(`repo: validator failed for field "Testimonial.treatment_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		return &ValidationError{Name: "is_verified", err: errors.New(`repo: missing required field "Testimonial.is_verified"`)}
	}
	if _, ok := _c.mutation.IsPublic(); !ok {
		return &ValidationError{Name: "is_public", err: errors.New(`repo: missing required field "Testimonial.is_public"`)}
	}
	if _, ok := _c.mutation.HelpfulVotes(); !ok {
		return &ValidationError{Name: "helpful_votes", err: errors.New(`repo: missing required field "Testimonial.helpful_votes"`)}
	}
	if v, ok := _c.mutation.HelpfulVotes(); ok {
		if err := testimonial.HelpfulVotesValidator(v); err != nil {
			return &ValidationError{Name: "helpful_votes", err: fmt.Errorf(`repo: validator failed for field "Testimonial.helpful_votes": %w`, err)}
		}
	}
	return nil
}

func (_c *TestimonialCreate) sqlSave(ctx context.Context) (*Testimonial, error) {
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

func (_c *TestimonialCreate) createSpec() (*Testimonial, *sqlgraph.CreateSpec) {
	var (
		_node = &Testimonial{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testimonial.Table, sqlgraph.NewFieldSpec(testimonial.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testimonial.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(testimonial.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(testimonial.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(testimonial.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(testimonial.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.DoctorName(); ok {
		_spec.SetField(testimonial.FieldDoctorName, field.TypeString, value)
		_node.DoctorName = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(testimonial.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(testimonial.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.TreatmentType(); ok {
		_spec.SetField(testimonial.FieldTreatmentType, field.TypeString, value)
		_node.TreatmentType = value
	}
	if value, ok := _c.mutation.IsVerified(); ok {
		_spec.SetField(testimonial.FieldIsVerified, field.TypeBool, value)
		_node.IsVerified = value
	}
	if value, ok := _c.mutation.IsPublic(); ok {
		_spec.SetField(testimonial.FieldIsPublic, field.TypeBool, value)
		_node.IsPublic = value
	}
	if value, ok := _c.mutation.HelpfulVotes(); ok {
		_spec.SetField(testimonial.FieldHelpfulVotes, field.TypeInt, value)
		_node.HelpfulVotes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Testimonial.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestimonialUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TestimonialCreate) OnConflict(opts ...sql.ConflictOption) *TestimonialUpsertOne {
	_c.conflict = opts
	return &TestimonialUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Testimonial.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestimonialCreate) OnConflictColumns(columns ...string) *TestimonialUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestimonialUpsertOne{
		create: _c,
	}
}

type (
	// TestimonialUpsertOne is the builder for "upsert"-ing
	//  one Testimonial node.
	TestimonialUpsertOne struct {
		create *TestimonialCreate
	}

	// TestimonialUpsert is the "OnConflict" setter.
	TestimonialUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TestimonialUpsert) SetUpdatedAt(v time.Time) *TestimonialUpsert {
	u.Set(testimonial.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TestimonialUpsert) UpdateUpdatedAt() *TestimonialUpsert {
	u.SetExcluded(testimonial.FieldUpdatedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *TestimonialUpsert) SetDoctorID(v uuid.UUID) *TestimonialUpsert {
	u.Set(testimonial.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TestimonialUpsert) UpdateDoctorID() *TestimonialUpsert {
	u.SetExcluded(testimonial.FieldDoctorID)
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *TestimonialUpsert) SetAppointmentID(v uuid.UUID) *TestimonialUpsert {
	u.Set(testimonial.FieldAppointmentID, v)
	return u
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *TestimonialUpsert) UpdateAppointmentID() *TestimonialUpsert {
	u.SetExcluded(testimonial.FieldAppointmentID)
	return u
}

// SetPatientName sets the "patient_name" field.
func (u *TestimonialUpsert) SetPatientName(v string) *TestimonialUpsert {
	u.Set(testimonial.FieldPatientName, v)
	return u
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *TestimonialUpsert) UpdatePatientName() *TestimonialUpsert {
	u.SetExcluded(testimonial.FieldPatientName)
	return u
}

// SetDoctorName sets the "doctor_name" field.
func (u *TestimonialUpsert) SetDoctorName(v string) *TestimonialUpsert {
	u.Set(testimonial.FieldDoctorName, v)
	return u
}

// UpdateDoctorName sets the "doctor_name" field to the value that was provided on create.
func (u *TestimonialUpsert) UpdateDoctorName() *TestimonialUpsert {
	u.SetExcluded(testimonial.FieldDoctorName)
	return u
}

// SetRating sets the "rating" field.
func (u *TestimonialUpsert) SetRating(v int) *TestimonialUpsert {
	u.Set(testimonial.FieldRating, v)
	return u
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *TestimonialUpsert) UpdateRating() *TestimonialUpsert {
	u.SetExcluded(testimonial.FieldRating)
	return u
}

// AddRating adds v to the "rating" field.
func (u *TestimonialUpsert) AddRating(v int) *TestimonialUpsert {
	u.Add(testimonial.FieldRating, v)
	return u
}

// SetComment sets the "comment" field.
func (u *TestimonialUpsert) SetComment(v string) *TestimonialUpsert {
	u.Set(testimonial.FieldComment, v)
	return u
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *TestimonialUpsert) UpdateComment() *TestimonialUpsert {
	u.SetExcluded(testimonial.FieldComment)
	return u
}

// SetTreatmentType sets the "treatment_type" field.
func (u *TestimonialUpsert) SetTreatmentType(v string) *TestimonialUpsert {
	u.Set(testimonial.FieldTreatmentType, v)
	return u
}

// UpdateTreatmentType sets the "treatment_type" field to the value that was provided on create.
func (u *TestimonialUpsert) UpdateTreatmentType() *TestimonialUpsert {
	u.SetExcluded(testimonial.FieldTreatmentType)
	return u
}

// ClearTreatmentType clears the value of the "treatment_type" field.
func (u *TestimonialUpsert) ClearTreatmentType() *TestimonialUpsert {
	u.SetNull(testimonial.FieldTreatmentType)
	return u
}

// SetIsVerified sets the "is_verified" field.
func (u *TestimonialUpsert) SetIsVerified(v bool) *TestimonialUpsert {
	u.Set(testimonial.FieldIsVerified, v)
	return u
}

// UpdateIsVerified sets the "is_verified" field to the value that was provided on create.
func (u *TestimonialUpsert) UpdateIsVerified() *TestimonialUpsert {
	u.SetExcluded(testimonial.FieldIsVerified)
	return u
}

// SetIsPublic sets the "is_public" field.
func (u *TestimonialUpsert) SetIsPublic(v bool) *TestimonialUpsert {
	u.Set(testimonial.FieldIsPublic, v)
	return u
}

// UpdateIsPublic sets the "is_public" field to the value that was provided on create.
func (u *TestimonialUpsert) UpdateIsPublic() *TestimonialUpsert {
	u.SetExcluded(testimonial.FieldIsPublic)
	return u
}

// SetHelpfulVotes sets the "helpful_votes" field.
func (u *TestimonialUpsert) SetHelpfulVotes(v int) *TestimonialUpsert {
	u.Set(testimonial.FieldHelpfulVotes, v)
	return u
}

// UpdateHelpfulVotes sets the "helpful_votes" field to the value that was provided on create.
func (u *TestimonialUpsert) UpdateHelpfulVotes() *TestimonialUpsert {
	u.SetExcluded(testimonial.FieldHelpfulVotes)
	return u
}

// AddHelpfulVotes adds v to the "helpful_votes" field.
func (u *TestimonialUpsert) AddHelpfulVotes(v int) *TestimonialUpsert {
	u.Add(testimonial.FieldHelpfulVotes, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Testimonial.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(testimonial.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestimonialUpsertOne) UpdateNewValues() *TestimonialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(testimonial.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(testimonial.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Testimonial.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TestimonialUpsertOne) Ignore() *TestimonialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestimonialUpsertOne) DoNothing() *TestimonialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestimonialCreate.OnConflict
// documentation for more info.
func (u *TestimonialUpsertOne) Update(set func(*TestimonialUpsert)) *TestimonialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestimonialUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TestimonialUpsertOne) SetUpdatedAt(v time.Time) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TestimonialUpsertOne) UpdateUpdatedAt() *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *TestimonialUpsertOne) SetDoctorID(v uuid.UUID) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TestimonialUpsertOne) UpdateDoctorID() *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateDoctorID()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *TestimonialUpsertOne) SetAppointmentID(v uuid.UUID) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *TestimonialUpsertOne) UpdateAppointmentID() *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateAppointmentID()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *TestimonialUpsertOne) SetPatientName(v string) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *TestimonialUpsertOne) UpdatePatientName() *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdatePatientName()
	})
}

// SetDoctorName sets the "doctor_name" field.
func (u *TestimonialUpsertOne) SetDoctorName(v string) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetDoctorName(v)
	})
}

// UpdateDoctorName sets the "doctor_name" field to the value that was provided on create.
func (u *TestimonialUpsertOne) UpdateDoctorName() *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateDoctorName()
	})
}

// SetRating sets the "rating" field.
func (u *TestimonialUpsertOne) SetRating(v int) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *TestimonialUpsertOne) AddRating(v int) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *TestimonialUpsertOne) UpdateRating() *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateRating()
	})
}

// SetComment sets the "comment" field.
func (u *TestimonialUpsertOne) SetComment(v string) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetComment(v)
	})
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *TestimonialUpsertOne) UpdateComment() *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateComment()
	})
}

// SetTreatmentType sets the "treatment_type" field.
func (u *TestimonialUpsertOne) SetTreatmentType(v string) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetTreatmentType(v)
	})
}

// UpdateTreatmentType sets the "treatment_type" field to the value that was provided on create.
func (u *TestimonialUpsertOne) UpdateTreatmentType() *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateTreatmentType()
	})
}

// ClearTreatmentType clears the value of the "treatment_type" field.
func (u *TestimonialUpsertOne) ClearTreatmentType() *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.ClearTreatmentType()
	})
}

// SetIsVerified sets the "is_verified" field.
func (u *TestimonialUpsertOne) SetIsVerified(v bool) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetIsVerified(v)
	})
}

// UpdateIsVerified sets the "is_verified" field to the value that was provided on create.
func (u *TestimonialUpsertOne) UpdateIsVerified() *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateIsVerified()
	})
}

// SetIsPublic sets the "is_public" field.
func (u *TestimonialUpsertOne) SetIsPublic(v bool) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetIsPublic(v)
	})
}

// UpdateIsPublic sets the "is_public" field to the value that was provided on create.
func (u *TestimonialUpsertOne) UpdateIsPublic() *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateIsPublic()
	})
}

// SetHelpfulVotes sets the "helpful_votes" field.
func (u *TestimonialUpsertOne) SetHelpfulVotes(v int) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetHelpfulVotes(v)
	})
}

// AddHelpfulVotes adds v to the "helpful_votes" field.
func (u *TestimonialUpsertOne) AddHelpfulVotes(v int) *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.AddHelpfulVotes(v)
	})
}

// UpdateHelpfulVotes sets the "helpful_votes" field to the value that was provided on create.
func (u *TestimonialUpsertOne) UpdateHelpfulVotes() *TestimonialUpsertOne {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateHelpfulVotes()
	})
}

// Exec executes the query.
func (u *TestimonialUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TestimonialCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestimonialUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TestimonialUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TestimonialUpsertOne.ID is not supported by MySQL driver. Use TestimonialUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TestimonialUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TestimonialCreateBulk is the builder for creating many Testimonial entities in bulk.
type TestimonialCreateBulk struct {
	config
	err      error
	builders []*TestimonialCreate
	conflict []sql.ConflictOption
}

// Save creates the Testimonial entities in the database.
func (_c *TestimonialCreateBulk) Save(ctx context.Context) ([]*Testimonial, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Testimonial, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestimonialMutation)
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
func (_c *TestimonialCreateBulk) SaveX(ctx context.Context) []*Testimonial {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestimonialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestimonialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Testimonial.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestimonialUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TestimonialCreateBulk) OnConflict(opts ...sql.ConflictOption) *TestimonialUpsertBulk {
	_c.conflict = opts
	return &TestimonialUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Testimonial.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestimonialCreateBulk) OnConflictColumns(columns ...string) *TestimonialUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestimonialUpsertBulk{
		create: _c,
	}
}

// TestimonialUpsertBulk is the builder for "upsert"-ing
// a bulk of Testimonial nodes.
type TestimonialUpsertBulk struct {
	create *TestimonialCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Testimonial.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(testimonial.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestimonialUpsertBulk) UpdateNewValues() *TestimonialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(testimonial.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(testimonial.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Testimonial.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TestimonialUpsertBulk) Ignore() *TestimonialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestimonialUpsertBulk) DoNothing() *TestimonialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestimonialCreateBulk.OnConflict
// documentation for more info.
func (u *TestimonialUpsertBulk) Update(set func(*TestimonialUpsert)) *TestimonialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestimonialUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TestimonialUpsertBulk) SetUpdatedAt(v time.Time) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TestimonialUpsertBulk) UpdateUpdatedAt() *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *TestimonialUpsertBulk) SetDoctorID(v uuid.UUID) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TestimonialUpsertBulk) UpdateDoctorID() *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateDoctorID()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *TestimonialUpsertBulk) SetAppointmentID(v uuid.UUID) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *TestimonialUpsertBulk) UpdateAppointmentID() *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateAppointmentID()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *TestimonialUpsertBulk) SetPatientName(v string) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *TestimonialUpsertBulk) UpdatePatientName() *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdatePatientName()
	})
}

// SetDoctorName sets the "doctor_name" field.
func (u *TestimonialUpsertBulk) SetDoctorName(v string) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetDoctorName(v)
	})
}

// UpdateDoctorName sets the "doctor_name" field to the value that was provided on create.
func (u *TestimonialUpsertBulk) UpdateDoctorName() *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateDoctorName()
	})
}

// SetRating sets the "rating" field.
func (u *TestimonialUpsertBulk) SetRating(v int) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *TestimonialUpsertBulk) AddRating(v int) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *TestimonialUpsertBulk) UpdateRating() *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateRating()
	})
}

// SetComment sets the "comment" field.
func (u *TestimonialUpsertBulk) SetComment(v string) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetComment(v)
	})
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *TestimonialUpsertBulk) UpdateComment() *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateComment()
	})
}

// SetTreatmentType sets the "treatment_type" field.
func (u *TestimonialUpsertBulk) SetTreatmentType(v string) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetTreatmentType(v)
	})
}

// UpdateTreatmentType sets the "treatment_type" field to the value that was provided on create.
func (u *TestimonialUpsertBulk) UpdateTreatmentType() *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateTreatmentType()
	})
}

// ClearTreatmentType clears the value of the "treatment_type" field.
func (u *TestimonialUpsertBulk) ClearTreatmentType() *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.ClearTreatmentType()
	})
}

// SetIsVerified sets the "is_verified" field.
func (u *TestimonialUpsertBulk) SetIsVerified(v bool) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetIsVerified(v)
	})
}

// UpdateIsVerified sets the "is_verified" field to the value that was provided on create.
func (u *TestimonialUpsertBulk) UpdateIsVerified() *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateIsVerified()
	})
}

// SetIsPublic sets the "is_public" field.
func (u *TestimonialUpsertBulk) SetIsPublic(v bool) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetIsPublic(v)
	})
}

// UpdateIsPublic sets the "is_public" field to the value that was provided on create.
func (u *TestimonialUpsertBulk) UpdateIsPublic() *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateIsPublic()
	})
}

// SetHelpfulVotes sets the "helpful_votes" field.
func (u *TestimonialUpsertBulk) SetHelpfulVotes(v int) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.SetHelpfulVotes(v)
	})
}

// AddHelpfulVotes adds v to the "helpful_votes" field.
func (u *TestimonialUpsertBulk) AddHelpfulVotes(v int) *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.AddHelpfulVotes(v)
	})
}

// UpdateHelpfulVotes sets the "helpful_votes" field to the value that was provided on create.
func (u *TestimonialUpsertBulk) UpdateHelpfulVotes() *TestimonialUpsertBulk {
	return u.Update(func(s *TestimonialUpsert) {
		s.UpdateHelpfulVotes()
	})
}

// Exec executes the query.
func (u *TestimonialUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TestimonialCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TestimonialCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestimonialUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
