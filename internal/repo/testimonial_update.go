// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medera/medera_backend/internal/repo/predicate"
	"github.com/medera/medera_backend/internal/repo/testimonial"
)

// TestimonialUpdate is the builder for updating Testimonial entities.
type TestimonialUpdate struct {
	config
	hooks    []Hook
	mutation *TestimonialMutation
}

// Where appends a list predicates to the TestimonialUpdate builder.
func (_u *TestimonialUpdate) Where(ps ...predicate.Testimonial) *TestimonialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestimonialUpdate) SetUpdatedAt(v time.Time) *TestimonialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TestimonialUpdate) SetDoctorID(v uuid.UUID) *TestimonialUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableDoctorID(v *uuid.UUID) *TestimonialUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *TestimonialUpdate) SetAppointmentID(v uuid.UUID) *TestimonialUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableAppointmentID(v *uuid.UUID) *TestimonialUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *TestimonialUpdate) SetPatientName(v string) *TestimonialUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillablePatientName(v *string) *TestimonialUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *TestimonialUpdate) SetDoctorName(v string) *TestimonialUpdate {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableDoctorName(v *string) *TestimonialUpdate {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *TestimonialUpdate) SetRating(v int) *TestimonialUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableRating(v *int) *TestimonialUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *TestimonialUpdate) AddRating(v int) *TestimonialUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *TestimonialUpdate) SetComment(v string) *TestimonialUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableComment(v *string) *TestimonialUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetTreatmentType sets the "treatment_type" field.
func (_u *TestimonialUpdate) SetTreatmentType(v string) *TestimonialUpdate {
	_u.mutation.SetTreatmentType(v)
	return _u
}

// SetNillableTreatmentType sets the "treatment_type" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableTreatmentType(v *string) *TestimonialUpdate {
	if v != nil {
		_u.SetTreatmentType(*v)
	}
	return _u
}

// ClearTreatmentType clears the value of the "treatment_type" field.
func (_u *TestimonialUpdate) ClearTreatmentType() *TestimonialUpdate {
	_u.mutation.ClearTreatmentType()
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *TestimonialUpdate) SetIsVerified(v bool) *TestimonialUpdate {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableIsVerified(v *bool) *TestimonialUpdate {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *TestimonialUpdate) SetIsPublic(v bool) *TestimonialUpdate {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableIsPublic(v *bool) *TestimonialUpdate {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetHelpfulVotes sets the "helpful_votes" field.
func (_u *TestimonialUpdate) SetHelpfulVotes(v int) *TestimonialUpdate {
	_u.mutation.ResetHelpfulVotes()
	_u.mutation.SetHelpfulVotes(v)
	return _u
}

// SetNillableHelpfulVotes sets the "helpful_votes" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableHelpfulVotes(v *int) *TestimonialUpdate {
	if v != nil {
		_u.SetHelpfulVotes(*v)
	}
	return _u
}

// AddHelpfulVotes adds value to the "helpful_votes" field.
func (_u *TestimonialUpdate) AddHelpfulVotes(v int) *TestimonialUpdate {
	_u.mutation.AddHelpfulVotes(v)
	return _u
}

// Mutation returns the TestimonialMutation object of the builder.
func (_u *TestimonialUpdate) Mutation() *TestimonialMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestimonialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestimonialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestimonialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestimonialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestimonialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testimonial.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestimonialUpdate) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := testimonial.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Testimonial.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DoctorName(); ok {
		if err := testimonial.DoctorNameValidator(v); err != nil {
			return &ValidationError{Name: "doctor_name", err: fmt.Errorf(`repo: validator failed for field "Testimonial.doctor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := testimonial.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`repo: validator failed for field "Testimonial.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TreatmentType(); ok {
		if err := testimonial.TreatmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "treatment_type", err: fmt.Errorf(`repo: validator failed for field "Testimonial.treatment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HelpfulVotes(); ok {
		if err := testimonial.HelpfulVotesValidator(v); err != nil {
			return &ValidationError{Name: "helpful_votes", err: fmt.Errorf(`repo: validator failed for field "Testimonial.helpful_votes": %w`, err)}
		}
	}
	return nil
}

func (_u *TestimonialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testimonial.Table, testimonial.Columns, sqlgraph.NewFieldSpec(testimonial.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(testimonial.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(testimonial.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(testimonial.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(testimonial.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(testimonial.FieldDoctorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(testimonial.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(testimonial.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(testimonial.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.TreatmentType(); ok {
		_spec.SetField(testimonial.FieldTreatmentType, field.TypeString, value)
	}
	if _u.mutation.TreatmentTypeCleared() {
		_spec.ClearField(testimonial.FieldTreatmentType, field.TypeString)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(testimonial.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(testimonial.FieldIsPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HelpfulVotes(); ok {
		_spec.SetField(testimonial.FieldHelpfulVotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHelpfulVotes(); ok {
		_spec.AddField(testimonial.FieldHelpfulVotes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testimonial.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestimonialUpdateOne is the builder for updating a single Testimonial entity.
type TestimonialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestimonialMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestimonialUpdateOne) SetUpdatedAt(v time.Time) *TestimonialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TestimonialUpdateOne) SetDoctorID(v uuid.UUID) *TestimonialUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableDoctorID(v *uuid.UUID) *TestimonialUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *TestimonialUpdateOne) SetAppointmentID(v uuid.UUID) *TestimonialUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *TestimonialUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *TestimonialUpdateOne) SetPatientName(v string) *TestimonialUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillablePatientName(v *string) *TestimonialUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *TestimonialUpdateOne) SetDoctorName(v string) *TestimonialUpdateOne {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableDoctorName(v *string) *TestimonialUpdateOne {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *TestimonialUpdateOne) SetRating(v int) *TestimonialUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableRating(v *int) *TestimonialUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *TestimonialUpdateOne) AddRating(v int) *TestimonialUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *TestimonialUpdateOne) SetComment(v string) *TestimonialUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableComment(v *string) *TestimonialUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetTreatmentType sets the "treatment_type" field.
func (_u *TestimonialUpdateOne) SetTreatmentType(v string) *TestimonialUpdateOne {
	_u.mutation.SetTreatmentType(v)
	return _u
}

// SetNillableTreatmentType sets the "treatment_type" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableTreatmentType(v *string) *TestimonialUpdateOne {
	if v != nil {
		_u.SetTreatmentType(*v)
	}
	return _u
}

// ClearTreatmentType clears the value of the "treatment_type" field.
func (_u *TestimonialUpdateOne) ClearTreatmentType() *TestimonialUpdateOne {
	_u.mutation.ClearTreatmentType()
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *TestimonialUpdateOne) SetIsVerified(v bool) *TestimonialUpdateOne {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableIsVerified(v *bool) *TestimonialUpdateOne {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *TestimonialUpdateOne) SetIsPublic(v bool) *TestimonialUpdateOne {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableIsPublic(v *bool) *TestimonialUpdateOne {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetHelpfulVotes sets the "helpful_votes" field.
func (_u *TestimonialUpdateOne) SetHelpfulVotes(v int) *TestimonialUpdateOne {
	_u.mutation.ResetHelpfulVotes()
	_u.mutation.SetHelpfulVotes(v)
	return _u
}

// SetNillableHelpfulVotes sets the "helpful_votes" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableHelpfulVotes(v *int) *TestimonialUpdateOne {
	if v != nil {
		_u.SetHelpfulVotes(*v)
	}
	return _u
}

// AddHelpfulVotes adds value to the "helpful_votes" field.
func (_u *TestimonialUpdateOne) AddHelpfulVotes(v int) *TestimonialUpdateOne {
	_u.mutation.AddHelpfulVotes(v)
	return _u
}

// Mutation returns the TestimonialMutation object of the builder.
func (_u *TestimonialUpdateOne) Mutation() *TestimonialMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestimonialUpdate builder.
func (_u *TestimonialUpdateOne) Where(ps ...predicate.Testimonial) *TestimonialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestimonialUpdateOne) Select(field string, fields ...string) *TestimonialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Testimonial entity.
func (_u *TestimonialUpdateOne) Save(ctx context.Context) (*Testimonial, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestimonialUpdateOne) SaveX(ctx context.Context) *Testimonial {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestimonialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestimonialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestimonialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testimonial.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestimonialUpdateOne) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := testimonial.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Testimonial.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DoctorName(); ok {
		if err := testimonial.DoctorNameValidator(v); err != nil {
			return &ValidationError{Name: "doctor_name", err: fmt.Errorf(`repo: validator failed for field "Testimonial.doctor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := testimonial.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`repo: validator failed for field "Testimonial.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TreatmentType(); ok {
		if err := testimonial.TreatmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "treatment_type", err: fmt.Errorf(`repo: validator failed for field "Testimonial.treatment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HelpfulVotes(); ok {
		if err := testimonial.HelpfulVotesValidator(v); err != nil {
			return &ValidationError{Name: "helpful_votes", err: fmt.Errorf(`repo: validator failed for field "Testimonial.helpful_votes": %w`, err)}
		}
	}
	return nil
}

func (_u *TestimonialUpdateOne) sqlSave(ctx context.Context) (_node *Testimonial, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testimonial.Table, testimonial.Columns, sqlgraph.NewFieldSpec(testimonial.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Testimonial.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testimonial.FieldID)
		for _, f := range fields {
			if !testimonial.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != testimonial.FieldID {
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
		_spec.SetField(testimonial.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(testimonial.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(testimonial.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(testimonial.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(testimonial.FieldDoctorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(testimonial.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(testimonial.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(testimonial.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.TreatmentType(); ok {
		_spec.SetField(testimonial.FieldTreatmentType, field.TypeString, value)
	}
	if _u.mutation.TreatmentTypeCleared() {
		_spec.ClearField(testimonial.FieldTreatmentType, field.TypeString)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(testimonial.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(testimonial.FieldIsPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HelpfulVotes(); ok {
		_spec.SetField(testimonial.FieldHelpfulVotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHelpfulVotes(); ok {
		_spec.AddField(testimonial.FieldHelpfulVotes, field.TypeInt, value)
	}
	_node = &Testimonial{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testimonial.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
