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
	"github.com/google/uuid"
	"github.com/medera/medera_backend/internal/repo/doctor"
	"github.com/medera/medera_backend/internal/repo/predicate"
)

// DoctorUpdate is the builder for updating Doctor entities.
type DoctorUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorMutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdate) Where(ps ...predicate.Doctor) *DoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdate) SetUpdatedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DoctorUpdate) SetDeletedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableDeletedAt(v *time.Time) *DoctorUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DoctorUpdate) ClearDeletedAt() *DoctorUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdate) SetUserID(v uuid.UUID) *DoctorUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableUserID(v *uuid.UUID) *DoctorUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DoctorUpdate) ClearUserID() *DoctorUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetName sets the "name" field.
func (_u *DoctorUpdate) SetName(v string) *DoctorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableName(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorUpdate) SetSpecialty(v string) *DoctorUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableSpecialty(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// SetBio sets the "bio" field.
func (_u *DoctorUpdate) SetBio(v string) *DoctorUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableBio(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *DoctorUpdate) ClearBio() *DoctorUpdate {
	_u.mutation.ClearBio()
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *DoctorUpdate) SetExperienceYears(v int) *DoctorUpdate {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableExperienceYears(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *DoctorUpdate) AddExperienceYears(v int) *DoctorUpdate {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *DoctorUpdate) SetConsultationFee(v int64) *DoctorUpdate {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableConsultationFee(v *int64) *DoctorUpdate {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *DoctorUpdate) AddConsultationFee(v int64) *DoctorUpdate {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *DoctorUpdate) SetSchedule(v map[string][]string) *DoctorUpdate {
	_u.mutation.SetSchedule(v)
	return _u
}

// SetIsAvailable sets the "is_available" field.
func (_u *DoctorUpdate) SetIsAvailable(v bool) *DoctorUpdate {
	_u.mutation.SetIsAvailable(v)
	return _u
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableIsAvailable(v *bool) *DoctorUpdate {
	if v != nil {
		_u.SetIsAvailable(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *DoctorUpdate) SetRating(v float64) *DoctorUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableRating(v *float64) *DoctorUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *DoctorUpdate) AddRating(v float64) *DoctorUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *DoctorUpdate) SetReviewCount(v int) *DoctorUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableReviewCount(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *DoctorUpdate) AddReviewCount(v int) *DoctorUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetConsultationTypes sets the "consultation_types" field.
func (_u *DoctorUpdate) SetConsultationTypes(v []string) *DoctorUpdate {
	_u.mutation.SetConsultationTypes(v)
	return _u
}

// AppendConsultationTypes appends value to the "consultation_types" field.
func (_u *DoctorUpdate) AppendConsultationTypes(v []string) *DoctorUpdate {
	_u.mutation.AppendConsultationTypes(v)
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *DoctorUpdate) SetImageURL(v string) *DoctorUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableImageURL(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *DoctorUpdate) ClearImageURL() *DoctorUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdate) Mutation() *DoctorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := doctor.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := doctor.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "Doctor.experience_years": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := doctor.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`repo: validator failed for field "Doctor.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := doctor.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`repo: validator failed for field "Doctor.review_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageURL(); ok {
		if err := doctor.ImageURLValidator(v); err != nil {
			return &ValidationError{Name: "image_url", err: fmt.Errorf(`repo: validator failed for field "Doctor.image_url": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(doctor.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(doctor.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(doctor.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(doctor.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(doctor.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(doctor.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(doctor.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(doctor.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IsAvailable(); ok {
		_spec.SetField(doctor.FieldIsAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(doctor.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(doctor.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(doctor.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(doctor.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsultationTypes(); ok {
		_spec.SetField(doctor.FieldConsultationTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConsultationTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldConsultationTypes, value)
		})
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(doctor.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(doctor.FieldImageURL, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorUpdateOne is the builder for updating a single Doctor entity.
type DoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdateOne) SetUpdatedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DoctorUpdateOne) SetDeletedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableDeletedAt(v *time.Time) *DoctorUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DoctorUpdateOne) ClearDeletedAt() *DoctorUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdateOne) SetUserID(v uuid.UUID) *DoctorUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableUserID(v *uuid.UUID) *DoctorUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DoctorUpdateOne) ClearUserID() *DoctorUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetName sets the "name" field.
func (_u *DoctorUpdateOne) SetName(v string) *DoctorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableName(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorUpdateOne) SetSpecialty(v string) *DoctorUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableSpecialty(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// SetBio sets the "bio" field.
func (_u *DoctorUpdateOne) SetBio(v string) *DoctorUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableBio(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *DoctorUpdateOne) ClearBio() *DoctorUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *DoctorUpdateOne) SetExperienceYears(v int) *DoctorUpdateOne {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableExperienceYears(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *DoctorUpdateOne) AddExperienceYears(v int) *DoctorUpdateOne {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *DoctorUpdateOne) SetConsultationFee(v int64) *DoctorUpdateOne {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableConsultationFee(v *int64) *DoctorUpdateOne {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *DoctorUpdateOne) AddConsultationFee(v int64) *DoctorUpdateOne {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *DoctorUpdateOne) SetSchedule(v map[string][]string) *DoctorUpdateOne {
	_u.mutation.SetSchedule(v)
	return _u
}

// SetIsAvailable sets the "is_available" field.
func (_u *DoctorUpdateOne) SetIsAvailable(v bool) *DoctorUpdateOne {
	_u.mutation.SetIsAvailable(v)
	return _u
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableIsAvailable(v *bool) *DoctorUpdateOne {
	if v != nil {
		_u.SetIsAvailable(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *DoctorUpdateOne) SetRating(v float64) *DoctorUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableRating(v *float64) *DoctorUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *DoctorUpdateOne) AddRating(v float64) *DoctorUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *DoctorUpdateOne) SetReviewCount(v int) *DoctorUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableReviewCount(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *DoctorUpdateOne) AddReviewCount(v int) *DoctorUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetConsultationTypes sets the "consultation_types" field.
func (_u *DoctorUpdateOne) SetConsultationTypes(v []string) *DoctorUpdateOne {
	_u.mutation.SetConsultationTypes(v)
	return _u
}

// AppendConsultationTypes appends value to the "consultation_types" field.
func (_u *DoctorUpdateOne) AppendConsultationTypes(v []string) *DoctorUpdateOne {
	_u.mutation.AppendConsultationTypes(v)
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *DoctorUpdateOne) SetImageURL(v string) *DoctorUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableImageURL(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *DoctorUpdateOne) ClearImageURL() *DoctorUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdateOne) Mutation() *DoctorMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdateOne) Where(ps ...predicate.Doctor) *DoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorUpdateOne) Select(field string, fields ...string) *DoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doctor entity.
func (_u *DoctorUpdateOne) Save(ctx context.Context) (*Doctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdateOne) SaveX(ctx context.Context) *Doctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := doctor.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := doctor.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "Doctor.experience_years": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := doctor.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`repo: validator failed for field "Doctor.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := doctor.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`repo: validator failed for field "Doctor.review_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageURL(); ok {
		if err := doctor.ImageURLValidator(v); err != nil {
			return &ValidationError{Name: "image_url", err: fmt.Errorf(`repo: validator failed for field "Doctor.image_url": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdateOne) sqlSave(ctx context.Context) (_node *Doctor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Doctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctor.FieldID)
		for _, f := range fields {
			if !doctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctor.FieldID {
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
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(doctor.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(doctor.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(doctor.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(doctor.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(doctor.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(doctor.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(doctor.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(doctor.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IsAvailable(); ok {
		_spec.SetField(doctor.FieldIsAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(doctor.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(doctor.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(doctor.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(doctor.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsultationTypes(); ok {
		_spec.SetField(doctor.FieldConsultationTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConsultationTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldConsultationTypes, value)
		})
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(doctor.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(doctor.FieldImageURL, field.TypeString)
	}
	_node = &Doctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
