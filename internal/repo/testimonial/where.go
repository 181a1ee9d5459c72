// Code generated by ent, DO NOT EDIT.

package testimonial

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medera/medera_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldUpdatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldDoctorID, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldAppointmentID, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldPatientName, v))
}

// DoctorName applies equality check predicate on the "doctor_name" field. It's identical to DoctorNameEQ.
func DoctorName(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldDoctorName, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldRating, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldComment, v))
}

// TreatmentType applies equality check predicate on the "treatment_type" field. It's identical to TreatmentTypeEQ.
func TreatmentType(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldTreatmentType, v))
}

// IsVerified applies equality check predicate on the "is_verified" field. It's identical to IsVerifiedEQ.
func IsVerified(v bool) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldIsVerified, v))
}

// IsPublic applies equality check predicate on the "is_public" field. It's identical to IsPublicEQ.
func IsPublic(v bool) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldIsPublic, v))
}

// HelpfulVotes applies equality check predicate on the "helpful_votes" field. It's identical to HelpfulVotesEQ.
func HelpfulVotes(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldHelpfulVotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLTE(FieldUpdatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLTE(FieldDoctorID, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v uuid.UUID) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLTE(FieldAppointmentID, v))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldContainsFold(FieldPatientName, v))
}

// DoctorNameEQ applies the EQ predicate on the "doctor_name" field.
func DoctorNameEQ(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldDoctorName, v))
}

// DoctorNameNEQ applies the NEQ predicate on the "doctor_name" field.
func DoctorNameNEQ(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldDoctorName, v))
}

// DoctorNameIn applies the In predicate on the "doctor_name" field.
func DoctorNameIn(vs ...string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldIn(FieldDoctorName, vs...))
}

// DoctorNameNotIn applies the NotIn predicate on the "doctor_name" field.
func DoctorNameNotIn(vs ...string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNotIn(FieldDoctorName, vs...))
}

// DoctorNameGT applies the GT predicate on the "doctor_name" field.
func DoctorNameGT(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGT(FieldDoctorName, v))
}

// DoctorNameGTE applies the GTE predicate on the "doctor_name" field.
func DoctorNameGTE(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGTE(FieldDoctorName, v))
}

// DoctorNameLT applies the LT predicate on the "doctor_name" field.
func DoctorNameLT(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLT(FieldDoctorName, v))
}

// DoctorNameLTE applies the LTE predicate on the "doctor_name" field.
func DoctorNameLTE(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLTE(FieldDoctorName, v))
}

// DoctorNameContains applies the Contains predicate on the "doctor_name" field.
func DoctorNameContains(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldContains(FieldDoctorName, v))
}

// DoctorNameHasPrefix applies the HasPrefix predicate on the "doctor_name" field.
func DoctorNameHasPrefix(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldHasPrefix(FieldDoctorName, v))
}

// DoctorNameHasSuffix applies the HasSuffix predicate on the "doctor_name" field.
func DoctorNameHasSuffix(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldHasSuffix(FieldDoctorName, v))
}

// DoctorNameEqualFold applies the EqualFold predicate on the "doctor_name" field.
func DoctorNameEqualFold(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEqualFold(FieldDoctorName, v))
}

// DoctorNameContainsFold applies the ContainsFold predicate on the "doctor_name" field.
func DoctorNameContainsFold(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldContainsFold(FieldDoctorName, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLTE(FieldRating, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldHasSuffix(FieldComment, v))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldContainsFold(FieldComment, v))
}

// TreatmentTypeEQ applies the EQ predicate on the "treatment_type" field.
func TreatmentTypeEQ(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldTreatmentType, v))
}

// TreatmentTypeNEQ applies the NEQ predicate on the "treatment_type" field.
func TreatmentTypeNEQ(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldTreatmentType, v))
}

// TreatmentTypeIn applies the In predicate on the "treatment_type" field.
func TreatmentTypeIn(vs ...string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldIn(FieldTreatmentType, vs...))
}

// TreatmentTypeNotIn applies the NotIn predicate on the "treatment_type" field.
func TreatmentTypeNotIn(vs ...string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNotIn(FieldTreatmentType, vs...))
}

// TreatmentTypeGT applies the GT predicate on the "treatment_type" field.
func TreatmentTypeGT(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGT(FieldTreatmentType, v))
}

// TreatmentTypeGTE applies the GTE predicate on the "treatment_type" field.
func TreatmentTypeGTE(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGTE(FieldTreatmentType, v))
}

// TreatmentTypeLT applies the LT predicate on the "treatment_type" field.
func TreatmentTypeLT(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLT(FieldTreatmentType, v))
}

// TreatmentTypeLTE applies the LTE predicate on the "treatment_type" field.
func TreatmentTypeLTE(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLTE(FieldTreatmentType, v))
}

// TreatmentTypeContains applies the Contains predicate on the "treatment_type" field.
func TreatmentTypeContains(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldContains(FieldTreatmentType, v))
}

// TreatmentTypeHasPrefix applies the HasPrefix predicate on the "treatment_type" field.
func TreatmentTypeHasPrefix(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldHasPrefix(FieldTreatmentType, v))
}

// TreatmentTypeHasSuffix applies the HasSuffix predicate on the "treatment_type" field.
func TreatmentTypeHasSuffix(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldHasSuffix(FieldTreatmentType, v))
}

// TreatmentTypeIsNil applies the IsNil predicate on the "treatment_type" field.
func TreatmentTypeIsNil() predicate.Testimonial {
	return predicate.Testimonial(sql.FieldIsNull(FieldTreatmentType))
}

// TreatmentTypeNotNil applies the NotNil predicate on the "treatment_type" field.
func TreatmentTypeNotNil() predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNotNull(FieldTreatmentType))
}

// TreatmentTypeEqualFold applies the EqualFold predicate on the "treatment_type" field.
func TreatmentTypeEqualFold(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEqualFold(FieldTreatmentType, v))
}

// TreatmentTypeContainsFold applies the ContainsFold predicate on the "treatment_type" field.
func TreatmentTypeContainsFold(v string) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldContainsFold(FieldTreatmentType, v))
}

// IsVerifiedEQ applies the EQ predicate on the "is_verified" field.
func IsVerifiedEQ(v bool) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldIsVerified, v))
}

// IsVerifiedNEQ applies the NEQ predicate on the "is_verified" field.
func IsVerifiedNEQ(v bool) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldIsVerified, v))
}

// IsPublicEQ applies the EQ predicate on the "is_public" field.
func IsPublicEQ(v bool) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldIsPublic, v))
}

// IsPublicNEQ applies the NEQ predicate on the "is_public" field.
func IsPublicNEQ(v bool) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldIsPublic, v))
}

// HelpfulVotesEQ applies the EQ predicate on the "helpful_votes" field.
func HelpfulVotesEQ(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldEQ(FieldHelpfulVotes, v))
}

// HelpfulVotesNEQ applies the NEQ predicate on the "helpful_votes" field.
func HelpfulVotesNEQ(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNEQ(FieldHelpfulVotes, v))
}

// HelpfulVotesIn applies the In predicate on the "helpful_votes" field.
func HelpfulVotesIn(vs ...int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldIn(FieldHelpfulVotes, vs...))
}

// HelpfulVotesNotIn applies the NotIn predicate on the "helpful_votes" field.
func HelpfulVotesNotIn(vs ...int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldNotIn(FieldHelpfulVotes, vs...))
}

// HelpfulVotesGT applies the GT predicate on the "helpful_votes" field.
func HelpfulVotesGT(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGT(FieldHelpfulVotes, v))
}

// HelpfulVotesGTE applies the GTE predicate on the "helpful_votes" field.
func HelpfulVotesGTE(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldGTE(FieldHelpfulVotes, v))
}

// HelpfulVotesLT applies the LT predicate on the "helpful_votes" field.
func HelpfulVotesLT(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLT(FieldHelpfulVotes, v))
}

// HelpfulVotesLTE applies the LTE predicate on the "helpful_votes" field.
func HelpfulVotesLTE(v int) predicate.Testimonial {
	return predicate.Testimonial(sql.FieldLTE(FieldHelpfulVotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Testimonial) predicate.Testimonial {
	return predicate.Testimonial(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Testimonial) predicate.Testimonial {
	return predicate.Testimonial(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Testimonial) predicate.Testimonial {
	return predicate.Testimonial(sql.NotPredicates(p))
}
