// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medera/medera_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDoctorID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientID, v))
}

// AppointmentDate applies equality check predicate on the "appointment_date" field. It's identical to AppointmentDateEQ.
func AppointmentDate(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldAppointmentDate, v))
}

// AppointmentTime applies equality check predicate on the "appointment_time" field. It's identical to AppointmentTimeEQ.
func AppointmentTime(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldAppointmentTime, v))
}

// BookingCode applies equality check predicate on the "booking_code" field. It's identical to BookingCodeEQ.
func BookingCode(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldBookingCode, v))
}

// PaymentAuthority applies equality check predicate on the "payment_authority" field. It's identical to PaymentAuthorityEQ.
func PaymentAuthority(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPaymentAuthority, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNotes, v))
}

// CancellationReason applies equality check predicate on the "cancellation_reason" field. It's identical to CancellationReasonEQ.
func CancellationReason(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancellationReason, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldUpdatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldDoctorID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDIsNil applies the IsNil predicate on the "patient_id" field.
func PatientIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldPatientID))
}

// PatientIDNotNil applies the NotNil predicate on the "patient_id" field.
func PatientIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldPatientID))
}

// AppointmentDateEQ applies the EQ predicate on the "appointment_date" field.
func AppointmentDateEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldAppointmentDate, v))
}

// AppointmentDateNEQ applies the NEQ predicate on the "appointment_date" field.
func AppointmentDateNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldAppointmentDate, v))
}

// AppointmentDateIn applies the In predicate on the "appointment_date" field.
func AppointmentDateIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldAppointmentDate, vs...))
}

// AppointmentDateNotIn applies the NotIn predicate on the "appointment_date" field.
func AppointmentDateNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldAppointmentDate, vs...))
}

// AppointmentDateGT applies the GT predicate on the "appointment_date" field.
func AppointmentDateGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldAppointmentDate, v))
}

// AppointmentDateGTE applies the GTE predicate on the "appointment_date" field.
func AppointmentDateGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldAppointmentDate, v))
}

// AppointmentDateLT applies the LT predicate on the "appointment_date" field.
func AppointmentDateLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldAppointmentDate, v))
}

// AppointmentDateLTE applies the LTE predicate on the "appointment_date" field.
func AppointmentDateLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldAppointmentDate, v))
}

// AppointmentDateContains applies the Contains predicate on the "appointment_date" field.
func AppointmentDateContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldAppointmentDate, v))
}

// AppointmentDateHasPrefix applies the HasPrefix predicate on the "appointment_date" field.
func AppointmentDateHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldAppointmentDate, v))
}

// AppointmentDateHasSuffix applies the HasSuffix predicate on the "appointment_date" field.
func AppointmentDateHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldAppointmentDate, v))
}

// AppointmentDateEqualFold applies the EqualFold predicate on the "appointment_date" field.
func AppointmentDateEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldAppointmentDate, v))
}

// AppointmentDateContainsFold applies the ContainsFold predicate on the "appointment_date" field.
func AppointmentDateContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldAppointmentDate, v))
}

// AppointmentTimeEQ applies the EQ predicate on the "appointment_time" field.
func AppointmentTimeEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldAppointmentTime, v))
}

// AppointmentTimeNEQ applies the NEQ predicate on the "appointment_time" field.
func AppointmentTimeNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldAppointmentTime, v))
}

// AppointmentTimeIn applies the In predicate on the "appointment_time" field.
func AppointmentTimeIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldAppointmentTime, vs...))
}

// AppointmentTimeNotIn applies the NotIn predicate on the "appointment_time" field.
func AppointmentTimeNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldAppointmentTime, vs...))
}

// AppointmentTimeGT applies the GT predicate on the "appointment_time" field.
func AppointmentTimeGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldAppointmentTime, v))
}

// AppointmentTimeGTE applies the GTE predicate on the "appointment_time" field.
func AppointmentTimeGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldAppointmentTime, v))
}

// AppointmentTimeLT applies the LT predicate on the "appointment_time" field.
func AppointmentTimeLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldAppointmentTime, v))
}

// AppointmentTimeLTE applies the LTE predicate on the "appointment_time" field.
func AppointmentTimeLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldAppointmentTime, v))
}

// AppointmentTimeContains applies the Contains predicate on the "appointment_time" field.
func AppointmentTimeContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldAppointmentTime, v))
}

// AppointmentTimeHasPrefix applies the HasPrefix predicate on the "appointment_time" field.
func AppointmentTimeHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldAppointmentTime, v))
}

// AppointmentTimeHasSuffix applies the HasSuffix predicate on the "appointment_time" field.
func AppointmentTimeHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldAppointmentTime, v))
}

// AppointmentTimeEqualFold applies the EqualFold predicate on the "appointment_time" field.
func AppointmentTimeEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldAppointmentTime, v))
}

// AppointmentTimeContainsFold applies the ContainsFold predicate on the "appointment_time" field.
func AppointmentTimeContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldAppointmentTime, v))
}

// BookingCodeEQ applies the EQ predicate on the "booking_code" field.
func BookingCodeEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldBookingCode, v))
}

// BookingCodeNEQ applies the NEQ predicate on the "booking_code" field.
func BookingCodeNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldBookingCode, v))
}

// BookingCodeIn applies the In predicate on the "booking_code" field.
func BookingCodeIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldBookingCode, vs...))
}

// BookingCodeNotIn applies the NotIn predicate on the "booking_code" field.
func BookingCodeNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldBookingCode, vs...))
}

// BookingCodeGT applies the GT predicate on the "booking_code" field.
func BookingCodeGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldBookingCode, v))
}

// BookingCodeGTE applies the GTE predicate on the "booking_code" field.
func BookingCodeGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldBookingCode, v))
}

// BookingCodeLT applies the LT predicate on the "booking_code" field.
func BookingCodeLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldBookingCode, v))
}

// BookingCodeLTE applies the LTE predicate on the "booking_code" field.
func BookingCodeLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldBookingCode, v))
}

// BookingCodeContains applies the Contains predicate on the "booking_code" field.
func BookingCodeContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldBookingCode, v))
}

// BookingCodeHasPrefix applies the HasPrefix predicate on the "booking_code" field.
func BookingCodeHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldBookingCode, v))
}

// BookingCodeHasSuffix applies the HasSuffix predicate on the "booking_code" field.
func BookingCodeHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldBookingCode, v))
}

// BookingCodeEqualFold applies the EqualFold predicate on the "booking_code" field.
func BookingCodeEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldBookingCode, v))
}

// BookingCodeContainsFold applies the ContainsFold predicate on the "booking_code" field.
func BookingCodeContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldBookingCode, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStatus, vs...))
}

// PaymentStatusEQ applies the EQ predicate on the "payment_status" field.
func PaymentStatusEQ(v PaymentStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPaymentStatus, v))
}

// PaymentStatusNEQ applies the NEQ predicate on the "payment_status" field.
func PaymentStatusNEQ(v PaymentStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPaymentStatus, v))
}

// PaymentStatusIn applies the In predicate on the "payment_status" field.
func PaymentStatusIn(vs ...PaymentStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPaymentStatus, vs...))
}

// PaymentStatusNotIn applies the NotIn predicate on the "payment_status" field.
func PaymentStatusNotIn(vs ...PaymentStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPaymentStatus, vs...))
}

// PaymentAuthorityEQ applies the EQ predicate on the "payment_authority" field.
func PaymentAuthorityEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPaymentAuthority, v))
}

// PaymentAuthorityNEQ applies the NEQ predicate on the "payment_authority" field.
func PaymentAuthorityNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPaymentAuthority, v))
}

// PaymentAuthorityIn applies the In predicate on the "payment_authority" field.
func PaymentAuthorityIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPaymentAuthority, vs...))
}

// PaymentAuthorityNotIn applies the NotIn predicate on the "payment_authority" field.
func PaymentAuthorityNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPaymentAuthority, vs...))
}

// PaymentAuthorityGT applies the GT predicate on the "payment_authority" field.
func PaymentAuthorityGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPaymentAuthority, v))
}

// PaymentAuthorityGTE applies the GTE predicate on the "payment_authority" field.
func PaymentAuthorityGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPaymentAuthority, v))
}

// PaymentAuthorityLT applies the LT predicate on the "payment_authority" field.
func PaymentAuthorityLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPaymentAuthority, v))
}

// PaymentAuthorityLTE applies the LTE predicate on the "payment_authority" field.
func PaymentAuthorityLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPaymentAuthority, v))
}

// PaymentAuthorityContains applies the Contains predicate on the "payment_authority" field.
func PaymentAuthorityContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldPaymentAuthority, v))
}

// PaymentAuthorityHasPrefix applies the HasPrefix predicate on the "payment_authority" field.
func PaymentAuthorityHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldPaymentAuthority, v))
}

// PaymentAuthorityHasSuffix applies the HasSuffix predicate on the "payment_authority" field.
func PaymentAuthorityHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldPaymentAuthority, v))
}

// PaymentAuthorityIsNil applies the IsNil predicate on the "payment_authority" field.
func PaymentAuthorityIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldPaymentAuthority))
}

// PaymentAuthorityNotNil applies the NotNil predicate on the "payment_authority" field.
func PaymentAuthorityNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldPaymentAuthority))
}

// PaymentAuthorityEqualFold applies the EqualFold predicate on the "payment_authority" field.
func PaymentAuthorityEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldPaymentAuthority, v))
}

// PaymentAuthorityContainsFold applies the ContainsFold predicate on the "payment_authority" field.
func PaymentAuthorityContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldPaymentAuthority, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldNotes, v))
}

// CancellationReasonEQ applies the EQ predicate on the "cancellation_reason" field.
func CancellationReasonEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancellationReason, v))
}

// CancellationReasonNEQ applies the NEQ predicate on the "cancellation_reason" field.
func CancellationReasonNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancellationReason, v))
}

// CancellationReasonIn applies the In predicate on the "cancellation_reason" field.
func CancellationReasonIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancellationReason, vs...))
}

// CancellationReasonNotIn applies the NotIn predicate on the "cancellation_reason" field.
func CancellationReasonNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancellationReason, vs...))
}

// CancellationReasonGT applies the GT predicate on the "cancellation_reason" field.
func CancellationReasonGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancellationReason, v))
}

// CancellationReasonGTE applies the GTE predicate on the "cancellation_reason" field.
func CancellationReasonGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancellationReason, v))
}

// CancellationReasonLT applies the LT predicate on the "cancellation_reason" field.
func CancellationReasonLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancellationReason, v))
}

// CancellationReasonLTE applies the LTE predicate on the "cancellation_reason" field.
func CancellationReasonLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancellationReason, v))
}

// CancellationReasonContains applies the Contains predicate on the "cancellation_reason" field.
func CancellationReasonContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldCancellationReason, v))
}

// CancellationReasonHasPrefix applies the HasPrefix predicate on the "cancellation_reason" field.
func CancellationReasonHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldCancellationReason, v))
}

// CancellationReasonHasSuffix applies the HasSuffix predicate on the "cancellation_reason" field.
func CancellationReasonHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldCancellationReason, v))
}

// CancellationReasonIsNil applies the IsNil predicate on the "cancellation_reason" field.
func CancellationReasonIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancellationReason))
}

// CancellationReasonNotNil applies the NotNil predicate on the "cancellation_reason" field.
func CancellationReasonNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancellationReason))
}

// CancellationReasonEqualFold applies the EqualFold predicate on the "cancellation_reason" field.
func CancellationReasonEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldCancellationReason, v))
}

// CancellationReasonContainsFold applies the ContainsFold predicate on the "cancellation_reason" field.
func CancellationReasonContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldCancellationReason, v))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancelledAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.NotPredicates(p))
}
