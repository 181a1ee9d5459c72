package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/medera/medera_backend/internal/schema/schematype"
)

// Appointment is one booked (doctor, date, time) slot and its lifecycle.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id; nil for bookings made before authentication"),

		field.String("appointment_date").
			MaxLen(10).
			Comment(`Calendar date "YYYY-MM-DD"`),

		field.String("appointment_time").
			MaxLen(5).
			Comment(`Slot start "HH:MM", must match the doctor's weekly template`),

		field.String("booking_code").
			MaxLen(12).
			Unique().
			Immutable().
			Comment("Short human-readable reference patients use to look up the booking"),

		field.Enum("type").
			Values("online", "offline", "emergency").
			Default("offline"),

		field.Enum("status").
			Values("pending", "confirmed", "completed", "cancelled").
			Default("pending"),

		field.Enum("payment_status").
			Values("pending", "paid", "refunded").
			Default("pending"),

		field.JSON("patient_info", schematype.PatientInfo{}).
			Comment("Immutable snapshot captured at booking"),

		field.JSON("doctor_info", schematype.DoctorInfo{}).
			Comment("Immutable snapshot captured at booking"),

		field.String("payment_authority").
			Optional().
			Nillable().
			MaxLen(64).
			Comment("Gateway authority of the open payment request, if any"),

		field.Text("notes").
			Optional().
			Nillable().
			Comment("Clinical notes; cancellation reasons live in cancellation_reason"),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		// One non-cancelled appointment per slot. The partial unique index is
		// the authoritative guard; IsSlotAvailable is advisory only.
		index.Fields("doctor_id", "appointment_date", "appointment_time").
			Unique().
			Annotations(entsql.IndexWhere("status IN ('pending', 'confirmed')")),

		index.Fields("patient_id", "status"),
		index.Fields("doctor_id", "status", "appointment_date"),
		index.Fields("appointment_date", "status"),
	}
}
