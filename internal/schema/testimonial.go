package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Testimonial is patient feedback attached to a completed appointment.
type Testimonial struct {
	ent.Schema
}

func (Testimonial) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Testimonial) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.UUID("appointment_id", uuid.UUID{}).
			Unique().
			Comment("FK → appointments.id; one testimonial per appointment"),

		field.String("patient_name").
			NotEmpty().
			MaxLen(200).
			Comment("Denormalized at creation"),

		field.String("doctor_name").
			NotEmpty().
			MaxLen(200).
			Comment("Denormalized at creation"),

		field.Int("rating").
			Min(1).
			Max(5),

		field.Text("comment"),

		field.String("treatment_type").
			Optional().
			MaxLen(100),

		field.Bool("is_verified").
			Default(false).
			Comment("Set only through the admin verify operation"),

		field.Bool("is_public").
			Default(true).
			Comment("Author-controlled; public listing requires is_public AND is_verified"),

		field.Int("helpful_votes").
			Default(0).
			NonNegative().
			Comment("Incremented atomically in SQL, never read-modify-write"),
	}
}

func (Testimonial) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "is_public", "is_verified"),
		index.Fields("is_public", "is_verified"),
	}
}
