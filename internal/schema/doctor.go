package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Doctor is a public directory profile with a weekly availability template.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Non-FK reference to users.id; directory entries may exist before the doctor has an account"),

		field.String("name").
			NotEmpty().
			MaxLen(200),

		field.String("specialty").
			NotEmpty().
			MaxLen(100),

		field.Text("bio").
			Optional(),

		field.Int("experience_years").
			Default(0).
			NonNegative(),

		field.Int64("consultation_fee").
			Default(0).
			Comment("Fee per visit in the smallest currency unit; snapshotted into appointments"),

		field.JSON("schedule", map[string][]string{}).
			Default(map[string][]string{}).
			Comment(`Weekly template: day name ("Monday"..) to ordered "HH:MM" slots`),

		field.Bool("is_available").
			Default(true).
			Comment("Gates new bookings only; existing appointments are untouched"),

		field.Float("rating").
			Default(0).
			Min(0).
			Max(5).
			Comment("Written only by the testimonial service"),

		field.Int("review_count").
			Default(0).
			NonNegative().
			Comment("Written only by the testimonial service"),

		field.JSON("consultation_types", []string{}).
			Default([]string{}).
			Comment(`Subset of {"online","offline","emergency"}`),

		field.String("image_url").
			Optional().
			Nillable().
			MaxLen(500),
	}
}

func (Doctor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("specialty"),
		index.Fields("is_available", "rating"),
	}
}
