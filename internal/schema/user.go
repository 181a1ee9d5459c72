package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is any account that can sign in: patients, doctors, admins and staff.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("email").
			Unique().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164 formatted, validated at registration"),

		field.String("password_hash").
			Sensitive(),

		field.Enum("role").
			Values("patient", "doctor", "admin", "staff").
			Default("patient"),

		field.Bool("is_active").
			Default(true).
			Comment("Inactive users cannot log in; existing sessions are revoked"),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role", "is_active"),
	}
}
