// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID, Nullable: true},
		{Name: "appointment_date", Type: field.TypeString, Size: 10},
		{Name: "appointment_time", Type: field.TypeString, Size: 5},
		{Name: "booking_code", Type: field.TypeString, Unique: true, Size: 12},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"online", "offline", "emergency"}, Default: "offline"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "completed", "cancelled"}, Default: "pending"},
		{Name: "payment_status", Type: field.TypeEnum, Enums: []string{"pending", "paid", "refunded"}, Default: "pending"},
		{Name: "patient_info", Type: field.TypeJSON},
		{Name: "doctor_info", Type: field.TypeJSON},
		{Name: "payment_authority", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_appointment_date_appointment_time",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[5], AppointmentsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'confirmed')",
				},
			},
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[9]},
			},
			{
				Name:    "appointment_doctor_id_status_appointment_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[9], AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_appointment_date_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5], AppointmentsColumns[9]},
			},
		},
	}
	// ContentsColumns holds the columns for the "contents" table.
	ContentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"faq", "article", "facility"}},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 200},
		{Name: "title", Type: field.TypeString, Size: 300},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON},
		{Name: "is_published", Type: field.TypeBool, Default: false},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
	}
	// ContentsTable holds the schema information for the "contents" table.
	ContentsTable = &schema.Table{
		Name:       "contents",
		Columns:    ContentsColumns,
		PrimaryKey: []*schema.Column{ContentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "content_kind_is_published_sort_order",
				Unique:  false,
				Columns: []*schema.Column{ContentsColumns[4], ContentsColumns[9], ContentsColumns[10]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "specialty", Type: field.TypeString, Size: 100},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "experience_years", Type: field.TypeInt, Default: 0},
		{Name: "consultation_fee", Type: field.TypeInt64, Default: 0},
		{Name: "schedule", Type: field.TypeJSON},
		{Name: "is_available", Type: field.TypeBool, Default: true},
		{Name: "rating", Type: field.TypeFloat64, Default: 0},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "consultation_types", Type: field.TypeJSON},
		{Name: "image_url", Type: field.TypeString, Nullable: true, Size: 500},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctor_specialty",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[6]},
			},
			{
				Name:    "doctor_is_available_rating",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[11], DoctorsColumns[12]},
			},
		},
	}
	// TestimonialsColumns holds the columns for the "testimonials" table.
	TestimonialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "appointment_id", Type: field.TypeUUID, Unique: true},
		{Name: "patient_name", Type: field.TypeString, Size: 200},
		{Name: "doctor_name", Type: field.TypeString, Size: 200},
		{Name: "rating", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Size: 2147483647},
		{Name: "treatment_type", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "is_public", Type: field.TypeBool, Default: true},
		{Name: "helpful_votes", Type: field.TypeInt, Default: 0},
	}
	// TestimonialsTable holds the schema information for the "testimonials" table.
	TestimonialsTable = &schema.Table{
		Name:       "testimonials",
		Columns:    TestimonialsColumns,
		PrimaryKey: []*schema.Column{TestimonialsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testimonial_doctor_id_is_public_is_verified",
				Unique:  false,
				Columns: []*schema.Column{TestimonialsColumns[3], TestimonialsColumns[11], TestimonialsColumns[10]},
			},
			{
				Name:    "testimonial_is_public_is_verified",
				Unique:  false,
				Columns: []*schema.Column{TestimonialsColumns[11], TestimonialsColumns[10]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "doctor", "admin", "staff"}, Default: "patient"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role_is_active",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9], UsersColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		ContentsTable,
		DoctorsTable,
		TestimonialsTable,
		UsersTable,
	}
)

func init() {
}
