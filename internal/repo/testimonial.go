// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medera/medera_backend/internal/repo/testimonial"
)

// Testimonial is the model entity for the Testimonial schema.
type Testimonial struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → doctors.id
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// FK → appointments.id; one testimonial per appointment
	AppointmentID uuid.UUID `json:"appointment_id,omitempty"`
	// Denormalized at creation
	PatientName string `json:"patient_name,omitempty"`
	// Denormalized at creation
	DoctorName string `json:"doctor_name,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating int `json:"rating,omitempty"`
	// Comment holds the value of the "comment" field.
	Comment string `json:"comment,omitempty"`
	// TreatmentType holds the value of the "treatment_type" field.
	TreatmentType string `json:"treatment_type,omitempty"`
	// Set only through the admin verify operation
	IsVerified bool `json:"is_verified,omitempty"`
	// Author-controlled; public listing requires is_public AND is_verified
	IsPublic bool `json:"is_public,omitempty"`
	// Incremented atomically in SQL, never read-modify-write
	HelpfulVotes int `json:"helpful_votes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Testimonial) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testimonial.FieldIsVerified, testimonial.FieldIsPublic:
			values[i] = new(sql.NullBool)
		case testimonial.FieldRating, testimonial.FieldHelpfulVotes:
			values[i] = new(sql.NullInt64)
		case testimonial.FieldPatientName, testimonial.FieldDoctorName, testimonial.FieldComment, testimonial.FieldTreatmentType:
			values[i] = new(sql.NullString)
		case testimonial.FieldCreatedAt, testimonial.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case testimonial.FieldID, testimonial.FieldDoctorID, testimonial.FieldAppointmentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Testimonial fields.
func (_m *Testimonial) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testimonial.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case testimonial.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case testimonial.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case testimonial.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case testimonial.FieldAppointmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_id", values[i])
			} else if value != nil {
				_m.AppointmentID = *value
			}
		case testimonial.FieldPatientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_name", values[i])
			} else if value.Valid {
				_m.PatientName = value.String
			}
		case testimonial.FieldDoctorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_name", values[i])
			} else if value.Valid {
				_m.DoctorName = value.String
			}
		case testimonial.FieldRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = int(value.Int64)
			}
		case testimonial.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		case testimonial.FieldTreatmentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field treatment_type", values[i])
			} else if value.Valid {
				_m.TreatmentType = value.String
			}
		case testimonial.FieldIsVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_verified", values[i])
			} else if value.Valid {
				_m.IsVerified = value.Bool
			}
		case testimonial.FieldIsPublic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_public", values[i])
			} else if value.Valid {
				_m.IsPublic = value.Bool
			}
		case testimonial.FieldHelpfulVotes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field helpful_votes", values[i])
			} else if value.Valid {
				_m.HelpfulVotes = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Testimonial.
// This includes values selected through modifiers, order, etc.
func (_m *Testimonial) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Testimonial.
// Note that you need to call Testimonial.Unwrap() before calling this method if this Testimonial
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Testimonial) Update() *TestimonialUpdateOne {
	return NewTestimonialClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Testimonial entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Testimonial) Unwrap() *Testimonial {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Testimonial is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Testimonial) String() string {
	var builder strings.Builder
	builder.WriteString("Testimonial(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("appointment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentID))
	builder.WriteString(", ")
	builder.WriteString("patient_name=")
	builder.WriteString(_m.PatientName)
	builder.WriteString(", ")
	builder.WriteString("doctor_name=")
	builder.WriteString(_m.DoctorName)
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteString(", ")
	builder.WriteString("treatment_type=")
	builder.WriteString(_m.TreatmentType)
	builder.WriteString(", ")
	builder.WriteString("is_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsVerified))
	builder.WriteString(", ")
	builder.WriteString("is_public=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPublic))
	builder.WriteString(", ")
	builder.WriteString("helpful_votes=")
	builder.WriteString(fmt.Sprintf("%v", _m.HelpfulVotes))
	builder.WriteByte(')')
	return builder.String()
}

// Testimonials is a parsable slice of Testimonial.
type Testimonials []*Testimonial
