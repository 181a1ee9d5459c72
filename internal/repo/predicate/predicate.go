// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Content is the predicate function for content builders.
type Content func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// Testimonial is the predicate function for testimonial builders.
type Testimonial func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
