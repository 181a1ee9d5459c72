package testimonial

import "errors"

var (
	ErrNotFound            = errors.New("testimonial not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotCompleted        = errors.New("testimonials require a completed appointment")
	ErrAlreadyReviewed     = errors.New("appointment already has a testimonial")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)
