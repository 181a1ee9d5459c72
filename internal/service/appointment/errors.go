package appointment

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrSlotTaken         = errors.New("slot already has an active booking")
	ErrSlotNotInSchedule = errors.New("slot is not part of the doctor's schedule")
	ErrDoctorUnavailable = errors.New("doctor is not accepting bookings")
	ErrInvalidDate       = errors.New("date must be formatted as YYYY-MM-DD")
	ErrDateInPast        = errors.New("appointment date is in the past")
	ErrInvalidTransition = errors.New("appointment status does not allow this transition")
	ErrTooManyUpcoming   = errors.New("patient has reached the open bookings limit")
	ErrInvalidContact    = errors.New("patient email or phone is required")

	ErrInvalidPaymentStatus = errors.New("payment status must be pending, paid or refunded")
)
