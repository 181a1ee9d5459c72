package doctor

import "errors"

var (
	ErrNotFound        = errors.New("doctor not found")
	ErrInvalidSchedule = errors.New("invalid weekly schedule")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrNotAvailable    = errors.New("doctor is not accepting bookings")
	ErrHasAppointments = errors.New("doctor still has open appointments")

	ErrStorageDisabled  = errors.New("object storage is not configured")
	ErrUnsupportedImage = errors.New("photo must be JPEG, PNG or WebP")
	ErrNoPhoto          = errors.New("doctor has no photo")
)
