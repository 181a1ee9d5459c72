package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("unknown role")
	ErrInvalidPhone = errors.New("invalid phone number")
)
