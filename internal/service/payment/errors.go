package payment

import "errors"

var (
	ErrPaymentNotFound  = errors.New("no payment request matches this authority")
	ErrPaymentFailed    = errors.New("payment was not completed")
	ErrAlreadyPaid      = errors.New("appointment is already paid")
	ErrNotPayable       = errors.New("appointment state does not allow payment")
	ErrZarinPalFailure  = errors.New("payment gateway error")
	ErrNothingToPay     = errors.New("appointment has no consultation fee")
)
