package model

import "errors"

// Ledger operation failures. All are terminal answers to a single attempt;
// the caller decides whether to prompt again.
var (
	ErrDonationNotFound    = errors.New("donation not found")
	ErrRequestNotFound     = errors.New("blood request not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidOTP          = errors.New("invalid otp")
	ErrAlreadyRedeemed     = errors.New("credit already redeemed")
	ErrInvalidTokenFormat  = errors.New("invalid token format")
	ErrAppointmentClosed   = errors.New("appointment is not upcoming")
)
