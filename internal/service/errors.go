package service

import "errors"

// Recoverable error taxonomy. Every failure leaves prior state intact and
// lets the caller retry; none terminate the session or corrupt the store.
var (
	ErrEmptyField         = errors.New("username and credential cannot be empty")
	ErrInvalidCredentials = errors.New("invalid username or credential")
	ErrNotAuthenticated   = errors.New("no authenticated session")

	ErrMissingDates     = errors.New("check-in and check-out dates are required")
	ErrInvalidDateRange = errors.New("check-out date must be after the check-in date")
	ErrInvalidGuests    = errors.New("guest count must be at least 1")
	ErrMissingDate      = errors.New("tour date is required")
	ErrInvalidGroupSize = errors.New("group size must be at least 1")

	ErrNoPendingBooking = errors.New("no booking awaiting details")
)
