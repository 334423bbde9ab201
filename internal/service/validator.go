package service

import (
	"fmt"
	"time"

	"darshan/internal/models"
)

// ValidateBookingFields enforces the per-type field constraints before a
// booking may be committed. The switch is exhaustive over subject types so
// that adding a bookable type forces a decision here.
func ValidateBookingFields(subjectType models.SubjectType, fields models.BookingFields) error {
	switch subjectType {
	case models.SubjectHotel:
		return validateHotelFields(fields)
	case models.SubjectGuide:
		return validateGuideFields(fields)
	default:
		return fmt.Errorf("unknown subject type %q", subjectType)
	}
}

func validateHotelFields(fields models.BookingFields) error {
	if fields.CheckIn == "" || fields.CheckOut == "" {
		return ErrMissingDates
	}

	checkIn, err := time.Parse(models.DateLayout, fields.CheckIn)
	if err != nil {
		return ErrInvalidDateRange
	}
	checkOut, err := time.Parse(models.DateLayout, fields.CheckOut)
	if err != nil {
		return ErrInvalidDateRange
	}

	// Calendar dates only; check-in must be strictly earlier.
	if !checkIn.Before(checkOut) {
		return ErrInvalidDateRange
	}

	if fields.GuestCount < 1 {
		return ErrInvalidGuests
	}
	return nil
}

func validateGuideFields(fields models.BookingFields) error {
	if fields.TourDate == "" {
		return ErrMissingDate
	}
	if _, err := time.Parse(models.DateLayout, fields.TourDate); err != nil {
		return ErrMissingDate
	}
	if fields.GroupSize < 1 {
		return ErrInvalidGroupSize
	}
	return nil
}
