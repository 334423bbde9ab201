package service

import (
	"testing"

	"darshan/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateHotelFields(t *testing.T) {
	valid := models.BookingFields{
		CheckIn:    "2025-06-05",
		CheckOut:   "2025-06-10",
		GuestCount: 2,
	}
	assert.NoError(t, ValidateBookingFields(models.SubjectHotel, valid))

	t.Run("missing dates", func(t *testing.T) {
		fields := valid
		fields.CheckIn = ""
		assert.ErrorIs(t, ValidateBookingFields(models.SubjectHotel, fields), ErrMissingDates)

		fields = valid
		fields.CheckOut = ""
		assert.ErrorIs(t, ValidateBookingFields(models.SubjectHotel, fields), ErrMissingDates)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		fields := models.BookingFields{
			CheckIn:    "2025-06-10",
			CheckOut:   "2025-06-05",
			GuestCount: 2,
		}
		assert.ErrorIs(t, ValidateBookingFields(models.SubjectHotel, fields), ErrInvalidDateRange)
	})

	t.Run("zero-night stay rejected", func(t *testing.T) {
		fields := models.BookingFields{
			CheckIn:    "2025-06-05",
			CheckOut:   "2025-06-05",
			GuestCount: 2,
		}
		assert.ErrorIs(t, ValidateBookingFields(models.SubjectHotel, fields), ErrInvalidDateRange)
	})

	t.Run("malformed date", func(t *testing.T) {
		fields := valid
		fields.CheckIn = "June 5th"
		assert.ErrorIs(t, ValidateBookingFields(models.SubjectHotel, fields), ErrInvalidDateRange)
	})

	t.Run("guest count", func(t *testing.T) {
		fields := valid
		fields.GuestCount = 0
		assert.ErrorIs(t, ValidateBookingFields(models.SubjectHotel, fields), ErrInvalidGuests)
	})
}

func TestValidateGuideFields(t *testing.T) {
	valid := models.BookingFields{
		TourDate:  "2025-07-01",
		GroupSize: 3,
	}
	assert.NoError(t, ValidateBookingFields(models.SubjectGuide, valid))

	t.Run("missing tour date", func(t *testing.T) {
		fields := valid
		fields.TourDate = ""
		assert.ErrorIs(t, ValidateBookingFields(models.SubjectGuide, fields), ErrMissingDate)
	})

	t.Run("malformed tour date", func(t *testing.T) {
		fields := valid
		fields.TourDate = "01/07/2025"
		assert.ErrorIs(t, ValidateBookingFields(models.SubjectGuide, fields), ErrMissingDate)
	})

	t.Run("group size", func(t *testing.T) {
		fields := valid
		fields.GroupSize = 0
		assert.ErrorIs(t, ValidateBookingFields(models.SubjectGuide, fields), ErrInvalidGroupSize)
	})
}

func TestValidateUnknownSubjectType(t *testing.T) {
	err := ValidateBookingFields(models.SubjectType("flight"), models.BookingFields{})
	assert.Error(t, err)
}
