package service

import (
	"time"

	"darshan/internal/config"
	"darshan/internal/domain"
	"darshan/internal/models"
)

// DashboardService derives profile statistics from a user's committed
// bookings. It never fails: bookings it cannot price contribute zero.
type DashboardService struct {
	catalog   domain.HotelDirectory
	flatRate  int64
	flatHours float64
}

func NewDashboardService(catalog domain.HotelDirectory, cfg config.BookingConfig) *DashboardService {
	flatRate := cfg.GuideFlatRate
	if flatRate <= 0 {
		flatRate = models.DefaultGuideFlatRate
	}
	flatHours := cfg.GuideTourHours
	if flatHours <= 0 {
		flatHours = models.DefaultGuideTourHours
	}
	return &DashboardService{
		catalog:   catalog,
		flatRate:  flatRate,
		flatHours: flatHours,
	}
}

// Summarize folds the booking list into dashboard stats. Hotel spend is
// nights times the catalog price; hotel hours are nights times 24. Guide
// bookings use the flat policy values. Unknown hotels, unparseable dates
// and non-positive stays contribute nothing, so totals never go negative.
func (d *DashboardService) Summarize(bookings []models.Booking) models.DashboardStats {
	stats := models.DashboardStats{TotalBookings: len(bookings)}

	for _, booking := range bookings {
		switch booking.SubjectType {
		case models.SubjectHotel:
			nights := stayNights(booking.Fields.CheckIn, booking.Fields.CheckOut)
			if nights <= 0 {
				continue
			}
			if hotel, ok := d.catalog.HotelByName(booking.SubjectName); ok {
				stats.EstimatedSpend += int64(nights) * hotel.Price
				stats.EstimatedHours += float64(nights) * models.HoursPerNight
			}
		case models.SubjectGuide:
			stats.EstimatedSpend += d.flatRate
			stats.EstimatedHours += d.flatHours
		}
	}

	return stats
}

// stayNights returns the whole-day span between two calendar dates, or 0
// when either date is malformed or the span is not positive.
func stayNights(checkIn, checkOut string) int {
	in, err := time.Parse(models.DateLayout, checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(models.DateLayout, checkOut)
	if err != nil {
		return 0
	}

	nights := int(out.Sub(in).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}
