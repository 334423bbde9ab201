package models

import "time"

// SubjectType tags what kind of catalog item a booking refers to.
type SubjectType string

const (
	SubjectHotel SubjectType = "hotel"
	SubjectGuide SubjectType = "guide"
)

// BookingFields holds the per-type details collected from the booking form.
// Hotel bookings use CheckIn/CheckOut/GuestCount, guide bookings use
// TourDate/GroupSize. Dates are calendar dates in DateLayout with no
// time-of-day component.
type BookingFields struct {
	CheckIn    string `json:"check_in,omitempty"`
	CheckOut   string `json:"check_out,omitempty"`
	GuestCount int    `json:"guest_count,omitempty"`
	TourDate   string `json:"tour_date,omitempty"`
	GroupSize  int    `json:"group_size,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Booking is a committed reservation owned by exactly one user.
type Booking struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"`
	SubjectType SubjectType   `json:"subject_type"`
	SubjectName string        `json:"subject_name"`
	Fields      BookingFields `json:"fields"`
	CreatedAt   time.Time     `json:"created_at"`
}

// PendingAction is a captured booking intent awaiting authentication.
// At most one exists per anonymous session.
type PendingAction struct {
	SubjectType SubjectType `json:"subject_type"`
	SubjectName string      `json:"subject_name"`
}

// ActionState is the coordinator's persisted state machine record.
// A missing record means Idle.
type ActionState struct {
	Key         string      `json:"key"`
	Step        string      `json:"step"`
	SubjectType SubjectType `json:"subject_type"`
	SubjectName string      `json:"subject_name"`
}

// DashboardStats are derived from a user's committed bookings.
type DashboardStats struct {
	TotalBookings  int     `json:"total_bookings"`
	EstimatedSpend int64   `json:"estimated_spend"`
	EstimatedHours float64 `json:"estimated_hours"`
}
