package database

import (
	"context"
	"fmt"

	"darshan/internal/models"
)

// AppendBooking persists a committed reservation for its owner.
func (db *DB) AppendBooking(ctx context.Context, booking *models.Booking) error {
	query := `INSERT INTO bookings (
                id, username, subject_type, subject_name,
                check_in, check_out, guest_count, tour_date, group_size, notes,
                created_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := db.ExecContext(ctx, query,
		booking.ID,
		booking.Username,
		string(booking.SubjectType),
		booking.SubjectName,
		booking.Fields.CheckIn,
		booking.Fields.CheckOut,
		booking.Fields.GuestCount,
		booking.Fields.TourDate,
		booking.Fields.GroupSize,
		booking.Fields.Notes,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append booking: %w", err)
	}
	return nil
}

// GetBookings returns a user's reservations most-recent-first. A user with
// no reservations gets an empty sequence, not an error.
func (db *DB) GetBookings(ctx context.Context, username string) ([]models.Booking, error) {
	query := `SELECT id, username, subject_type, subject_name,
                     check_in, check_out, guest_count, tour_date, group_size, notes,
                     created_at
              FROM bookings
              WHERE username = ?
              ORDER BY created_at DESC, rowid DESC`

	rows, err := db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		var subjectType string
		err := rows.Scan(
			&b.ID,
			&b.Username,
			&subjectType,
			&b.SubjectName,
			&b.Fields.CheckIn,
			&b.Fields.CheckOut,
			&b.Fields.GuestCount,
			&b.Fields.TourDate,
			&b.Fields.GroupSize,
			&b.Fields.Notes,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		b.SubjectType = models.SubjectType(subjectType)
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}
