package domain

import (
	"context"

	"darshan/internal/models"
)

// Store is the durable backing for accounts, reservations and the
// remembered identity marker. Operations are whole-table read-modify-write;
// concurrent mutation from another process is undefined behavior.
type Store interface {
	GetUsers(ctx context.Context) (map[string]string, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
	PutUser(ctx context.Context, username, credential string) error
	GetBookings(ctx context.Context, username string) ([]models.Booking, error)
	AppendBooking(ctx context.Context, booking *models.Booking) error
	CurrentIdentity(ctx context.Context) (string, error)
	SetCurrentIdentity(ctx context.Context, username string) error
	ClearCurrentIdentity(ctx context.Context) error
}

// StateRepository persists the coordinator's state machine record.
type StateRepository interface {
	GetState(ctx context.Context, key string) (*models.ActionState, error)
	SetState(ctx context.Context, state *models.ActionState) error
	ClearState(ctx context.Context, key string) error
}

// EventPublisher fans notification events out to subscribers.
type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

// BookingResumer replays a captured booking intent after a successful login.
// The bool result reports whether an intent was consumed.
type BookingResumer interface {
	ResumeAfterLogin(ctx context.Context) (bool, error)
}

// SessionState is the coordinator's view of the session manager.
type SessionState interface {
	Current() *models.Session
	ReloadBookings(ctx context.Context) error
}

// HotelDirectory resolves hotels by exact name.
type HotelDirectory interface {
	HotelByName(name string) (*models.Hotel, bool)
}
