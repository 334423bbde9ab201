package events

import (
	"encoding/json"
	"sync"
	"time"

	"darshan/internal/models"
)

const (
	EventUserRegistered   = "user_registered"
	EventLoginSucceeded   = "login_succeeded"
	EventLogout           = "logout"
	EventBookingPending   = "booking_pending"
	EventBookingResumed   = "booking_resumed"
	EventBookingConfirmed = "booking_confirmed"
	EventBookingCancelled = "booking_cancelled"
)

// SessionEventPayload describes an authentication transition.
type SessionEventPayload struct {
	Username string        `json:"username"`
	Resumed  bool          `json:"resumed,omitempty"`
	Notice   models.Notice `json:"notice"`
}

// BookingEventPayload describes a booking-intent transition. The pending
// event signals the login surface to open; the confirmed event carries the
// committed record's identity.
type BookingEventPayload struct {
	BookingID   string             `json:"booking_id,omitempty"`
	Username    string             `json:"username,omitempty"`
	SubjectType models.SubjectType `json:"subject_type"`
	SubjectName string             `json:"subject_name"`
	Notice      *models.Notice     `json:"notice,omitempty"`
}

// Event is a lightweight in-process domain event.
type Event struct {
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

// EventHandler reacts to an event.
type EventHandler func(event *Event) error

// EventBus provides in-process pub/sub. Handlers run synchronously on the
// publishing goroutine.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]EventHandler)}
}

// Subscribe registers a handler for a given event type.
func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type.
func (b *EventBus) Publish(event *Event) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	for _, handler := range handlers {
		_ = handler(event)
	}
}

// PublishJSON serializes the payload and publishes an event.
func (b *EventBus) PublishJSON(eventType string, payload interface{}) error {
	if b == nil {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	b.Publish(&Event{Type: eventType, Payload: raw, CreatedAt: time.Now()})
	return nil
}
