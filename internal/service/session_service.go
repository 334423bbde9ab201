package service

import (
	"context"
	"fmt"
	"sync"

	"darshan/internal/domain"
	"darshan/internal/events"
	"darshan/internal/metrics"
	"darshan/internal/models"

	"github.com/rs/zerolog"
)

// SessionManager owns the single current authenticated identity and the
// in-memory cache of that user's bookings. All readers get the session via
// this instance; there is no ambient global state.
type SessionManager struct {
	store  domain.Store
	bus    domain.EventPublisher
	logger *zerolog.Logger

	resumer domain.BookingResumer

	mu       sync.Mutex
	current  *models.Session
	bookings []models.Booking
}

func NewSessionManager(store domain.Store, bus domain.EventPublisher, logger *zerolog.Logger) *SessionManager {
	return &SessionManager{
		store:  store,
		bus:    bus,
		logger: logger,
	}
}

// SetResumer wires the coordinator in after construction; the two depend on
// each other, so the cycle is broken here.
func (s *SessionManager) SetResumer(resumer domain.BookingResumer) {
	s.resumer = resumer
}

// Restore rehydrates a durably remembered session once at startup. A stale
// marker pointing at a deleted account is cleared silently.
func (s *SessionManager) Restore(ctx context.Context) error {
	username, err := s.store.CurrentIdentity(ctx)
	if err != nil {
		return err
	}
	if username == "" {
		return nil
	}

	if _, err := s.store.GetUser(ctx, username); err != nil {
		s.logger.Warn().Str("username", username).Msg("remembered identity has no account, clearing")
		return s.store.ClearCurrentIdentity(ctx)
	}

	bookings, err := s.store.GetBookings(ctx, username)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = &models.Session{Username: username}
	s.bookings = bookings
	s.mu.Unlock()

	s.logger.Info().Str("username", username).Msg("session restored")
	return nil
}

// Login authenticates against the stored credential table with an exact,
// case-sensitive match. On success the user's bookings are loaded and a
// pending booking intent, if any, is handed to the coordinator for replay;
// the returned notice distinguishes resume from a plain welcome.
func (s *SessionManager) Login(ctx context.Context, username, credential string) (*models.Notice, error) {
	users, err := s.store.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	stored, ok := users[username]
	if !ok || stored != credential {
		metrics.IncLogin("failure")
		return nil, ErrInvalidCredentials
	}

	bookings, err := s.store.GetBookings(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetCurrentIdentity(ctx, username); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = &models.Session{Username: username}
	s.bookings = bookings
	s.mu.Unlock()

	resumed := false
	if s.resumer != nil {
		resumed, err = s.resumer.ResumeAfterLogin(ctx)
		if err != nil {
			// Login itself succeeded; the intent is simply not replayed.
			s.logger.Error().Err(err).Msg("failed to resume pending booking")
			resumed = false
		}
	}

	notice := models.Notice{
		Kind:    models.NoticeWelcome,
		Message: fmt.Sprintf("Welcome back, %s!", username),
	}
	if resumed {
		notice = models.Notice{
			Kind:    models.NoticeResume,
			Message: "Welcome! Please complete your booking.",
		}
	}

	metrics.IncLogin("success")
	s.publish(events.EventLoginSucceeded, events.SessionEventPayload{
		Username: username,
		Resumed:  resumed,
		Notice:   notice,
	})
	s.logger.Info().Str("username", username).Bool("resumed", resumed).Msg("login succeeded")

	return &notice, nil
}

// Register creates an account without logging it in; the caller must log in
// separately. That split is deliberate.
func (s *SessionManager) Register(ctx context.Context, username, credential string) (*models.Notice, error) {
	if username == "" || credential == "" {
		return nil, ErrEmptyField
	}

	if err := s.store.PutUser(ctx, username, credential); err != nil {
		// duplicate usernames surface as database.ErrDuplicateUser
		return nil, err
	}

	metrics.IncRegistration()
	s.publish(events.EventUserRegistered, events.SessionEventPayload{Username: username})
	s.logger.Info().Str("username", username).Msg("user registered")

	return &models.Notice{
		Kind:    models.NoticeRegistered,
		Message: "Registration successful! Please log in.",
	}, nil
}

// Logout clears the session and the booking cache. Durable data stays.
func (s *SessionManager) Logout(ctx context.Context) error {
	s.mu.Lock()
	username := ""
	if s.current != nil {
		username = s.current.Username
	}
	s.current = nil
	s.bookings = nil
	s.mu.Unlock()

	if err := s.store.ClearCurrentIdentity(ctx); err != nil {
		return err
	}

	if username != "" {
		s.publish(events.EventLogout, events.SessionEventPayload{Username: username})
		s.logger.Info().Str("username", username).Msg("logged out")
	}
	return nil
}

// Current returns a copy of the active session, or nil when anonymous.
func (s *SessionManager) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

func (s *SessionManager) IsAuthenticated() bool {
	return s.Current() != nil
}

// Bookings returns the cached booking sequence for the active session,
// most-recent-first. Anonymous sessions see nothing.
func (s *SessionManager) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// ReloadBookings refreshes the cache from the store after a commit.
func (s *SessionManager) ReloadBookings(ctx context.Context) error {
	sess := s.Current()
	if sess == nil {
		return ErrNotAuthenticated
	}

	bookings, err := s.store.GetBookings(ctx, sess.Username)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()
	return nil
}

func (s *SessionManager) publish(eventType string, payload interface{}) {
	if s.bus == nil {
		return
	}
	if err := s.bus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Msg("publish event error")
	}
}
