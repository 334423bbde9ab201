package service

import (
	"context"
	"fmt"
	"time"

	"darshan/internal/domain"
	"darshan/internal/events"
	"darshan/internal/metrics"
	"darshan/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Coordinator drives the booking workflow state machine. The pending intent
// lives in the state repository, not in memory, so an interrupted flow
// survives a restart.
type Coordinator struct {
	store   domain.Store
	states  domain.StateRepository
	session domain.SessionState
	bus     domain.EventPublisher
	logger  *zerolog.Logger
}

func NewCoordinator(store domain.Store, states domain.StateRepository, session domain.SessionState, bus domain.EventPublisher, logger *zerolog.Logger) *Coordinator {
	return &Coordinator{
		store:   store,
		states:  states,
		session: session,
		bus:     bus,
		logger:  logger,
	}
}

// State returns the pending intent, or nil when the workflow is idle.
func (c *Coordinator) State(ctx context.Context) (*models.ActionState, error) {
	return c.states.GetState(ctx, models.ActionStateKey)
}

// RequestBooking records the intent to book a subject. An authenticated
// caller goes straight to detail entry; an anonymous caller is parked until
// login, and the intent replays afterwards. A second request replaces the
// first outright.
func (c *Coordinator) RequestBooking(ctx context.Context, subjectType models.SubjectType, subjectName string) (*models.ActionState, error) {
	if subjectName == "" {
		return nil, ErrEmptyField
	}

	state := &models.ActionState{
		Key:         models.ActionStateKey,
		Step:        models.StepAwaitingDetails,
		SubjectType: subjectType,
		SubjectName: subjectName,
	}
	authenticated := c.session.Current() != nil
	if !authenticated {
		state.Step = models.StepAwaitingAuth
	}

	if err := c.states.SetState(ctx, state); err != nil {
		return nil, err
	}

	if !authenticated {
		c.publish(events.EventBookingPending, events.BookingEventPayload{
			SubjectType: subjectType,
			SubjectName: subjectName,
		})
	}
	c.logger.Info().
		Str("subject_type", string(subjectType)).
		Str("subject_name", subjectName).
		Str("step", state.Step).
		Msg("booking requested")

	return state, nil
}

// ResumeAfterLogin promotes a parked intent to detail entry. It reports
// whether anything was actually resumed.
func (c *Coordinator) ResumeAfterLogin(ctx context.Context) (bool, error) {
	state, err := c.states.GetState(ctx, models.ActionStateKey)
	if err != nil {
		return false, err
	}
	if state == nil || state.Step != models.StepAwaitingAuth {
		return false, nil
	}

	state.Step = models.StepAwaitingDetails
	if err := c.states.SetState(ctx, state); err != nil {
		return false, err
	}

	c.publish(events.EventBookingResumed, events.BookingEventPayload{
		SubjectType: state.SubjectType,
		SubjectName: state.SubjectName,
	})
	c.logger.Info().Str("subject_name", state.SubjectName).Msg("pending booking resumed")
	return true, nil
}

// Finalize validates the submitted details and commits the booking. On
// validation failure the pending intent is left exactly where it was so the
// caller can correct and resubmit.
func (c *Coordinator) Finalize(ctx context.Context, fields models.BookingFields) (*models.Booking, *models.Notice, error) {
	state, err := c.states.GetState(ctx, models.ActionStateKey)
	if err != nil {
		return nil, nil, err
	}
	if state == nil || state.Step != models.StepAwaitingDetails {
		return nil, nil, ErrNoPendingBooking
	}

	sess := c.session.Current()
	if sess == nil {
		return nil, nil, ErrNotAuthenticated
	}

	if err := ValidateBookingFields(state.SubjectType, fields); err != nil {
		return nil, nil, err
	}

	booking := &models.Booking{
		ID:          uuid.NewString(),
		Username:    sess.Username,
		SubjectType: state.SubjectType,
		SubjectName: state.SubjectName,
		Fields:      fields,
		CreatedAt:   time.Now().UTC(),
	}
	if err := c.store.AppendBooking(ctx, booking); err != nil {
		return nil, nil, err
	}

	if err := c.states.ClearState(ctx, models.ActionStateKey); err != nil {
		// The booking is committed; a stale pending marker is recoverable.
		c.logger.Error().Err(err).Msg("failed to clear booking state")
	}
	if err := c.session.ReloadBookings(ctx); err != nil {
		c.logger.Error().Err(err).Msg("failed to reload bookings after commit")
	}

	metrics.IncBooking(string(state.SubjectType))

	notice := models.Notice{
		Kind:    models.NoticeConfirmation,
		Message: fmt.Sprintf("Booking for %s confirmed!", state.SubjectName),
	}
	c.publish(events.EventBookingConfirmed, events.BookingEventPayload{
		BookingID:   booking.ID,
		Username:    booking.Username,
		SubjectType: booking.SubjectType,
		SubjectName: booking.SubjectName,
		Notice:      &notice,
	})
	c.logger.Info().
		Str("booking_id", booking.ID).
		Str("username", booking.Username).
		Str("subject_name", booking.SubjectName).
		Msg("booking confirmed")

	return booking, &notice, nil
}

// Cancel abandons the pending intent. Nothing durable changes.
func (c *Coordinator) Cancel(ctx context.Context) error {
	state, err := c.states.GetState(ctx, models.ActionStateKey)
	if err != nil {
		return err
	}
	if state == nil {
		return nil
	}

	if err := c.states.ClearState(ctx, models.ActionStateKey); err != nil {
		return err
	}

	c.publish(events.EventBookingCancelled, events.BookingEventPayload{
		SubjectType: state.SubjectType,
		SubjectName: state.SubjectName,
	})
	c.logger.Info().Str("subject_name", state.SubjectName).Msg("pending booking cancelled")
	return nil
}

func (c *Coordinator) publish(eventType string, payload interface{}) {
	if c.bus == nil {
		return
	}
	if err := c.bus.PublishJSON(eventType, payload); err != nil {
		c.logger.Error().Err(err).Str("event_type", eventType).Msg("publish event error")
	}
}
