package service

import (
	"context"
	"encoding/json"
	"testing"

	"darshan/internal/events"
	"darshan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePayload(event *events.Event, into interface{}) error {
	return json.Unmarshal(event.Payload, into)
}

func TestRequestBookingAuthenticated(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.sessions.Register(ctx, "asha", "secret")
	require.NoError(t, err)
	_, err = h.sessions.Login(ctx, "asha", "secret")
	require.NoError(t, err)

	state, err := h.coordinator.RequestBooking(ctx, models.SubjectHotel, "Radisson Blu Hotel")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingDetails, state.Step)
	assert.Equal(t, models.SubjectHotel, state.SubjectType)
}

func TestRequestBookingAnonymousParksIntent(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	var pending []events.BookingEventPayload
	h.bus.Subscribe(events.EventBookingPending, func(event *events.Event) error {
		var payload events.BookingEventPayload
		require.NoError(t, decodePayload(event, &payload))
		pending = append(pending, payload)
		return nil
	})

	state, err := h.coordinator.RequestBooking(ctx, models.SubjectHotel, "Radisson Blu Hotel")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingAuth, state.Step)
	require.Len(t, pending, 1)
	assert.Equal(t, "Radisson Blu Hotel", pending[0].SubjectName)
}

func TestSecondRequestReplacesFirst(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.coordinator.RequestBooking(ctx, models.SubjectHotel, "Radisson Blu Hotel")
	require.NoError(t, err)
	_, err = h.coordinator.RequestBooking(ctx, models.SubjectGuide, "Rohan Gupta")
	require.NoError(t, err)

	state, err := h.coordinator.State(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, models.SubjectGuide, state.SubjectType)
	assert.Equal(t, "Rohan Gupta", state.SubjectName)
}

func TestFinalizeWithoutPendingBooking(t *testing.T) {
	h := newTestHarness(t)
	_, _, err := h.coordinator.Finalize(context.Background(), models.BookingFields{})
	assert.ErrorIs(t, err, ErrNoPendingBooking)
}

func TestFinalizeRequiresAuthentication(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.coordinator.RequestBooking(ctx, models.SubjectGuide, "Rohan Gupta")
	require.NoError(t, err)

	// intent exists but is parked behind login
	_, _, err = h.coordinator.Finalize(ctx, models.BookingFields{TourDate: "2025-07-01", GroupSize: 3})
	assert.ErrorIs(t, err, ErrNoPendingBooking)
}

func TestFinalizeValidationFailureKeepsState(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.sessions.Register(ctx, "asha", "secret")
	require.NoError(t, err)
	_, err = h.sessions.Login(ctx, "asha", "secret")
	require.NoError(t, err)
	_, err = h.coordinator.RequestBooking(ctx, models.SubjectHotel, "Radisson Blu Hotel")
	require.NoError(t, err)

	_, _, err = h.coordinator.Finalize(ctx, models.BookingFields{
		CheckIn:    "2025-06-10",
		CheckOut:   "2025-06-05",
		GuestCount: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// nothing committed, intent still live for a corrected resubmission
	assert.Empty(t, h.sessions.Bookings())
	state, err := h.coordinator.State(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, models.StepAwaitingDetails, state.Step)

	booking, notice, err := h.coordinator.Finalize(ctx, models.BookingFields{
		CheckIn:    "2025-06-05",
		CheckOut:   "2025-06-10",
		GuestCount: 2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "Booking for Radisson Blu Hotel confirmed!", notice.Message)
}

func TestFinalizeCommitsAndClearsState(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.sessions.Register(ctx, "asha", "secret")
	require.NoError(t, err)
	_, err = h.sessions.Login(ctx, "asha", "secret")
	require.NoError(t, err)
	_, err = h.coordinator.RequestBooking(ctx, models.SubjectGuide, "Rohan Gupta")
	require.NoError(t, err)

	booking, notice, err := h.coordinator.Finalize(ctx, models.BookingFields{TourDate: "2025-07-01", GroupSize: 3})
	require.NoError(t, err)
	assert.Equal(t, "asha", booking.Username)
	assert.Equal(t, models.NoticeConfirmation, notice.Kind)

	state, err := h.coordinator.State(ctx)
	require.NoError(t, err)
	assert.Nil(t, state)

	bookings := h.sessions.Bookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, booking.ID, bookings[0].ID)

	_, _, err = h.coordinator.Finalize(ctx, models.BookingFields{TourDate: "2025-07-01", GroupSize: 3})
	assert.ErrorIs(t, err, ErrNoPendingBooking)
}

func TestCancelDropsIntent(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.coordinator.RequestBooking(ctx, models.SubjectHotel, "Radisson Blu Hotel")
	require.NoError(t, err)
	require.NoError(t, h.coordinator.Cancel(ctx))

	state, err := h.coordinator.State(ctx)
	require.NoError(t, err)
	assert.Nil(t, state)

	// cancelling an idle workflow is a no-op
	assert.NoError(t, h.coordinator.Cancel(ctx))
}

func TestResumeWithoutParkedIntent(t *testing.T) {
	h := newTestHarness(t)
	resumed, err := h.coordinator.ResumeAfterLogin(context.Background())
	require.NoError(t, err)
	assert.False(t, resumed)
}
