package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"darshan/internal/catalog"
	"darshan/internal/config"
	"darshan/internal/database"
	"darshan/internal/events"
	"darshan/internal/export"
	"darshan/internal/models"
	"darshan/internal/repository"
	"darshan/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()
	db, err := database.NewDB(":memory:", &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	bus := events.NewEventBus()
	sessions := service.NewSessionManager(db, bus, &logger)
	coordinator := service.NewCoordinator(db, repository.NewMemoryStateRepository(), sessions, bus, &logger)
	sessions.SetResumer(coordinator)

	cat := catalog.Default()
	dashboard := service.NewDashboardService(cat, config.BookingConfig{
		GuideFlatRate:  models.DefaultGuideFlatRate,
		GuideTourHours: models.DefaultGuideTourHours,
	})
	deps := HandlerDeps{
		Catalog:  cat,
		Exporter: export.NewExporter(config.ExportConfig{Path: t.TempDir()}, &logger),
	}

	nav := service.NewNavigationStack(models.ViewHome, &logger)
	srv := NewHTTPServer(config.APIConfig{Port: 0}, sessions, coordinator, dashboard, nav, deps, &logger)
	ts := httptest.NewServer(srv.server.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, ts *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts, "/api/v1/auth/register", map[string]string{
		"username": "asha", "password": "secret",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts, "/api/v1/auth/register", map[string]string{
		"username": "asha", "password": "other",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts, "/api/v1/auth/login", map[string]string{
		"username": "asha", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts, "/api/v1/auth/login", map[string]string{
		"username": "asha", "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Notice models.Notice `json:"notice"`
	}
	decodeBody(t, resp, &login)
	assert.Equal(t, "Welcome back, asha!", login.Notice.Message)

	resp = getJSON(t, ts, "/api/v1/session")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var session struct {
		Authenticated bool `json:"authenticated"`
	}
	decodeBody(t, resp, &session)
	assert.True(t, session.Authenticated)

	resp = postJSON(t, ts, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = getJSON(t, ts, "/api/v1/dashboard")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestBookingFlowOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts, "/api/v1/auth/register", map[string]string{
		"username": "asha", "password": "secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// anonymous request is parked behind login
	resp = postJSON(t, ts, "/api/v1/bookings/request", map[string]string{
		"subject_type": "guide", "subject_name": "Rohan Gupta",
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	var requested struct {
		BookingState models.ActionState `json:"booking_state"`
	}
	decodeBody(t, resp, &requested)
	assert.Equal(t, models.StepAwaitingAuth, requested.BookingState.Step)

	resp = postJSON(t, ts, "/api/v1/auth/login", map[string]string{
		"username": "asha", "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Notice       models.Notice       `json:"notice"`
		BookingState *models.ActionState `json:"booking_state"`
	}
	decodeBody(t, resp, &login)
	assert.Equal(t, "Welcome! Please complete your booking.", login.Notice.Message)
	require.NotNil(t, login.BookingState)
	assert.Equal(t, models.StepAwaitingDetails, login.BookingState.Step)

	// invalid details leave the intent pending
	resp = postJSON(t, ts, "/api/v1/bookings/finalize", map[string]any{
		"group_size": 3,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts, "/api/v1/bookings/finalize", map[string]any{
		"tour_date": "2025-07-01", "group_size": 3,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var finalized struct {
		Booking models.Booking `json:"booking"`
		Notice  models.Notice  `json:"notice"`
	}
	decodeBody(t, resp, &finalized)
	assert.Equal(t, "Booking for Rohan Gupta confirmed!", finalized.Notice.Message)
	assert.NotEmpty(t, finalized.Booking.ID)

	resp = getJSON(t, ts, "/api/v1/bookings")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Bookings []models.Booking `json:"bookings"`
	}
	decodeBody(t, resp, &list)
	require.Len(t, list.Bookings, 1)

	resp = getJSON(t, ts, "/api/v1/dashboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats models.DashboardStats
	decodeBody(t, resp, &stats)
	assert.Equal(t, 1, stats.TotalBookings)
	assert.Equal(t, int64(models.DefaultGuideFlatRate), stats.EstimatedSpend)
}

func TestBookingRequestUnknownSubject(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts, "/api/v1/bookings/request", map[string]string{
		"subject_type": "hotel", "subject_name": "No Such Hotel",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestBookingCancelOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts, "/api/v1/bookings/request", map[string]string{
		"subject_type": "guide", "subject_name": "Rohan Gupta",
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts, "/api/v1/bookings/cancel", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = getJSON(t, ts, "/api/v1/session")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var session struct {
		BookingState *models.ActionState `json:"booking_state"`
	}
	decodeBody(t, resp, &session)
	assert.Nil(t, session.BookingState)
}

func TestCatalogEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := getJSON(t, ts, "/api/v1/catalog")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var payload struct {
		Hotels []models.Hotel `json:"hotels"`
		Guides []models.Guide `json:"guides"`
	}
	decodeBody(t, resp, &payload)
	assert.NotEmpty(t, payload.Hotels)
	assert.NotEmpty(t, payload.Guides)
}

func TestAssistantUnavailableWithoutKey(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts, "/api/v1/assistant/chat", map[string]string{"message": "hello"})
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Sorry, I'm having trouble connecting right now. Please try again later.", body.Error)
}

func TestNavigationOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts, "/api/v1/navigation/go", map[string]any{"view": "hotels"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = postJSON(t, ts, "/api/v1/navigation/go", map[string]any{"view": "maps"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts, "/api/v1/navigation/back", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var nav struct {
		Current models.View `json:"current"`
		Depth   int         `json:"depth"`
	}
	decodeBody(t, resp, &nav)
	assert.Equal(t, models.ViewHotels, nav.Current)

	resp = postJSON(t, ts, "/api/v1/navigation/go", map[string]any{"view": "profile", "reset": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &nav)
	assert.Equal(t, models.ViewProfile, nav.Current)
	assert.Equal(t, 0, nav.Depth)
}

func TestExportOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts, "/api/v1/bookings/export", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts, "/api/v1/auth/register", map[string]string{
		"username": "asha", "password": "secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = postJSON(t, ts, "/api/v1/auth/login", map[string]string{
		"username": "asha", "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts, "/api/v1/bookings/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Path string `json:"path"`
	}
	decodeBody(t, resp, &out)
	assert.FileExists(t, out.Path)
}
