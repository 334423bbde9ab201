package api

import (
	"errors"
	"net/http"

	"darshan/internal/assistant"
	"darshan/internal/catalog"
	"darshan/internal/database"
	"darshan/internal/export"
	"darshan/internal/models"
	"darshan/internal/service"

	"github.com/rs/zerolog"
)

// HandlerDeps groups the optional collaborators. Assistant may be nil when
// no API key is configured; the chat endpoints then answer with an apology.
type HandlerDeps struct {
	Catalog   *catalog.Catalog
	Exporter  *export.Exporter
	Assistant *assistant.Client
}

type handlers struct {
	sessions    *service.SessionManager
	coordinator *service.Coordinator
	dashboard   *service.DashboardService
	nav         *service.NavigationStack
	deps        HandlerDeps
	logger      *zerolog.Logger
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body credentialsRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	notice, err := h.sessions.Register(r.Context(), body.Username, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyField):
			writeError(w, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, database.ErrDuplicateUser):
			writeError(w, http.StatusConflict, "username is already taken")
		default:
			h.logger.Error().Err(err).Msg("register failed")
			writeError(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"notice": notice})
}

func (h *handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body credentialsRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	notice, err := h.sessions.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		h.logger.Error().Err(err).Msg("login failed")
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	state, err := h.coordinator.State(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load booking state")
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"notice":        notice,
		"booking_state": state,
	})
}

func (h *handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := h.sessions.Logout(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("logout failed")
		writeError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (h *handlers) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	state, err := h.coordinator.State(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load booking state")
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session":       h.sessions.Current(),
		"authenticated": h.sessions.IsAuthenticated(),
		"booking_state": state,
	})
}

func (h *handlers) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	c := h.deps.Catalog
	writeJSON(w, http.StatusOK, map[string]any{
		"hotels":   c.Hotels,
		"guides":   c.Guides,
		"places":   c.Places,
		"markets":  c.Markets,
		"contacts": c.Contacts,
		"notices":  c.Notices,
	})
}

func (h *handlers) handleBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !h.sessions.IsAuthenticated() {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": h.sessions.Bookings()})
}

func (h *handlers) handleBookingRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body struct {
		SubjectType models.SubjectType `json:"subject_type"`
		SubjectName string             `json:"subject_name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if !knownSubject(h.deps.Catalog, body.SubjectType, body.SubjectName) {
		writeError(w, http.StatusNotFound, "no such hotel or guide")
		return
	}

	state, err := h.coordinator.RequestBooking(r.Context(), body.SubjectType, body.SubjectName)
	if err != nil {
		if errors.Is(err, service.ErrEmptyField) {
			writeError(w, http.StatusBadRequest, "subject_name is required")
			return
		}
		h.logger.Error().Err(err).Msg("booking request failed")
		writeError(w, http.StatusInternalServerError, "booking request failed")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{"booking_state": state})
}

func (h *handlers) handleBookingFinalize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var fields models.BookingFields
	if err := decodeJSON(r, &fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	booking, notice, err := h.coordinator.Finalize(r.Context(), fields)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPendingBooking):
			writeError(w, http.StatusConflict, "no booking awaiting details")
		case errors.Is(err, service.ErrNotAuthenticated):
			writeError(w, http.StatusUnauthorized, "login required")
		case errors.Is(err, service.ErrMissingDates),
			errors.Is(err, service.ErrInvalidDateRange),
			errors.Is(err, service.ErrInvalidGuests),
			errors.Is(err, service.ErrMissingDate),
			errors.Is(err, service.ErrInvalidGroupSize):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.Error().Err(err).Msg("booking finalize failed")
			writeError(w, http.StatusInternalServerError, "booking failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"booking": booking,
		"notice":  notice,
	})
}

func (h *handlers) handleBookingCancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := h.coordinator.Cancel(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("booking cancel failed")
		writeError(w, http.StatusInternalServerError, "cancel failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (h *handlers) handleBookingExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sess := h.sessions.Current()
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	bookings := h.sessions.Bookings()
	stats := h.dashboard.Summarize(bookings)

	path, err := h.deps.Exporter.ExportBookings(sess.Username, bookings, stats)
	if err != nil {
		h.logger.Error().Err(err).Msg("export failed")
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}

func (h *handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !h.sessions.IsAuthenticated() {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}
	writeJSON(w, http.StatusOK, h.dashboard.Summarize(h.sessions.Bookings()))
}

func (h *handlers) handleAssistantChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.deps.Assistant == nil {
		writeError(w, http.StatusServiceUnavailable, assistant.ApologyMessage)
		return
	}

	var body struct {
		Message  string `json:"message"`
		Language string `json:"language"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	reply, err := h.deps.Assistant.Chat(r.Context(), body.Message, body.Language)
	if err != nil {
		if errors.Is(err, assistant.ErrUnavailable) {
			writeError(w, http.StatusServiceUnavailable, assistant.ApologyMessage)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (h *handlers) handleItinerary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.deps.Assistant == nil {
		writeError(w, http.StatusServiceUnavailable, assistant.ApologyMessage)
		return
	}

	var req models.ItineraryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	days, err := h.deps.Assistant.PlanItinerary(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrNoInterests), errors.Is(err, assistant.ErrInvalidDuration):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, assistant.ErrUnavailable):
			writeError(w, http.StatusServiceUnavailable, assistant.ApologyMessage)
		default:
			h.logger.Error().Err(err).Msg("itinerary failed")
			writeError(w, http.StatusBadGateway, assistant.ApologyMessage)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"itinerary": days})
}

func (h *handlers) handleNavigation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"current": h.nav.Current(),
		"depth":   h.nav.Depth(),
	})
}

func (h *handlers) handleNavigationGo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body struct {
		View  models.View `json:"view"`
		Reset bool        `json:"reset"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.View == "" {
		writeError(w, http.StatusBadRequest, "view is required")
		return
	}

	if body.Reset {
		h.nav.ResetTo(body.View)
	} else {
		h.nav.Navigate(body.View)
	}
	writeJSON(w, http.StatusOK, map[string]any{"current": h.nav.Current(), "depth": h.nav.Depth()})
}

func (h *handlers) handleNavigationBack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"current": h.nav.Back(), "depth": h.nav.Depth()})
}

func knownSubject(c *catalog.Catalog, subjectType models.SubjectType, name string) bool {
	switch subjectType {
	case models.SubjectHotel:
		_, ok := c.HotelByName(name)
		return ok
	case models.SubjectGuide:
		_, ok := c.GuideByName(name)
		return ok
	default:
		return false
	}
}
