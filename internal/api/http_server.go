package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"darshan/internal/config"
	"darshan/internal/service"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// HTTPServer is the local HTTP surface the kiosk UI talks to. It carries
// no auth of its own; the session workflow is the auth.
type HTTPServer struct {
	cfg      config.APIConfig
	sessions *service.SessionManager
	server   *http.Server
	logger   *zerolog.Logger
	limiters sync.Map // map[string]*rate.Limiter
}

func NewHTTPServer(
	cfg config.APIConfig,
	sessions *service.SessionManager,
	coordinator *service.Coordinator,
	dashboard *service.DashboardService,
	nav *service.NavigationStack,
	deps HandlerDeps,
	logger *zerolog.Logger,
) *HTTPServer {
	srv := &HTTPServer{
		cfg:      cfg,
		sessions: sessions,
		logger:   logger,
	}

	handlers := &handlers{
		sessions:    sessions,
		coordinator: coordinator,
		dashboard:   dashboard,
		nav:         nav,
		deps:        deps,
		logger:      logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/register", handlers.handleRegister)
	mux.HandleFunc("/api/v1/auth/login", handlers.handleLogin)
	mux.HandleFunc("/api/v1/auth/logout", handlers.handleLogout)
	mux.HandleFunc("/api/v1/session", handlers.handleSession)
	mux.HandleFunc("/api/v1/catalog", handlers.handleCatalog)
	mux.HandleFunc("/api/v1/bookings", handlers.handleBookings)
	mux.HandleFunc("/api/v1/bookings/request", handlers.handleBookingRequest)
	mux.HandleFunc("/api/v1/bookings/finalize", handlers.handleBookingFinalize)
	mux.HandleFunc("/api/v1/bookings/cancel", handlers.handleBookingCancel)
	mux.HandleFunc("/api/v1/bookings/export", handlers.handleBookingExport)
	mux.HandleFunc("/api/v1/dashboard", handlers.handleDashboard)
	mux.HandleFunc("/api/v1/assistant/chat", handlers.handleAssistantChat)
	mux.HandleFunc("/api/v1/assistant/itinerary", handlers.handleItinerary)
	mux.HandleFunc("/api/v1/navigation", handlers.handleNavigation)
	mux.HandleFunc("/api/v1/navigation/go", handlers.handleNavigationGo)
	mux.HandleFunc("/api/v1/navigation/back", handlers.handleNavigationBack)

	handler := srv.loggingMiddleware(srv.rateLimitMiddleware(mux))

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	return srv
}

func (s *HTTPServer) Start() error {
	if s.server == nil {
		return fmt.Errorf("http server is not initialized")
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.RateLimit.RPS > 0 {
			if !s.getLimiter(clientKey(r)).Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return "unknown"
}

func (s *HTTPServer) getLimiter(key string) *rate.Limiter {
	if v, ok := s.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}

	burst := s.cfg.RateLimit.Burst
	if burst <= 0 {
		burst = 5
	}

	lim := rate.NewLimiter(rate.Limit(s.cfg.RateLimit.RPS), burst)
	actual, loaded := s.limiters.LoadOrStore(key, lim)
	if loaded {
		return actual.(*rate.Limiter)
	}
	return lim
}

func (s *HTTPServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func decodeJSON(r *http.Request, into any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(into)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
