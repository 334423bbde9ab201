package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"darshan/internal/api"
	"darshan/internal/assistant"
	"darshan/internal/catalog"
	"darshan/internal/config"
	"darshan/internal/database"
	"darshan/internal/domain"
	"darshan/internal/events"
	"darshan/internal/export"
	"darshan/internal/logging"
	"darshan/internal/metrics"
	"darshan/internal/models"
	"darshan/internal/repository"
	"darshan/internal/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func(c io.Closer) { _ = c.Close() })(closer)
	}
	logger := baseLogger.With().Str("component", "main").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(cfg, &logger)
	if err != nil {
		return err
	}

	db, err := database.NewDB(cfg.Database.Path, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize database")
		return err
	}
	defer db.Close()

	stateRepo := initStateRepository(ctx, cfg, &logger)

	eventBus := events.NewEventBus()
	subscribeNoticeEvents(eventBus, &logger)

	sessions := service.NewSessionManager(db, eventBus, &logger)
	coordinator := service.NewCoordinator(db, stateRepo, sessions, eventBus, &logger)
	sessions.SetResumer(coordinator)

	if err := sessions.Restore(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to restore session")
	}

	dashboard := service.NewDashboardService(cat, cfg.Booking)
	nav := service.NewNavigationStack(models.ViewHome, &logger)
	exporter := export.NewExporter(cfg.Exports, &logger)

	var assistantClient *assistant.Client
	if cfg.Assistant.APIKey != "" {
		assistantClient, err = assistant.New(ctx, cfg.Assistant, &logger)
		if err != nil {
			logger.Warn().Err(err).Msg("assistant initialization failed, concierge features disabled")
			assistantClient = nil
		} else {
			defer assistantClient.Close()
		}
	}

	metrics.Register()
	if cfg.Monitoring.PrometheusEnabled {
		go startMetricsServer(cfg.Monitoring.PrometheusPort, &logger)
	}

	if cfg.Backup.Enabled {
		backupService := database.NewBackupService(cfg.Database.Path, cfg.Backup, &logger)
		go backupService.Start(ctx)
	}

	apiServer := api.NewHTTPServer(cfg.API, sessions, coordinator, dashboard, nav, api.HandlerDeps{
		Catalog:   cat,
		Exporter:  exporter,
		Assistant: assistantClient,
	}, &logger)

	go func() {
		if err := apiServer.Start(); err != nil {
			logger.Error().Err(err).Msg("API server error")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("API server shutdown error")
	}

	logger.Info().Msg("Shutdown complete.")
	return nil
}

func loadCatalog(cfg *config.Config, logger *zerolog.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.Catalog.Path).Msg("failed to load catalog")
		return nil, err
	}
	logger.Info().Str("path", cfg.Catalog.Path).Int("hotels", len(cat.Hotels)).Int("guides", len(cat.Guides)).Msg("catalog loaded")
	return cat, nil
}

func initStateRepository(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) domain.StateRepository {
	memory := repository.NewMemoryStateRepository()
	if !cfg.Redis.Enabled {
		return memory
	}

	client := repository.NewRedisClient(cfg.Redis)
	if err := repository.Ping(ctx, client); err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, falling back to in-memory state")
	}

	ttl := time.Duration(cfg.Booking.StateTTL) * time.Second
	primary := repository.NewRedisStateRepository(client, ttl)
	return repository.NewFailoverStateRepository(primary, memory, logger)
}

func subscribeNoticeEvents(bus *events.EventBus, logger *zerolog.Logger) {
	handler := func(ev *events.Event) error {
		var payload events.BookingEventPayload
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			logger.Error().Err(err).Str("event", ev.Type).Msg("event bus: decode payload")
			return nil
		}
		logger.Info().
			Str("event", ev.Type).
			Str("subject_name", payload.SubjectName).
			Msg("booking event")
		return nil
	}

	bus.Subscribe(events.EventBookingPending, handler)
	bus.Subscribe(events.EventBookingResumed, handler)
	bus.Subscribe(events.EventBookingConfirmed, handler)
	bus.Subscribe(events.EventBookingCancelled, handler)
}

func startMetricsServer(port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info().Int("port", port).Msg("metrics server listening")
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
