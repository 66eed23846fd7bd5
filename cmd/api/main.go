package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinician-api/internal/config"
	"github.com/jwalitptl/clinician-api/internal/fixture"
	"github.com/jwalitptl/clinician-api/internal/handler"
	analyticsHandler "github.com/jwalitptl/clinician-api/internal/handler/analytics"
	authHandler "github.com/jwalitptl/clinician-api/internal/handler/auth"
	notificationHandler "github.com/jwalitptl/clinician-api/internal/handler/notification"
	patientHandler "github.com/jwalitptl/clinician-api/internal/handler/patient"
	scheduleHandler "github.com/jwalitptl/clinician-api/internal/handler/schedule"
	"github.com/jwalitptl/clinician-api/internal/middleware"
	"github.com/jwalitptl/clinician-api/internal/router"
	analyticsService "github.com/jwalitptl/clinician-api/internal/service/analytics"
	authService "github.com/jwalitptl/clinician-api/internal/service/auth"
	notificationService "github.com/jwalitptl/clinician-api/internal/service/notification"
	scheduleService "github.com/jwalitptl/clinician-api/internal/service/schedule"
	"github.com/jwalitptl/clinician-api/internal/store"
	pkgauth "github.com/jwalitptl/clinician-api/pkg/auth"
	"github.com/jwalitptl/clinician-api/pkg/logger"
	"github.com/jwalitptl/clinician-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(nil)
	appMetrics := metrics.New("clinician_api")

	// Session store: the only durable state in the system.
	baseStore, err := newStore(cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open session store")
	}
	sessionStore := store.NewInstrumentedStore(baseStore, appMetrics)

	// Bundled fixture standing in for a real backend.
	schedule, err := fixture.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load fixture data")
	}

	tokenSvc := pkgauth.NewTokenService(
		cfg.Auth.TokenSecret,
		time.Duration(cfg.Auth.TokenExpiryHours)*time.Hour,
	)

	analyticsSvc := analyticsService.NewService(appMetrics, appLogger, cfg.Analytics.Enabled)
	authSvc, err := authService.NewService(sessionStore, tokenSvc, cfg.Auth.Config, appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth service")
	}
	scheduleSvc := scheduleService.NewService(sessionStore, schedule, cfg.Data, appMetrics, appLogger)
	notificationSvc := notificationService.NewService(appLogger)

	authMiddleware := middleware.NewAuthMiddleware(authSvc, tokenSvc)

	h := handler.NewHandler(sessionStore, appMetrics)
	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc, analyticsSvc),
		scheduleHandler.NewHandler(scheduleSvc, analyticsSvc),
		patientHandler.NewHandler(scheduleSvc, analyticsSvc),
		notificationHandler.NewHandler(notificationSvc, analyticsSvc),
		analyticsHandler.NewHandler(analyticsSvc),
		h,
		appMetrics,
		router.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimitRPS:     cfg.RateLimit.RPS,
			RateLimitBurst:   cfg.RateLimit.Burst,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func newStore(cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case "", "file":
		return store.NewFileStore(cfg.Path)
	case "redis":
		return store.NewRedisStore(cfg.Redis)
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
