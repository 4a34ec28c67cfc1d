package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerbridge/identity-system/internal/api"
	"github.com/careerbridge/identity-system/internal/api/metrics"
	"github.com/careerbridge/identity-system/internal/core/service"
	mongodb "github.com/careerbridge/identity-system/internal/infrastructure/db/mongo"
	"github.com/careerbridge/identity-system/internal/infrastructure/queue"
	"github.com/careerbridge/identity-system/internal/infrastructure/sink"
	"github.com/careerbridge/identity-system/internal/infrastructure/store"
	redisstore "github.com/careerbridge/identity-system/internal/infrastructure/store/redis"
	"github.com/careerbridge/identity-system/internal/pkg/config"
	"github.com/careerbridge/identity-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Backends ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories and stores ---
	credentialRepo := mongodb.NewCredentialRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	if cfg.Session.SeedDemoAccounts {
		if err := mongodb.SeedDemoAccounts(ctx, credentialRepo); err != nil {
			log.Fatal().Err(err).Msg("demo account seeding failed")
		}
	}

	kv := redisstore.NewKV(rdb)
	sessionStore := store.NewSessionStore(kv, cfg.Session.Namespace)
	preferenceStore := store.NewPreferenceStore(kv)
	adminStore := store.NewAdminStore(kv)

	// --- Services ---
	identitySvc := service.NewIdentityService(credentialRepo, cfg.JWTSecret, cfg.Session.TokenTTL)

	coordinator := service.NewSessionCoordinator(
		identitySvc,
		sessionStore,
		sink.NewLogNavigator(logger.Component("navigator")),
		sink.NewLogNotifier(logger.Component("notifier")),
		logger.Component("session"),
	)

	toggle := service.NewRoleToggle(coordinator, preferenceStore, -1, logger.Component("roletoggle"))

	auditRecorder := queue.NewAuditRecorder(auditRepo, logger.Component("audit"), func() {
		metrics.AuditDroppedTotal.Inc()
	})
	auditRecorder.Start(ctx)

	adminSession := service.NewAdminSession(adminRepo, adminStore, auditRecorder, logger.Component("admin"))

	// Restore any persisted session before the first request is served.
	coordinator.Rehydrate(ctx)
	if coordinator.IsAuthenticated() {
		metrics.RehydrationsTotal.WithLabelValues("restored").Inc()
	} else {
		metrics.RehydrationsTotal.WithLabelValues("empty").Inc()
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Coordinator: coordinator,
		Toggle:      toggle,
		Admin:       adminSession,
		Mongo:       db,
		Redis:       rdb,
		JWTSecret:   cfg.JWTSecret,
		Log:         logger.Component("http"),
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("identity server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
