package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/lumident/clinic-platform/cmd/mainconfig"
	"github.com/lumident/clinic-platform/internal/admin"
	"github.com/lumident/clinic-platform/internal/api/router"
	"github.com/lumident/clinic-platform/internal/appointments"
	appconfig "github.com/lumident/clinic-platform/internal/config"
	"github.com/lumident/clinic-platform/internal/http/handlers"
	"github.com/lumident/clinic-platform/internal/localstore"
	"github.com/lumident/clinic-platform/internal/notify"
	"github.com/lumident/clinic-platform/internal/observability/metrics"
	"github.com/lumident/clinic-platform/internal/pipeline"
	"github.com/lumident/clinic-platform/internal/scene"
	"github.com/lumident/clinic-platform/internal/scene/timeline"
	"github.com/lumident/clinic-platform/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting clinic-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Build the braces scene once; it is deterministic for the seed.
	assembly, err := scene.Build(scene.Params{
		ToothCount: cfg.SceneToothCount,
		ArchRadius: cfg.SceneArchRadius,
		Seed:       cfg.SceneSeed,
	})
	if err != nil {
		logger.Error("failed to build scene", "error", err)
		os.Exit(1)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	submissionMetrics := metrics.NewSubmissionMetrics(registry)

	// Persistence
	var apptRepo appointments.Repository = appointments.NewInMemoryRepository()
	var adminHandler *admin.Handler
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		apptRepo = appointments.NewPostgresRepository(pool)

		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to open admin db connection", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		adminHandler = admin.NewHandler(admin.NewRepository(db))
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory repository")
	}

	// Demo dashboard store
	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)
	store := localstore.New(redisClient, logger.WithComponent("localstore"))

	// Notification channels
	var emailSender notify.EmailSender
	switch cfg.EmailProvider {
	case "sendgrid":
		emailSender = notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
	case "ses":
		awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		emailSender = notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
	default:
		emailSender = notify.NewStubEmailSender(logger)
	}

	var chatNotifier notify.ChatNotifier
	if tn := notify.NewTelegramNotifier(notify.TelegramConfig{
		APIBase: cfg.TelegramAPIBase,
		Token:   cfg.TelegramBotToken,
		ChatID:  cfg.TelegramChatID,
	}, logger); tn != nil {
		chatNotifier = tn
	} else {
		logger.Warn("telegram notifications disabled")
	}

	notifyService := notify.NewService(emailSender, chatNotifier, notify.ServiceConfig{
		AdminEmail: cfg.AdminEmail,
	}, submissionMetrics, logger)

	// Submission pipeline
	submitURL := cfg.BookingSubmitURL
	if submitURL == "" {
		submitURL = fmt.Sprintf("http://127.0.0.1:%s/api/process-booking", cfg.Port)
	}
	submissionPipeline := pipeline.New(submitURL, store, notifyService, submissionMetrics, logger.WithComponent("pipeline"))

	// Setup router
	routerCfg := &router.Config{
		Logger:              logger,
		SceneHandler:        handlers.NewSceneHandler(assembly, timeline.DefaultConfig(), logger),
		FormsHandler:        handlers.NewFormsHandler(submissionPipeline, store, logger),
		AppointmentsHandler: appointments.NewHandler(apptRepo, notifyService, submissionMetrics, logger),
		AdminHandler:        adminHandler,
		AdminAuthSecret:     cfg.AdminJWTSecret,
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
