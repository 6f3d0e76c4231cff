package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/jailbreak-0/iou-tracker/internal/ads"
	"github.com/jailbreak-0/iou-tracker/internal/api"
	"github.com/jailbreak-0/iou-tracker/internal/auth"
	"github.com/jailbreak-0/iou-tracker/internal/category"
	"github.com/jailbreak-0/iou-tracker/internal/config"
	"github.com/jailbreak-0/iou-tracker/internal/contacts"
	"github.com/jailbreak-0/iou-tracker/internal/notify"
	"github.com/jailbreak-0/iou-tracker/internal/reminder"
	"github.com/jailbreak-0/iou-tracker/internal/service"
	"github.com/jailbreak-0/iou-tracker/internal/storage/sqlite"
	"github.com/jailbreak-0/iou-tracker/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	var emailSink *notify.EmailSink
	if cfg.SMTP.Host != "" {
		emailSink = &notify.EmailSink{
			From:     cfg.SMTP.From,
			To:       cfg.SMTP.To,
			Host:     cfg.SMTP.Host,
			Port:     strconv.Itoa(cfg.SMTP.Port),
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
		}
	}
	notifier, available := notify.Detect(cfg.NotifyMode, emailSink)
	if !available {
		slog.Warn("Notification delivery unavailable, reminders will be skipped")
	}

	remindersEnabled := cfg.HasFeature(config.FeatureReminders)
	scheduler := reminder.NewScheduler(store, notifier, remindersEnabled)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	records := service.NewRecordService(store, scheduler)
	settings := service.NewSettingsService(store, scheduler, tokens, auth.Unavailable{})
	categories := service.NewCategoryService(
		category.NewManager(store),
		cfg.HasFeature(config.FeatureCustomCategories),
	)
	gate := ads.NewGate(store, cfg.HasFeature(config.FeatureAds))
	contactsProvider := contacts.NewFileProvider(cfg.ContactsPath)

	// Re-arm every pending reminder on startup; timers do not survive a
	// restart.
	ctx := context.Background()
	if err := scheduler.Resync(ctx); err != nil {
		slog.Warn("Startup reminder resync failed", "error", err)
	}

	// A daily sweep re-arms periodic reminders whose previous timer fired.
	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@daily", func() {
		if err := scheduler.Resync(context.Background()); err != nil {
			slog.Warn("Daily reminder resync failed", "error", err)
		}
	}); err != nil {
		slog.Error("Failed to register reminder sweep", "error", err)
		os.Exit(1)
	}
	sweeper.Start()
	defer sweeper.Stop()

	server := api.NewServer(cfg.Addr, records, settings, categories, gate, contactsProvider, tokens)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}
