package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/medichat/medichat-client/internal/api"
	"github.com/medichat/medichat-client/internal/app"
	"github.com/medichat/medichat-client/internal/chat"
	"github.com/medichat/medichat-client/internal/config"
	"github.com/medichat/medichat-client/internal/domain"
	"github.com/medichat/medichat-client/internal/fitness"
	"github.com/medichat/medichat-client/internal/logger"
	"github.com/medichat/medichat-client/internal/media"
	"github.com/medichat/medichat-client/internal/profile"
	"github.com/medichat/medichat-client/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	logger.Info("Starting MediChat client", "api", cfg.API.BaseURL)

	// Session storage: file by default, Redis when several terminals share
	// one login
	var backend session.Backend
	switch cfg.Session.Backend {
	case "redis":
		backend, err = session.NewRedisBackend(cfg.Session.RedisHost, cfg.Session.RedisPort)
	default:
		backend, err = session.NewFileBackend(cfg.Session.FileDir)
	}
	if err != nil {
		logger.Fatalf("Failed to open session storage: %v", err)
	}

	sessions := session.NewStore(backend)
	defer sessions.Close()

	gateway, err := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, sessions)
	if err != nil {
		logger.Fatalf("Failed to create API client: %v", err)
	}

	// Position source: a replay track file when configured, otherwise the
	// tracker reports geolocation as unsupported
	var watcher domain.PositionWatcher
	if track := os.Getenv("GEO_TRACK_FILE"); track != "" {
		replay, err := fitness.NewReplayWatcher(track, time.Second)
		if err != nil {
			logger.Fatalf("Failed to load track file: %v", err)
		}
		watcher = replay
	}

	tracker := fitness.NewTracker(watcher, fitness.Walking, cfg.Fitness.DefaultWeightKg,
		fitness.WithAbortHandler(func(err error) {
			logger.Error("Tracking aborted", "error", err)
		}))

	client := app.New(app.Dependencies{
		Sessions:     sessions,
		Gateway:      gateway,
		Conversation: chat.NewConversation(gateway),
		Recorder:     media.NewRecorder(),
		Tracker:      tracker,
		Profiles:     profile.NewService(gateway),
	}, app.NewLinerInput(), os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("Shutting down")
		cancel()
	}()

	if err := client.Run(ctx); err != nil && err != context.Canceled {
		logger.Fatalf("Client stopped with error: %v", err)
	}
}
