package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/abyssmaljib/irene-training/internal/ai"
	"github.com/abyssmaljib/irene-training/internal/config"
	"github.com/abyssmaljib/irene-training/internal/database"
	httpapi "github.com/abyssmaljib/irene-training/internal/http"
	"github.com/abyssmaljib/irene-training/internal/logger"
	"github.com/abyssmaljib/irene-training/internal/push"
	"github.com/abyssmaljib/irene-training/internal/repository"
	"github.com/abyssmaljib/irene-training/internal/service"
	"github.com/abyssmaljib/irene-training/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "irene-ai")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting irene-ai service")

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	generator, err := ai.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatal("Failed to create gemini client", zap.Error(err))
	}

	configRepo := repository.NewCachedAIConfigRepo(
		repository.NewPostgresAIConfigRepo(db),
		store.NewRedisKV(redisClient),
		log,
	)
	coreValuesRepo := repository.NewPostgresCoreValuesRepo(db)
	incidentsRepo := repository.NewPostgresIncidentsRepo(db)
	recordsRepo := repository.NewPostgresShiftRecordsRepo(db)

	sender := push.NewOneSignalClient(cfg.OneSignal.AppID, cfg.OneSignal.APIKey, log)

	handler := httpapi.NewAIHandler(
		service.NewCoachService(configRepo, coreValuesRepo, incidentsRepo, generator, log),
		service.NewShiftSummaryService(configRepo, recordsRepo, generator, log),
		service.NewIncidentSummaryService(incidentsRepo, generator, log),
		service.NewQuizService(generator, log),
		service.NewSummarizeService(generator, log),
		sender,
		log,
	)

	router := httpapi.NewRouter(log)
	router.RegisterAIRoutes(handler)
	router.RegisterHealthRoutes()

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // model calls can be slow
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errChan:
		log.Error("Server error", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down server", zap.Error(err))
	}

	log.Info("Service stopped")
}
