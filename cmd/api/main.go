package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"med-voice/internal/adapters/ai/gemini"
	"med-voice/internal/adapters/eventbroker/nats"
	"med-voice/internal/adapters/handlers/http/chi"
	recording2 "med-voice/internal/adapters/handlers/http/chi/v1/recording"
	"med-voice/internal/adapters/handlers/http/chi/v1/upload"
	"med-voice/internal/adapters/registry"
	"med-voice/internal/adapters/repository/postgres"
	"med-voice/internal/adapters/storage/minio"
	"med-voice/internal/config"
	"med-voice/internal/core/port"
	"med-voice/internal/core/service/chunked"
	"med-voice/internal/core/service/cleanup"
	"med-voice/internal/core/service/process"
	recordingservice "med-voice/internal/core/service/recording"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	//event broker
	publisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init nats publisher", "error", err)
		os.Exit(1)
	}
	defer func(publisher port.EventPublisher) {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close nats publisher", "error", err)
		}
	}(publisher)

	//ai
	geminiAdapter, err := gemini.NewAdapter(ctx, cfg.AI, logger)
	if err != nil {
		logger.Error("failed to init gemini", "error", err)
		os.Exit(1)
	}

	//repositories and registries
	recordingRepo := postgres.NewSqlRecordingRepository(db)
	sessionRegistry := registry.NewSessionRegistry()
	dedupIndex := registry.NewDeduplicationIndex(cfg.Dedup.FreshnessWindow)

	//services
	chunkService := chunked.NewChunkService(sessionRegistry, minioAdapter, recordingRepo, publisher, cfg.Upload, logger)
	processService := process.NewProcessService(recordingRepo, minioAdapter, geminiAdapter, geminiAdapter, dedupIndex, cfg.Dedup, logger)
	recordingService := recordingservice.NewRecordingService(recordingRepo, minioAdapter, logger)
	cleanupService := cleanup.NewCleanupService(sessionRegistry, dedupIndex, cfg.Upload, logger)

	//http
	uploadHandler := upload.NewUploadHandlerV1(chunkService, processService, cfg.Upload.StagingDir, logger)
	recordingHandler := recording2.NewRecordingHandlerV1(recordingService, logger)

	router := chi.NewRouter(logger, uploadHandler, recordingHandler, cfg.Upload.MaxFileSize, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init cleanup task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initCleanupTask(ctx, cleanupService, cfg.Upload.CleanupEvery, cfg.Dedup.SweepEvery, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initCleanupTask(ctx context.Context, service port.CleanupService, sessionEvery, sweepEvery time.Duration, logger *slog.Logger) {
	sessionTicker := time.NewTicker(sessionEvery)
	defer sessionTicker.Stop()
	sweepTicker := time.NewTicker(sweepEvery)
	defer sweepTicker.Stop()

	logger.Info("cleanup task initialized", "sessionInterval", sessionEvery, "sweepInterval", sweepEvery)

	for {
		select {
		case <-sessionTicker.C:
			logger.Info("stale session cleanup starting")
			err := service.CleanupStaleSessions(ctx, time.Now())
			if err != nil {
				logger.Error("failed to cleanup stale sessions", "error", err)
			} else {
				logger.Info("stale session cleanup completed successfully")
			}
		case <-sweepTicker.C:
			removed := service.SweepDedupEntries(ctx, time.Now())
			if removed > 0 {
				logger.Info("dedup sweep completed", "removed", removed)
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
