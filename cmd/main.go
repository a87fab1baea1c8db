// cmd/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go_speak_review/internal/config"
	"go_speak_review/internal/handlers"
	"go_speak_review/internal/repository"
	"go_speak_review/internal/service"
	"go_speak_review/internal/srs"
	"go_speak_review/internal/worker"
)

func main() {
	configPath := flag.String("config", "configs", "config.yaml を含むディレクトリ")
	migrateOnStart := flag.Bool("migrate", false, "起動時にマイグレーションを適用する")
	flag.Parse()

	log.Println("Log Config Loading...")
	if err := config.LoadConfig(*configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel, ok := config.NewLevelVar(cfg.Log.Level)
	logger := config.NewLogger(os.Stderr, logLevel)
	if !ok {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}
	slog.SetDefault(logger)
	// 設定ファイルの log.level 変更を再起動なしで反映
	config.WatchLogLevel(logLevel, logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	if *migrateOnStart {
		if err := runMigrations(cfg.Database.URL, logger); err != nil {
			slog.Error("Error applying migrations", slog.Any("error", err))
			os.Exit(1)
		}
	}

	db, err := repository.NewDB(cfg.Database.URL, repository.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	scheduler, err := newScheduler(cfg)
	if err != nil {
		slog.Error("Error initializing scheduler", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	itemRepo := repository.NewGormReviewItemRepository()
	usageRepo := repository.NewGormUsageRepository()
	reviewService := service.NewReviewService(db, itemRepo, scheduler, cfg)
	syncService := service.NewSyncService(db, itemRepo, usageRepo, cfg)

	router := handlers.NewRouter(handlers.RouterDeps{
		DB:            db,
		ReviewService: reviewService,
		SyncService:   syncService,
		Config:        cfg,
		Logger:        logger,
	})

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	var syncWorker *worker.SyncWorker
	if cfg.Sync.Enabled {
		syncWorker = worker.NewSyncWorker(syncService, cfg.Sync.Interval, cfg.Sync.Lookback, logger)
		if err := syncWorker.Start(rootCtx); err != nil {
			slog.Error("Error starting sync worker", slog.Any("error", err))
			os.Exit(1)
		}
	}

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	stop()
	if syncWorker != nil {
		syncWorker.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}

func newScheduler(cfg *config.Config) (*srs.Scheduler, error) {
	weights, err := srs.WeightsFromSlice(cfg.SRS.Weights)
	if err != nil {
		return nil, err
	}
	formatter, err := srs.NewIntervalFormatter(cfg.App.Locale)
	if err != nil {
		return nil, err
	}
	return srs.NewScheduler(weights, srs.WithFormatter(formatter))
}

func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrator, err := repository.NewMigrator(databaseURL, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()
	return migrator.Up()
}
