// cmd/review_sync/main.go
// 復習アイテムの同期を1回だけ実行する (cron やプロフィール再計算ジョブから呼ぶ)
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go_speak_review/internal/config"
	"go_speak_review/internal/middleware"
	"go_speak_review/internal/repository"
	"go_speak_review/internal/service"
	"go_speak_review/internal/worker"

	"github.com/google/uuid"
)

func main() {
	configPath := flag.String("config", "configs", "config.yaml を含むディレクトリ")
	speaker := flag.String("speaker", "", "同期するスピーカーID (省略時は最近活動した全スピーカー)")
	lookback := flag.Duration("lookback", 0, "活動を遡る期間 (省略時は sync.lookback)")
	flag.Parse()

	if err := config.LoadConfig(*configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg
	levelVar, _ := config.NewLevelVar(cfg.Log.Level)
	logger := config.NewLogger(os.Stderr, levelVar)
	slog.SetDefault(logger)

	db, err := repository.NewDB(cfg.Database.URL, repository.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	itemRepo := repository.NewGormReviewItemRepository()
	usageRepo := repository.NewGormUsageRepository()
	syncService := service.NewSyncService(db, itemRepo, usageRepo, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = middleware.WithLogger(ctx, logger)

	if *speaker != "" {
		speakerID, err := uuid.Parse(*speaker)
		if err != nil {
			logger.Error("Invalid speaker id", slog.String("speaker", *speaker), slog.Any("error", err))
			os.Exit(2)
		}
		result, err := syncService.SyncReviewItems(ctx, speakerID)
		if err != nil {
			logger.Error("Sync failed", slog.String("speaker_id", speakerID.String()), slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Sync completed",
			slog.String("speaker_id", speakerID.String()),
			slog.Int("grammar_items", result.GrammarItems),
			slog.Int("vocabulary_items", result.VocabularyItems),
		)
		return
	}

	window := cfg.Sync.Lookback
	if *lookback > 0 {
		window = *lookback
	}
	// interval は Start を呼ばないので使われない
	w := worker.NewSyncWorker(syncService, time.Minute, window, logger)
	summary, err := w.RunOnce(ctx)
	if err != nil {
		logger.Error("Sync run failed", slog.Any("error", err))
		os.Exit(1)
	}
	if summary.Failed > 0 {
		os.Exit(1)
	}
}
