// internal/worker/sync_worker.go
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go_speak_review/internal/middleware"
	"go_speak_review/internal/service"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
)

// SyncWorker は最近発話のあったスピーカーの復習アイテムを定期的に同期します
type SyncWorker struct {
	scheduler *gocron.Scheduler
	service   service.SyncService
	interval  time.Duration
	lookback  time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// RunSummary は1回の実行結果
type RunSummary struct {
	Speakers int
	Synced   int
	Failed   int
}

func NewSyncWorker(s service.SyncService, interval, lookback time.Duration, logger *slog.Logger) *SyncWorker {
	return &SyncWorker{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   s,
		interval:  interval,
		lookback:  lookback,
		logger:    logger.With("component", "sync_worker"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Start はジョブを登録して非同期に開始します。前回の実行が終わっていない場合は次回をスキップする
func (w *SyncWorker) Start(ctx context.Context) error {
	if w.interval <= 0 {
		return fmt.Errorf("sync worker interval must be positive, got %s", w.interval)
	}
	_, err := w.scheduler.Every(w.interval).SingletonMode().Do(func() {
		if _, err := w.RunOnce(ctx); err != nil {
			w.logger.Error("Scheduled sync run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sync job: %w", err)
	}
	w.scheduler.StartAsync()
	w.logger.Info("Sync worker started", "interval", w.interval.String(), "lookback", w.lookback.String())
	return nil
}

func (w *SyncWorker) Stop() {
	w.scheduler.Stop()
	w.logger.Info("Sync worker stopped")
}

// RunOnce は lookback 以内に活動したスピーカーを全て同期します
// 個別の失敗はログに記録して続行する
func (w *SyncWorker) RunOnce(ctx context.Context) (RunSummary, error) {
	var summary RunSummary
	since := w.now().Add(-w.lookback)

	speakers, err := w.service.ActiveSpeakers(ctx, since)
	if err != nil {
		return summary, fmt.Errorf("SyncWorker.RunOnce: %w", err)
	}
	summary.Speakers = len(speakers)

	for _, speakerID := range speakers {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if w.syncSpeaker(ctx, speakerID) {
			summary.Synced++
		} else {
			summary.Failed++
		}
	}

	w.logger.Info("Sync run finished", "speakers", summary.Speakers, "synced", summary.Synced, "failed", summary.Failed)
	return summary, nil
}

func (w *SyncWorker) syncSpeaker(ctx context.Context, speakerID uuid.UUID) bool {
	logger := w.logger.With("speaker_id", speakerID.String())
	ctx = middleware.WithLogger(ctx, logger)

	result, err := w.service.SyncReviewItems(ctx, speakerID)
	if err != nil {
		logger.Error("Failed to sync review items", "error", err)
		return false
	}
	logger.Debug("Speaker synced", "items", result.Total())
	return true
}
