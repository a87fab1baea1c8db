//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_speak_review/internal/config"
	"go_speak_review/internal/middleware"
	"go_speak_review/internal/model"
	"go_speak_review/internal/repository"
	"go_speak_review/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	// GetDueItems は next_review <= now のアイテムを next_review の昇順で返す。limit <= 0 の場合は設定値
	GetDueItems(ctx context.Context, speakerID uuid.UUID, limit int) ([]*model.DueItemResponse, error)
	// RecordReview は評価をスケジューラに適用し、更新後のアイテムを返す
	RecordReview(ctx context.Context, speakerID, itemID uuid.UUID, rating srs.Rating) (*model.ReviewItem, error)
	GetReviewStats(ctx context.Context, speakerID uuid.UUID) (*model.ReviewStats, error)
}

type reviewService struct {
	db        *gorm.DB
	itemRepo  repository.ReviewItemRepository
	scheduler *srs.Scheduler
	cfg       *config.Config
	now       func() time.Time
}

// Option はサービスの生成オプション
type Option func(*reviewService)

// WithClock は現在時刻の取得方法を差し替えます (テスト用)
func WithClock(now func() time.Time) Option {
	return func(s *reviewService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewReviewService(db *gorm.DB, itemRepo repository.ReviewItemRepository, scheduler *srs.Scheduler, cfg *config.Config, opts ...Option) ReviewService {
	s := &reviewService{
		db:        db,
		itemRepo:  itemRepo,
		scheduler: scheduler,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *reviewService) GetDueItems(ctx context.Context, speakerID uuid.UUID, limit int) ([]*model.DueItemResponse, error) {
	logger := middleware.GetLogger(ctx).With("speaker_id", speakerID)

	if limit <= 0 {
		limit = s.cfg.App.ReviewLimit
	}
	if limit <= 0 {
		limit = config.DefaultAppReviewLimit
	}
	now := s.now()

	items, err := s.itemRepo.FindDue(ctx, s.db, speakerID, now, limit)
	if err != nil {
		logger.Error("Failed to find due items from repository", "error", err)
		return nil, model.NewAppError(model.CodeInternalServer, "復習アイテムの取得に失敗しました。", "", err)
	}

	responses := make([]*model.DueItemResponse, 0, len(items))
	for _, item := range items {
		state := item.State
		if !state.IsValid() {
			// スケジューラと同じく未学習として扱う
			logger.Warn("Review item has unknown state", "item_id", item.ItemID, "state", int(state))
			state = srs.New
		}
		responses = append(responses, &model.DueItemResponse{
			ItemID:      item.ItemID,
			ItemType:    item.ItemType,
			ItemKey:     item.ItemKey,
			DisplayData: item.DisplayData,
			State:       state,
			Reps:        item.Reps,
			Lapses:      item.Lapses,
			NextReview:  item.NextReview,
			Preview:     s.scheduler.PreviewSchedule(item.Card(), now),
		})
	}

	logger.Info("Successfully retrieved due items", "count", len(responses), "limit", limit)
	return responses, nil
}

func (s *reviewService) RecordReview(ctx context.Context, speakerID, itemID uuid.UUID, rating srs.Rating) (*model.ReviewItem, error) {
	logger := middleware.GetLogger(ctx).With("speaker_id", speakerID, "item_id", itemID)

	// DBアクセス前に検証する
	if !rating.IsValid() {
		logger.Warn("Rejected review with invalid rating", "rating", int(rating))
		return nil, model.NewAppError(model.CodeValidation, "評価は1から4の範囲で指定してください。", "rating", model.ErrInvalidInput)
	}

	now := s.now()
	var updated *model.ReviewItem

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.itemRepo.FindByIDForUpdate(ctx, tx, speakerID, itemID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError(model.CodeNotFound, "item not found", "item_id", model.ErrNotFound)
			}
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError(model.CodeConflict, "他の更新と競合しました。再試行してください。", "", err)
			}
			logger.Error("Error loading review item in transaction", "error", err)
			return model.NewAppError(model.CodeInternalServer, "復習アイテムの取得中にエラーが発生しました。", "", err)
		}

		out, err := s.scheduler.Schedule(item.Card(), rating, now)
		if err != nil {
			return model.NewAppError(model.CodeValidation, "評価は1から4の範囲で指定してください。", "rating", model.ErrInvalidInput)
		}

		expectedVersion := item.Version
		prevState := item.State
		item.ApplyOutcome(out)

		if err := s.itemRepo.UpdateSchedule(ctx, tx, item, expectedVersion); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Concurrent review detected", "error", err)
				return model.NewAppError(model.CodeConflict, "他の更新と競合しました。再試行してください。", "", err)
			}
			logger.Error("Error updating review item schedule", "error", err)
			return model.NewAppError(model.CodeInternalServer, "復習結果の保存に失敗しました。", "", err)
		}

		logger.Info("Review recorded",
			"rating", rating.String(),
			"from_state", prevState.String(),
			"to_state", item.State.String(),
			"interval", out.Interval.String(),
			"next_review", item.NextReview,
		)
		updated = item
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		// コミット時のエラーなど
		logger.Error("Review transaction failed", "error", err)
		return nil, model.NewAppError(model.CodeInternalServer, "復習結果の保存に失敗しました。", "", err)
	}
	return updated, nil
}

func (s *reviewService) GetReviewStats(ctx context.Context, speakerID uuid.UUID) (*model.ReviewStats, error) {
	logger := middleware.GetLogger(ctx).With("speaker_id", speakerID)
	now := s.now()

	dueCount, err := s.itemRepo.CountDue(ctx, s.db, speakerID, now)
	if err != nil {
		logger.Error("Failed to count due items", "error", err)
		return nil, model.NewAppError(model.CodeInternalServer, "統計の取得に失敗しました。", "", err)
	}
	total, err := s.itemRepo.CountBySpeaker(ctx, s.db, speakerID)
	if err != nil {
		logger.Error("Failed to count items", "error", err)
		return nil, model.NewAppError(model.CodeInternalServer, "統計の取得に失敗しました。", "", err)
	}

	stats := &model.ReviewStats{DueCount: dueCount, TotalItems: total}
	switch {
	case dueCount > 0:
		stats.NextReviewAt = &now
	case total > 0:
		next, err := s.itemRepo.FindEarliestNextReview(ctx, s.db, speakerID, now)
		if err != nil {
			logger.Error("Failed to find next review time", "error", err)
			return nil, model.NewAppError(model.CodeInternalServer, "統計の取得に失敗しました。", "", err)
		}
		stats.NextReviewAt = next
	}

	logger.Debug("Review stats computed", "due", dueCount, "total", total)
	return stats, nil
}
