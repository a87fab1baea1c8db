//go:generate mockery --name SyncService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_speak_review/internal/config"
	"go_speak_review/internal/middleware"
	"go_speak_review/internal/model"
	"go_speak_review/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SyncService interface {
	// SyncReviewItems は繰り返し現れる文法パターン・単語を復習アイテムとして作成・更新する。
	// 何度呼んでもよく、既存アイテムのスケジュール状態は変更しない
	SyncReviewItems(ctx context.Context, speakerID uuid.UUID) (*model.SyncResult, error)
	// ActiveSpeakers は since 以降に使用記録のあるスピーカーを返す
	ActiveSpeakers(ctx context.Context, since time.Time) ([]uuid.UUID, error)
}

type syncService struct {
	db        *gorm.DB
	itemRepo  repository.ReviewItemRepository
	usageRepo repository.UsageRepository
	cfg       *config.Config
	now       func() time.Time
}

// SyncOption は syncService の生成オプション
type SyncOption func(*syncService)

func WithSyncClock(now func() time.Time) SyncOption {
	return func(s *syncService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSyncService(db *gorm.DB, itemRepo repository.ReviewItemRepository, usageRepo repository.UsageRepository, cfg *config.Config, opts ...SyncOption) SyncService {
	s := &syncService{
		db:        db,
		itemRepo:  itemRepo,
		usageRepo: usageRepo,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *syncService) minOccurrences() int {
	if s.cfg.App.SyncMinOccurrences < config.MinSyncOccurrences {
		return config.MinSyncOccurrences
	}
	return s.cfg.App.SyncMinOccurrences
}

func (s *syncService) SyncReviewItems(ctx context.Context, speakerID uuid.UUID) (*model.SyncResult, error) {
	logger := middleware.GetLogger(ctx).With("speaker_id", speakerID)
	minOcc := s.minOccurrences()

	// 集計は書き込み前にまとめて行う (失敗時は何も書かない)
	patterns, err := s.usageRepo.FindRecurringGrammarPatterns(ctx, s.db, speakerID, minOcc)
	if err != nil {
		logger.Error("Failed to aggregate grammar patterns", "error", err)
		return nil, model.NewAppError(model.CodeInternalServer, "文法エラーの集計に失敗しました。", "", err)
	}
	words, err := s.usageRepo.FindRecurringWords(ctx, s.db, speakerID, minOcc)
	if err != nil {
		logger.Error("Failed to aggregate vocabulary usages", "error", err)
		return nil, model.NewAppError(model.CodeInternalServer, "語彙使用の集計に失敗しました。", "", err)
	}

	grammarItems := make([]*model.ReviewItem, 0, len(patterns))
	for _, p := range patterns {
		display := model.DisplayData{Pattern: p.Key, Occurrences: p.Occurrences}
		example, err := s.usageRepo.FindLatestGrammarError(ctx, s.db, speakerID, p.Key)
		switch {
		case err == nil:
			display.Original = example.OriginalText
			display.Corrected = example.CorrectedText
		case errors.Is(err, model.ErrNotFound):
			// 集計と取得の間に削除された
		default:
			logger.Error("Failed to fetch grammar example", "pattern", p.Key, "error", err)
			return nil, model.NewAppError(model.CodeInternalServer, "文法エラーの例文取得に失敗しました。", "", err)
		}
		grammarItems = append(grammarItems, model.NewReviewItem(speakerID, model.ItemTypeGrammar, p.Key, display, s.now()))
	}

	vocabularyItems := make([]*model.ReviewItem, 0, len(words))
	for _, w := range words {
		display := model.DisplayData{Word: w.Key, Occurrences: w.Occurrences}
		usage, err := s.usageRepo.FindLatestVocabularyUsage(ctx, s.db, speakerID, w.Key)
		switch {
		case err == nil:
			display.CEFRLevel = usage.CEFRLevel
		case errors.Is(err, model.ErrNotFound):
		default:
			logger.Error("Failed to fetch vocabulary usage", "word", w.Key, "error", err)
			return nil, model.NewAppError(model.CodeInternalServer, "語彙使用の取得に失敗しました。", "", err)
		}
		vocabularyItems = append(vocabularyItems, model.NewReviewItem(speakerID, model.ItemTypeVocabulary, w.Key, display, s.now()))
	}

	// キーごとに独立した upsert。途中で失敗しても確定済みの分はそのままで、再実行すればよい
	result := &model.SyncResult{SpeakerID: speakerID}
	for _, item := range grammarItems {
		if err := s.itemRepo.Upsert(ctx, s.db, item); err != nil {
			logger.Error("Failed to upsert grammar review item", "item_key", item.ItemKey, "error", err)
			return nil, model.NewAppError(model.CodeInternalServer, "復習アイテムの同期に失敗しました。", "", err)
		}
		result.GrammarItems++
	}
	for _, item := range vocabularyItems {
		if err := s.itemRepo.Upsert(ctx, s.db, item); err != nil {
			logger.Error("Failed to upsert vocabulary review item", "item_key", item.ItemKey, "error", err)
			return nil, model.NewAppError(model.CodeInternalServer, "復習アイテムの同期に失敗しました。", "", err)
		}
		result.VocabularyItems++
	}

	logger.Info("Review items synchronized",
		"grammar_items", result.GrammarItems,
		"vocabulary_items", result.VocabularyItems,
		"min_occurrences", minOcc,
	)
	return result, nil
}

func (s *syncService) ActiveSpeakers(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	speakers, err := s.usageRepo.FindActiveSpeakers(ctx, s.db, since)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list active speakers", "error", err)
		return nil, model.NewAppError(model.CodeInternalServer, "スピーカー一覧の取得に失敗しました。", "", err)
	}
	return speakers, nil
}
