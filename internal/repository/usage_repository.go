//go:generate mockery --name UsageRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_speak_review/internal/middleware"
	"go_speak_review/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsageRepository は文法エラー・語彙使用の集計を読み取る (書き込みは行わない)
type UsageRepository interface {
	FindRecurringGrammarPatterns(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, minOccurrences int) ([]model.UsageCount, error)
	FindRecurringWords(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, minOccurrences int) ([]model.UsageCount, error)
	FindLatestGrammarError(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, pattern string) (*model.GrammarError, error)
	FindLatestVocabularyUsage(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, word string) (*model.VocabularyUsage, error)
	// FindActiveSpeakers は since 以降に使用記録のあるスピーカーを返す
	FindActiveSpeakers(ctx context.Context, db *gorm.DB, since time.Time) ([]uuid.UUID, error)
}

type gormUsageRepository struct{}

func NewGormUsageRepository() UsageRepository {
	return &gormUsageRepository{}
}

func (r *gormUsageRepository) FindRecurringGrammarPatterns(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, minOccurrences int) ([]model.UsageCount, error) {
	var counts []model.UsageCount
	result := db.WithContext(ctx).
		Model(&model.GrammarError{}).
		Select("pattern AS item_key, COUNT(*) AS occurrences").
		Where("speaker_id = ?", speakerID).
		Group("pattern").
		Having("COUNT(*) >= ?", minOccurrences).
		Order("pattern ASC").
		Scan(&counts)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error aggregating grammar errors in DB",
			"error", result.Error,
			"speaker_id", speakerID.String(),
		)
		return nil, fmt.Errorf("gormUsageRepository.FindRecurringGrammarPatterns: %w", translateError(result.Error))
	}
	return counts, nil
}

func (r *gormUsageRepository) FindRecurringWords(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, minOccurrences int) ([]model.UsageCount, error) {
	var counts []model.UsageCount
	result := db.WithContext(ctx).
		Model(&model.VocabularyUsage{}).
		Select("word AS item_key, COUNT(*) AS occurrences").
		Where("speaker_id = ?", speakerID).
		Group("word").
		Having("COUNT(*) >= ?", minOccurrences).
		Order("word ASC").
		Scan(&counts)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error aggregating vocabulary usages in DB",
			"error", result.Error,
			"speaker_id", speakerID.String(),
		)
		return nil, fmt.Errorf("gormUsageRepository.FindRecurringWords: %w", translateError(result.Error))
	}
	return counts, nil
}

func (r *gormUsageRepository) FindLatestGrammarError(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, pattern string) (*model.GrammarError, error) {
	var ge model.GrammarError
	result := db.WithContext(ctx).
		Where("speaker_id = ? AND pattern = ?", speakerID, pattern).
		Order("created_at DESC").
		First(&ge)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding latest grammar error in DB",
			"error", result.Error,
			"speaker_id", speakerID.String(),
			"pattern", pattern,
		)
		return nil, fmt.Errorf("gormUsageRepository.FindLatestGrammarError: %w", translateError(result.Error))
	}
	return &ge, nil
}

func (r *gormUsageRepository) FindLatestVocabularyUsage(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, word string) (*model.VocabularyUsage, error) {
	var vu model.VocabularyUsage
	result := db.WithContext(ctx).
		Where("speaker_id = ? AND word = ?", speakerID, word).
		Order("created_at DESC").
		First(&vu)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding latest vocabulary usage in DB",
			"error", result.Error,
			"speaker_id", speakerID.String(),
			"word", word,
		)
		return nil, fmt.Errorf("gormUsageRepository.FindLatestVocabularyUsage: %w", translateError(result.Error))
	}
	return &vu, nil
}

func (r *gormUsageRepository) FindActiveSpeakers(ctx context.Context, db *gorm.DB, since time.Time) ([]uuid.UUID, error) {
	logger := middleware.GetLogger(ctx)

	var grammarSpeakers []uuid.UUID
	if err := db.WithContext(ctx).
		Model(&model.GrammarError{}).
		Where("created_at >= ?", since).
		Distinct().
		Pluck("speaker_id", &grammarSpeakers).Error; err != nil {
		logger.Error("Error listing speakers from grammar errors", "error", err)
		return nil, fmt.Errorf("gormUsageRepository.FindActiveSpeakers: %w", translateError(err))
	}

	var vocabularySpeakers []uuid.UUID
	if err := db.WithContext(ctx).
		Model(&model.VocabularyUsage{}).
		Where("created_at >= ?", since).
		Distinct().
		Pluck("speaker_id", &vocabularySpeakers).Error; err != nil {
		logger.Error("Error listing speakers from vocabulary usages", "error", err)
		return nil, fmt.Errorf("gormUsageRepository.FindActiveSpeakers: %w", translateError(err))
	}

	seen := make(map[uuid.UUID]struct{}, len(grammarSpeakers)+len(vocabularySpeakers))
	speakers := make([]uuid.UUID, 0, len(grammarSpeakers)+len(vocabularySpeakers))
	for _, id := range append(grammarSpeakers, vocabularySpeakers...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		speakers = append(speakers, id)
	}
	return speakers, nil
}
