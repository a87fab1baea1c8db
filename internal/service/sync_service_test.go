// internal/service/sync_service_test.go
package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go_speak_review/internal/model"
	"go_speak_review/internal/repository"
	"go_speak_review/internal/repository/mocks"
	"go_speak_review/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestSyncService(t *testing.T, db *gorm.DB, now time.Time) SyncService {
	t.Helper()
	return NewSyncService(db, repository.NewGormReviewItemRepository(), repository.NewGormUsageRepository(), testConfig(), WithSyncClock(fixedClock(now)))
}

func addGrammarError(t *testing.T, db *gorm.DB, speakerID uuid.UUID, pattern, original, corrected string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.GrammarError{
		ErrorID:       uuid.New(),
		SpeakerID:     speakerID,
		Pattern:       pattern,
		OriginalText:  original,
		CorrectedText: corrected,
		CreatedAt:     at,
	}).Error)
}

func addVocabularyUsage(t *testing.T, db *gorm.DB, speakerID uuid.UUID, word, level string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.VocabularyUsage{
		UsageID:   uuid.New(),
		SpeakerID: speakerID,
		Word:      word,
		CEFRLevel: level,
		CreatedAt: at,
	}).Error)
}

func findItem(t *testing.T, db *gorm.DB, speakerID uuid.UUID, itemType model.ItemType, key string) *model.ReviewItem {
	t.Helper()
	var item model.ReviewItem
	require.NoError(t, db.Where("speaker_id = ? AND item_type = ? AND item_key = ?", speakerID, itemType, key).First(&item).Error)
	return &item
}

func countItems(t *testing.T, db *gorm.DB, speakerID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.ReviewItem{}).Where("speaker_id = ?", speakerID).Count(&n).Error)
	return n
}

func Test_syncService_SyncReviewItems(t *testing.T) {
	ctx := context.Background()
	speakerID := uuid.New()

	seed := func(t *testing.T, db *gorm.DB) {
		// 2回以上の文法パターン
		addGrammarError(t, db, speakerID, "past-simple", "I go yesterday", "I went yesterday", t0.Add(-3*time.Hour))
		addGrammarError(t, db, speakerID, "past-simple", "She eat lunch", "She ate lunch", t0.Add(-1*time.Hour))
		// 1回のみ (対象外)
		addGrammarError(t, db, speakerID, "articles", "a apple", "an apple", t0.Add(-2*time.Hour))
		// 語彙
		addVocabularyUsage(t, db, speakerID, "ubiquitous", "C1", t0.Add(-5*time.Hour))
		addVocabularyUsage(t, db, speakerID, "ubiquitous", "C2", t0.Add(-1*time.Hour))
		addVocabularyUsage(t, db, speakerID, "apple", "A1", t0.Add(-1*time.Hour))
		// 他スピーカー
		other := uuid.New()
		addGrammarError(t, db, other, "past-simple", "x", "y", t0)
		addGrammarError(t, db, other, "past-simple", "x", "y", t0)
	}

	t.Run("正常系: 2回以上のパターンと単語から New カードを作成", func(t *testing.T) {
		db := setupTestDB(t)
		seed(t, db)

		result, err := newTestSyncService(t, db, t0).SyncReviewItems(ctx, speakerID)

		require.NoError(t, err)
		assert.Equal(t, 1, result.GrammarItems)
		assert.Equal(t, 1, result.VocabularyItems)
		assert.Equal(t, 2, result.Total())
		assert.Equal(t, int64(2), countItems(t, db, speakerID))

		grammar := findItem(t, db, speakerID, model.ItemTypeGrammar, "past-simple")
		assert.Equal(t, srs.New, grammar.State)
		assert.Zero(t, grammar.Stability)
		assert.Zero(t, grammar.Difficulty)
		assert.Zero(t, grammar.Reps)
		assert.Zero(t, grammar.Lapses)
		assert.Nil(t, grammar.LastReview)
		assert.True(t, t0.Equal(grammar.NextReview), "new items are due immediately")
		// 最新の例文
		assert.Equal(t, model.DisplayData{
			Pattern:     "past-simple",
			Original:    "She eat lunch",
			Corrected:   "She ate lunch",
			Occurrences: 2,
		}, grammar.DisplayData)

		vocab := findItem(t, db, speakerID, model.ItemTypeVocabulary, "ubiquitous")
		assert.Equal(t, "C2", vocab.DisplayData.CEFRLevel)
		assert.Equal(t, int64(2), vocab.DisplayData.Occurrences)
	})

	t.Run("正常系: 冪等であり重複を作らない", func(t *testing.T) {
		db := setupTestDB(t)
		seed(t, db)
		svc := newTestSyncService(t, db, t0)

		for i := 0; i < 3; i++ {
			_, err := svc.SyncReviewItems(ctx, speakerID)
			require.NoError(t, err)
		}
		assert.Equal(t, int64(2), countItems(t, db, speakerID))
	})

	t.Run("正常系: 再同期で表示データのみ更新しスケジュールは保持する", func(t *testing.T) {
		db := setupTestDB(t)
		seed(t, db)
		_, err := newTestSyncService(t, db, t0).SyncReviewItems(ctx, speakerID)
		require.NoError(t, err)

		// 復習を進める
		grammar := findItem(t, db, speakerID, model.ItemTypeGrammar, "past-simple")
		reviewed, err := newTestReviewService(t, db, testConfig(), t0).RecordReview(ctx, speakerID, grammar.ItemID, srs.Good)
		require.NoError(t, err)

		// 新しい誤りが記録された後に再同期
		addGrammarError(t, db, speakerID, "past-simple", "They buy it last week", "They bought it last week", t0.Add(time.Hour))
		later := t0.Add(2 * time.Hour)
		_, err = newTestSyncService(t, db, later).SyncReviewItems(ctx, speakerID)
		require.NoError(t, err)

		got := findItem(t, db, speakerID, model.ItemTypeGrammar, "past-simple")
		assert.Equal(t, grammar.ItemID, got.ItemID)
		assert.Equal(t, int64(3), got.DisplayData.Occurrences)
		assert.Equal(t, "They buy it last week", got.DisplayData.Original)
		// スケジュール状態は変わらない
		assert.Equal(t, reviewed.State, got.State)
		assert.InDelta(t, reviewed.Stability, got.Stability, 1e-9)
		assert.InDelta(t, reviewed.Difficulty, got.Difficulty, 1e-9)
		assert.Equal(t, reviewed.Reps, got.Reps)
		assert.Equal(t, reviewed.ScheduledDays, got.ScheduledDays)
		assert.True(t, reviewed.NextReview.Equal(got.NextReview))
		require.NotNil(t, got.LastReview)
		assert.True(t, t0.Equal(*got.LastReview))
		assert.Equal(t, reviewed.Version, got.Version)
	})

	t.Run("正常系: 最小出現回数の設定値を尊重する", func(t *testing.T) {
		db := setupTestDB(t)
		seed(t, db)
		cfg := testConfig()
		cfg.App.SyncMinOccurrences = 3
		svc := NewSyncService(db, repository.NewGormReviewItemRepository(), repository.NewGormUsageRepository(), cfg, WithSyncClock(fixedClock(t0)))

		result, err := svc.SyncReviewItems(ctx, speakerID)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Total())
	})

	t.Run("正常系: 最小出現回数は2未満にならない", func(t *testing.T) {
		db := setupTestDB(t)
		seed(t, db)
		cfg := testConfig()
		cfg.App.SyncMinOccurrences = 1
		svc := NewSyncService(db, repository.NewGormReviewItemRepository(), repository.NewGormUsageRepository(), cfg, WithSyncClock(fixedClock(t0)))

		result, err := svc.SyncReviewItems(ctx, speakerID)

		require.NoError(t, err)
		assert.Equal(t, 1, result.GrammarItems, "single occurrence patterns are never synced")
	})

	t.Run("並行: 同一スピーカーへの同時同期でも重複しない", func(t *testing.T) {
		db := setupTestDB(t)
		seed(t, db)
		svc := newTestSyncService(t, db, t0)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.SyncReviewItems(ctx, speakerID)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		assert.Equal(t, int64(2), countItems(t, db, speakerID))
	})

	t.Run("異常系: 集計エラーでは何も書き込まない", func(t *testing.T) {
		db := setupTestDB(t)
		usageRepo := mocks.NewUsageRepository(t)
		itemRepo := mocks.NewReviewItemRepository(t)
		usageRepo.On("FindRecurringGrammarPatterns", mock.Anything, db, speakerID, 2).
			Return([]model.UsageCount{{Key: "past-simple", Occurrences: 2}}, nil).Once()
		usageRepo.On("FindRecurringWords", mock.Anything, db, speakerID, 2).
			Return(nil, errors.New("aggregation failed")).Once()

		svc := NewSyncService(db, itemRepo, usageRepo, testConfig(), WithSyncClock(fixedClock(t0)))
		result, err := svc.SyncReviewItems(ctx, speakerID)

		assert.Nil(t, result)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, model.CodeInternalServer, appErr.Detail.Code)
		itemRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: upsert失敗で残りを中断する", func(t *testing.T) {
		db := setupTestDB(t)
		usageRepo := mocks.NewUsageRepository(t)
		itemRepo := mocks.NewReviewItemRepository(t)
		usageRepo.On("FindRecurringGrammarPatterns", mock.Anything, db, speakerID, 2).
			Return([]model.UsageCount{{Key: "a", Occurrences: 2}, {Key: "b", Occurrences: 4}}, nil).Once()
		usageRepo.On("FindRecurringWords", mock.Anything, db, speakerID, 2).
			Return([]model.UsageCount{}, nil).Once()
		usageRepo.On("FindLatestGrammarError", mock.Anything, db, speakerID, mock.Anything).
			Return(nil, model.ErrNotFound).Twice()
		itemRepo.On("Upsert", mock.Anything, db, mock.MatchedBy(func(it *model.ReviewItem) bool { return it.ItemKey == "a" })).
			Return(errors.New("connection reset")).Once()

		svc := NewSyncService(db, itemRepo, usageRepo, testConfig(), WithSyncClock(fixedClock(t0)))
		_, err := svc.SyncReviewItems(ctx, speakerID)

		require.Error(t, err)
		itemRepo.AssertNumberOfCalls(t, "Upsert", 1)
	})
}

func Test_syncService_ActiveSpeakers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	grammarOnly := uuid.New()
	vocabOnly := uuid.New()
	both := uuid.New()
	stale := uuid.New()
	addGrammarError(t, db, grammarOnly, "p", "o", "c", t0.Add(-time.Hour))
	addVocabularyUsage(t, db, vocabOnly, "w", "B1", t0.Add(-2*time.Hour))
	addGrammarError(t, db, both, "p", "o", "c", t0.Add(-time.Hour))
	addVocabularyUsage(t, db, both, "w", "B1", t0.Add(-time.Hour))
	addGrammarError(t, db, stale, "p", "o", "c", t0.Add(-72*time.Hour))

	speakers, err := newTestSyncService(t, db, t0).ActiveSpeakers(ctx, t0.Add(-24*time.Hour))

	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{grammarOnly, vocabOnly, both}, speakers)
}
