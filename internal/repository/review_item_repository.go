//go:generate mockery --name ReviewItemRepository --output ./mocks --outpkg mocks --case=underscore
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
	"gorm.io/gorm/clause"
)

// 同期時の競合で上書きするカラム。スケジュール状態はここに含めない
var reviewItemRefreshColumns = []string{"display_data", "updated_at"}

type ReviewItemRepository interface {
	// Upsert は (speaker_id, item_type, item_key) で衝突した場合 display_data のみ更新する
	Upsert(ctx context.Context, db *gorm.DB, item *model.ReviewItem) error
	FindByID(ctx context.Context, db *gorm.DB, speakerID, itemID uuid.UUID) (*model.ReviewItem, error)
	// FindByIDForUpdate は行ロック (SELECT ... FOR UPDATE) 付きで取得する。トランザクション内で使用
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, speakerID, itemID uuid.UUID) (*model.ReviewItem, error)
	FindByKey(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, itemType model.ItemType, itemKey string) (*model.ReviewItem, error)
	// UpdateSchedule は version が expectedVersion と一致する場合のみ更新する
	UpdateSchedule(ctx context.Context, tx *gorm.DB, item *model.ReviewItem, expectedVersion int64) error
	FindDue(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, now time.Time, limit int) ([]*model.ReviewItem, error)
	CountDue(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, now time.Time) (int64, error)
	CountBySpeaker(ctx context.Context, db *gorm.DB, speakerID uuid.UUID) (int64, error)
	FindEarliestNextReview(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, after time.Time) (*time.Time, error)
}

type gormReviewItemRepository struct{}

func NewGormReviewItemRepository() ReviewItemRepository {
	return &gormReviewItemRepository{}
}

func (r *gormReviewItemRepository) Upsert(ctx context.Context, db *gorm.DB, item *model.ReviewItem) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "speaker_id"},
			{Name: "item_type"},
			{Name: "item_key"},
		},
		DoUpdates: clause.AssignmentColumns(reviewItemRefreshColumns),
	}).Create(item)
	if result.Error != nil {
		logger.Error("Error upserting review item in DB",
			"error", result.Error,
			"speaker_id", item.SpeakerID.String(),
			"item_type", item.ItemType,
			"item_key", item.ItemKey,
		)
		return fmt.Errorf("gormReviewItemRepository.Upsert: %w", translateError(result.Error))
	}
	return nil
}

func (r *gormReviewItemRepository) FindByID(ctx context.Context, db *gorm.DB, speakerID, itemID uuid.UUID) (*model.ReviewItem, error) {
	return r.findByID(ctx, db.WithContext(ctx), speakerID, itemID)
}

func (r *gormReviewItemRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, speakerID, itemID uuid.UUID) (*model.ReviewItem, error) {
	// SQLiteのダイアレクトは FOR UPDATE を出力しない (version による検査で競合を検出する)
	return r.findByID(ctx, tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), speakerID, itemID)
}

func (r *gormReviewItemRepository) findByID(ctx context.Context, q *gorm.DB, speakerID, itemID uuid.UUID) (*model.ReviewItem, error) {
	logger := middleware.GetLogger(ctx)
	var item model.ReviewItem
	result := q.Where("speaker_id = ? AND item_id = ?", speakerID, itemID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding review item by ID in DB",
			"error", result.Error,
			"speaker_id", speakerID.String(),
			"item_id", itemID.String(),
		)
		return nil, fmt.Errorf("gormReviewItemRepository.FindByID: %w", translateError(result.Error))
	}
	return &item, nil
}

func (r *gormReviewItemRepository) FindByKey(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, itemType model.ItemType, itemKey string) (*model.ReviewItem, error) {
	logger := middleware.GetLogger(ctx)
	var item model.ReviewItem
	result := db.WithContext(ctx).
		Where("speaker_id = ? AND item_type = ? AND item_key = ?", speakerID, itemType, itemKey).
		First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding review item by key in DB",
			"error", result.Error,
			"speaker_id", speakerID.String(),
			"item_type", itemType,
			"item_key", itemKey,
		)
		return nil, fmt.Errorf("gormReviewItemRepository.FindByKey: %w", translateError(result.Error))
	}
	return &item, nil
}

func (r *gormReviewItemRepository) UpdateSchedule(ctx context.Context, tx *gorm.DB, item *model.ReviewItem, expectedVersion int64) error {
	logger := middleware.GetLogger(ctx)
	updatedAt := time.Now().UTC()
	result := tx.WithContext(ctx).
		Model(&model.ReviewItem{}).
		Where("item_id = ? AND speaker_id = ? AND version = ?", item.ItemID, item.SpeakerID, expectedVersion).
		Updates(map[string]interface{}{
			"stability":      item.Stability,
			"difficulty":     item.Difficulty,
			"elapsed_days":   item.ElapsedDays,
			"scheduled_days": item.ScheduledDays,
			"reps":           item.Reps,
			"lapses":         item.Lapses,
			"state":          item.State,
			"last_review":    item.LastReview,
			"next_review":    item.NextReview,
			"version":        gorm.Expr("version + 1"),
			"updated_at":     updatedAt,
		})
	if result.Error != nil {
		logger.Error("Error updating review item schedule in DB",
			"error", result.Error,
			"item_id", item.ItemID.String(),
		)
		return fmt.Errorf("gormReviewItemRepository.UpdateSchedule: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		// 読み取り後に他の更新が入った
		logger.Warn("Review item version mismatch",
			"item_id", item.ItemID.String(),
			"expected_version", expectedVersion,
		)
		return fmt.Errorf("gormReviewItemRepository.UpdateSchedule: %w", model.ErrConflict)
	}
	item.Version = expectedVersion + 1
	item.UpdatedAt = updatedAt
	return nil
}

func (r *gormReviewItemRepository) FindDue(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, now time.Time, limit int) ([]*model.ReviewItem, error) {
	logger := middleware.GetLogger(ctx)
	var items []*model.ReviewItem
	result := db.WithContext(ctx).
		Where("speaker_id = ? AND next_review <= ?", speakerID, now).
		Order("next_review ASC, item_id ASC").
		Limit(limit).
		Find(&items)
	if result.Error != nil {
		logger.Error("Error finding due review items in DB",
			"error", result.Error,
			"speaker_id", speakerID.String(),
		)
		return nil, fmt.Errorf("gormReviewItemRepository.FindDue: %w", translateError(result.Error))
	}
	return items, nil
}

func (r *gormReviewItemRepository) CountDue(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.ReviewItem{}).
		Where("speaker_id = ? AND next_review <= ?", speakerID, now).
		Count(&count)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error counting due review items in DB", "error", result.Error, "speaker_id", speakerID.String())
		return 0, fmt.Errorf("gormReviewItemRepository.CountDue: %w", translateError(result.Error))
	}
	return count, nil
}

func (r *gormReviewItemRepository) CountBySpeaker(ctx context.Context, db *gorm.DB, speakerID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.ReviewItem{}).
		Where("speaker_id = ?", speakerID).
		Count(&count)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error counting review items in DB", "error", result.Error, "speaker_id", speakerID.String())
		return 0, fmt.Errorf("gormReviewItemRepository.CountBySpeaker: %w", translateError(result.Error))
	}
	return count, nil
}

// FindEarliestNextReview は after より後で最も早い next_review を返す。該当なしの場合は nil
func (r *gormReviewItemRepository) FindEarliestNextReview(ctx context.Context, db *gorm.DB, speakerID uuid.UUID, after time.Time) (*time.Time, error) {
	// MIN() はSQLiteで文字列として返るため、ORDER BY + LIMIT 1 で取得する
	var item model.ReviewItem
	result := db.WithContext(ctx).
		Select("next_review").
		Where("speaker_id = ? AND next_review > ?", speakerID, after).
		Order("next_review ASC").
		Limit(1).
		Find(&item)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding earliest next review in DB", "error", result.Error, "speaker_id", speakerID.String())
		return nil, fmt.Errorf("gormReviewItemRepository.FindEarliestNextReview: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	next := item.NextReview
	return &next, nil
}
