// internal/model/review.go
package model

import (
	"time"

	"go_speak_review/internal/srs"

	"github.com/google/uuid"
)

// DueItemResponse は復習対象アイテムのレスポンスDTO (評価ごとの次回間隔ラベル付き)
type DueItemResponse struct {
	ItemID      uuid.UUID             `json:"item_id"`
	ItemType    ItemType              `json:"item_type"`
	ItemKey     string                `json:"item_key"`
	DisplayData DisplayData           `json:"display_data"`
	State       srs.State             `json:"state"`
	Reps        int                   `json:"reps"`
	Lapses      int                   `json:"lapses"`
	NextReview  time.Time             `json:"next_review"`
	Preview     map[srs.Rating]string `json:"preview"`
}

// SubmitRatingRequest は評価送信リクエストのDTO
// rating は 1〜4 の数値か "Again"/"Hard"/"Good"/"Easy" の名前で指定します
type SubmitRatingRequest struct {
	Rating *srs.Rating `json:"rating" validate:"required,min=1,max=4"`
}

// ReviewStats は復習統計
type ReviewStats struct {
	DueCount     int64      `json:"due_count"`
	TotalItems   int64      `json:"total_items"`
	NextReviewAt *time.Time `json:"next_review_at"`
}

// SyncResult は同期処理の結果
type SyncResult struct {
	SpeakerID       uuid.UUID `json:"speaker_id"`
	GrammarItems    int       `json:"grammar_items"`
	VocabularyItems int       `json:"vocabulary_items"`
}

// Total は upsert したアイテムの合計数
func (r *SyncResult) Total() int {
	return r.GrammarItems + r.VocabularyItems
}
