// internal/model/review_item.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"go_speak_review/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ItemType は復習アイテムの種別
type ItemType string

const (
	ItemTypeGrammar    ItemType = "grammar"
	ItemTypeVocabulary ItemType = "vocabulary"
)

func (t ItemType) IsValid() bool {
	return t == ItemTypeGrammar || t == ItemTypeVocabulary
}

// DisplayData は表示用のデータ (スケジュールとは独立して同期のたびに更新される)
type DisplayData struct {
	Pattern     string `json:"pattern,omitempty"`
	Original    string `json:"original,omitempty"`
	Corrected   string `json:"corrected,omitempty"`
	Word        string `json:"word,omitempty"`
	CEFRLevel   string `json:"cefr_level,omitempty"`
	Occurrences int64  `json:"occurrences"`
}

// Value は driver.Valuer の実装 (JSON文字列として保存)
func (d DisplayData) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan は sql.Scanner の実装
func (d *DisplayData) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*d = DisplayData{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("DisplayData.Scan: unsupported type %T", value)
	}
	if len(raw) == 0 {
		*d = DisplayData{}
		return nil
	}
	return json.Unmarshal(raw, d)
}

// GormDBDataType はDBごとのカラム型を返します (postgresはJSONB)
func (DisplayData) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "JSONB"
	}
	return "TEXT"
}

// ReviewItem はスピーカーごとの復習アイテム (カードの永続化形式)
// (speaker_id, item_type, item_key) が一意
type ReviewItem struct {
	ItemID      uuid.UUID   `gorm:"type:uuid;primaryKey" json:"item_id"`
	SpeakerID   uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_review_item_key,priority:1;index:idx_review_items_due,priority:1" json:"speaker_id"`
	ItemType    ItemType    `gorm:"type:varchar(20);not null;uniqueIndex:uq_review_item_key,priority:2" json:"item_type"`
	ItemKey     string      `gorm:"type:varchar(255);not null;uniqueIndex:uq_review_item_key,priority:3" json:"item_key"`
	DisplayData DisplayData `gorm:"not null" json:"display_data"`

	// スケジュール状態 (RecordReview でのみ更新される)
	Stability     float64    `gorm:"not null;default:0" json:"stability"`
	Difficulty    float64    `gorm:"not null;default:0" json:"difficulty"`
	ElapsedDays   float64    `gorm:"not null;default:0" json:"elapsed_days"`
	ScheduledDays int        `gorm:"not null;default:0" json:"scheduled_days"`
	Reps          int        `gorm:"not null;default:0" json:"reps"`
	Lapses        int        `gorm:"not null;default:0" json:"lapses"`
	State         srs.State  `gorm:"not null;default:0" json:"state"`
	LastReview    *time.Time `json:"last_review"`
	NextReview    time.Time  `gorm:"not null;index:idx_review_items_due,priority:2" json:"next_review"`

	Version   int64     `gorm:"not null;default:1" json:"-"` // 楽観ロック用
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ReviewItem) TableName() string {
	return "review_items"
}

// NewReviewItem は未学習 (New) 状態の復習アイテムを生成します
func NewReviewItem(speakerID uuid.UUID, itemType ItemType, itemKey string, display DisplayData, now time.Time) *ReviewItem {
	return &ReviewItem{
		ItemID:      uuid.New(),
		SpeakerID:   speakerID,
		ItemType:    itemType,
		ItemKey:     itemKey,
		DisplayData: display,
		State:       srs.New,
		NextReview:  now,
		Version:     1,
	}
}

// Card は永続化された状態からスケジューラ用のカードを組み立てます
func (i *ReviewItem) Card() srs.Card {
	c := srs.Card{
		Stability:     i.Stability,
		Difficulty:    i.Difficulty,
		ElapsedDays:   i.ElapsedDays,
		ScheduledDays: i.ScheduledDays,
		Reps:          i.Reps,
		Lapses:        i.Lapses,
		State:         i.State,
	}
	if i.LastReview != nil {
		lr := *i.LastReview
		c.LastReview = &lr
	}
	return c
}

// ApplyOutcome はスケジュール結果をアイテムに反映します
func (i *ReviewItem) ApplyOutcome(out srs.Outcome) {
	i.Stability = out.Card.Stability
	i.Difficulty = out.Card.Difficulty
	i.ElapsedDays = out.Card.ElapsedDays
	i.ScheduledDays = out.Card.ScheduledDays
	i.Reps = out.Card.Reps
	i.Lapses = out.Card.Lapses
	i.State = out.Card.State
	i.LastReview = out.Card.LastReview
	i.NextReview = out.Due
}
