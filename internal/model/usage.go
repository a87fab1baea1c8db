// internal/model/usage.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GrammarError は評価パイプラインが記録した文法エラー (このサービスからは読み取り専用)
type GrammarError struct {
	ErrorID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SpeakerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_grammar_errors_speaker_pattern,priority:1"`
	Pattern       string    `gorm:"type:varchar(255);not null;index:idx_grammar_errors_speaker_pattern,priority:2"`
	OriginalText  string    `gorm:"not null"`
	CorrectedText string    `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

func (GrammarError) TableName() string {
	return "grammar_errors"
}

// VocabularyUsage はスピーカーが使用した単語の記録 (読み取り専用)
type VocabularyUsage struct {
	UsageID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	SpeakerID uuid.UUID `gorm:"type:uuid;not null;index:idx_vocabulary_usages_speaker_word,priority:1"`
	Word      string    `gorm:"type:varchar(255);not null;index:idx_vocabulary_usages_speaker_word,priority:2"`
	CEFRLevel string    `gorm:"column:cefr_level;type:varchar(2)"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (VocabularyUsage) TableName() string {
	return "vocabulary_usages"
}

// UsageCount は集計結果 (キーと出現回数)
type UsageCount struct {
	Key         string `gorm:"column:item_key"`
	Occurrences int64  `gorm:"column:occurrences"`
}
