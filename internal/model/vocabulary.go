// internal/model/vocabulary.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DifficultyLevel は単語・例文の難易度を表します
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

// Vocabulary は学習対象の単語とその習熟度カウンタを表します。
// 物理削除はせず、Active = false で選択対象から外します (論理削除)。
type Vocabulary struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	LanguageID      uint            `gorm:"not null;index" json:"language_id"`
	Word            string          `gorm:"not null" json:"word"`
	Translation     string          `json:"translation"`
	DifficultyLevel DifficultyLevel `gorm:"type:varchar(20);not null;default:beginner" json:"difficulty_level"`
	Category        string          `json:"category"`
	PartOfSpeech    string          `json:"part_of_speech"`
	ExampleSentence string          `json:"example_sentence"`
	CreatedAt       time.Time       `json:"created_at"`
	LastReviewed    *time.Time      `json:"last_reviewed"`
	ReviewCount     int             `gorm:"not null;default:0" json:"review_count"`
	MasteryLevel    int             `gorm:"not null;default:0" json:"mastery_level"`
	Active          bool            `gorm:"not null;default:true" json:"active"`
}

func (Vocabulary) TableName() string {
	return "vocabulary"
}

// 単語作成リクエストDTO
type PostVocabularyRequest struct {
	LanguageID      uint   `json:"language_id" validate:"required"`
	Word            string `json:"word" validate:"required,min=1"`
	Translation     string `json:"translation,omitempty"`
	DifficultyLevel string `json:"difficulty_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Category        string `json:"category,omitempty"`
	PartOfSpeech    string `json:"part_of_speech,omitempty"`
	ExampleSentence string `json:"example_sentence,omitempty"`
}

// 単語一括登録リクエストDTO。
// Words は改行区切りのテキストで、"word - translation" 形式の行も受け付けます。
type BulkVocabularyRequest struct {
	LanguageID      uint   `json:"language_id" validate:"required"`
	Words           string `json:"words" validate:"required"`
	DifficultyLevel string `json:"difficulty_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// 単語練習候補取得のフィルタ
type VocabularyFilter struct {
	LanguageID uint
	Difficulty *DifficultyLevel
	Limit      int
}
