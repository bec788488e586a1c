// internal/model/sentence.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Sentence は練習用の例文を表します。
// 習熟度は持たず、出題回数 (UseCount) のみを追跡します。
type Sentence struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	LanguageID      uint            `gorm:"not null;index" json:"language_id"`
	Sentence        string          `gorm:"not null" json:"sentence"`
	Translation     string          `json:"translation"`
	DifficultyLevel DifficultyLevel `gorm:"type:varchar(20);not null;default:beginner" json:"difficulty_level"`
	Category        string          `json:"category"`
	CreatedAt       time.Time       `json:"created_at"`
	LastUsed        *time.Time      `json:"last_used"`
	UseCount        int             `gorm:"not null;default:0" json:"use_count"`
	Active          bool            `gorm:"not null;default:true" json:"active"`
}

func (Sentence) TableName() string {
	return "sentences"
}

// 例文作成リクエストDTO
type PostSentenceRequest struct {
	LanguageID      uint   `json:"language_id" validate:"required"`
	Sentence        string `json:"sentence" validate:"required,min=1"`
	Translation     string `json:"translation,omitempty"`
	DifficultyLevel string `json:"difficulty_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Category        string `json:"category,omitempty"`
}

// 例文練習リクエストDTO (生成フォールバックは handlers 層で行う)
type PracticeSentenceRequest struct {
	LanguageID      uint   `json:"language_id" validate:"required"`
	DifficultyLevel string `json:"difficulty_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}
