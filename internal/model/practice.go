// internal/model/practice.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PracticeRecord は1回の解答の追記専用ログです。
// VocabularyID / SentenceID はどちらか一方のみを設定します (サービス層で検証)。
type PracticeRecord struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	SessionID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"session_id"`
	VocabularyID   *uuid.UUID `gorm:"type:uuid" json:"vocabulary_id,omitempty"`
	SentenceID     *uuid.UUID `gorm:"type:uuid" json:"sentence_id,omitempty"`
	UserAnswer     string     `json:"user_answer"`
	CorrectAnswer  string     `json:"correct_answer"`
	IsCorrect      *bool      `json:"is_correct"` // 未採点の場合は nil
	ResponseTimeMs int        `gorm:"not null;default:0" json:"response_time_ms"`
	PracticedAt    time.Time  `gorm:"not null" json:"practiced_at"`
}

func (PracticeRecord) TableName() string {
	return "practice_records"
}

// 解答記録リクエストDTO
type RecordAttemptRequest struct {
	SessionID      uuid.UUID  `json:"session_id" validate:"required"`
	VocabularyID   *uuid.UUID `json:"vocabulary_id,omitempty"`
	SentenceID     *uuid.UUID `json:"sentence_id,omitempty"`
	UserAnswer     string     `json:"user_answer"`
	CorrectAnswer  string     `json:"correct_answer"`
	IsCorrect      *bool      `json:"is_correct" validate:"required"`
	ResponseTimeMs int        `json:"response_time_ms" validate:"min=0"`
}

// 解答記録レスポンスDTO
type RecordAttemptResponse struct {
	RecordID uuid.UUID `json:"record_id"`
}

// 翻訳採点リクエストDTO
type ScoreTranslationRequest struct {
	UserTranslation    string `json:"user_translation" validate:"required"`
	CorrectTranslation string `json:"correct_translation" validate:"required"`
}

// 翻訳採点レスポンスDTO。
// IsCorrect は固定閾値による二値判定、Similarity は部分点表示用の生スコアです。
type ScoreTranslationResponse struct {
	IsCorrect  bool    `json:"is_correct"`
	Similarity float64 `json:"similarity"`
}

// VocabularyStats は単語の習熟度に関する統計です
type VocabularyStats struct {
	TotalWords    int     `json:"total_words"`
	MasteredWords int     `json:"mastered_words"`
	AvgMastery    float64 `json:"avg_mastery"`
}

// SessionStats は終了済みセッションに関する統計です。
// AvgAccuracy はセッションごとの正答率の平均です (合計同士の比ではない)。
type SessionStats struct {
	TotalSessions  int     `json:"total_sessions"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
	AvgAccuracy    float64 `json:"avg_accuracy"`
}

// StatsResponse は統計APIのレスポンスDTO
type StatsResponse struct {
	Vocabulary VocabularyStats `json:"vocabulary"`
	Sessions   SessionStats    `json:"sessions"`
}
