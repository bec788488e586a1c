// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionType は練習セッションの種別を表します
type SessionType string

const (
	SessionTypeVocabulary SessionType = "vocabulary"
	SessionTypeSentence   SessionType = "sentence"
)

// LearningSession は1回の練習セッションを表します。
// EndedAt が nil の間は Open 状態で、集計カウンタは終了時に一度だけ確定します。
type LearningSession struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	LanguageID         uint        `gorm:"not null;index" json:"language_id"`
	SessionType        SessionType `gorm:"type:varchar(20);not null" json:"session_type"`
	StartedAt          time.Time   `gorm:"not null" json:"started_at"`
	EndedAt            *time.Time  `json:"ended_at"`
	WordsPracticed     int         `gorm:"not null;default:0" json:"words_practiced"`
	SentencesPracticed int         `gorm:"not null;default:0" json:"sentences_practiced"`
	CorrectAnswers     int         `gorm:"not null;default:0" json:"correct_answers"`
	TotalQuestions     int         `gorm:"not null;default:0" json:"total_questions"`
}

func (LearningSession) TableName() string {
	return "learning_sessions"
}

// セッション開始リクエストDTO
type StartSessionRequest struct {
	LanguageID  uint   `json:"language_id" validate:"required"`
	SessionType string `json:"session_type" validate:"required,oneof=vocabulary sentence"`
}

// セッション開始レスポンスDTO
type StartSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

// セッション終了リクエストDTO。
// カウンタはクライアント (UI層) が集計した最終値をそのまま受け取ります。
type EndSessionRequest struct {
	WordsPracticed     int `json:"words_practiced" validate:"min=0"`
	SentencesPracticed int `json:"sentences_practiced" validate:"min=0"`
	CorrectAnswers     int `json:"correct_answers" validate:"min=0"`
	TotalQuestions     int `json:"total_questions" validate:"min=0"`
}
