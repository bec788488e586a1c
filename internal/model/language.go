// internal/model/language.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Language は学習対象言語のカタログエントリを表します。
// レコードは起動時にシードされる参照データで、ユーザーが編集することはありません。
type Language struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Code      string `gorm:"type:varchar(10);not null;uniqueIndex" json:"code"` // ISOコード (例: "es")
	Name      string `gorm:"not null" json:"name"`
	FlagEmoji string `json:"flag_emoji"`
}

func (Language) TableName() string {
	return "languages"
}

// UserLanguage はユーザーが学習中の言語の紐付けを表します
type UserLanguage struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index:idx_user_language,unique" json:"-"`
	LanguageID       uint      `gorm:"not null;index:idx_user_language,unique" json:"language_id"`
	ProficiencyLevel string    `gorm:"type:varchar(20);not null;default:beginner" json:"proficiency_level"`
	CreatedAt        time.Time `json:"created_at"`

	// 関連 (Preload用)
	Language *Language `gorm:"foreignKey:LanguageID;references:ID" json:"-"`
}

func (UserLanguage) TableName() string {
	return "user_languages"
}

// 学習言語追加リクエストDTO
type AddLanguageRequest struct {
	LanguageID       uint   `json:"language_id" validate:"required"`
	ProficiencyLevel string `json:"proficiency_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}
