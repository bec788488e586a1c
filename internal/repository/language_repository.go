//go:generate mockery --name LanguageRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// LanguageRepository は言語カタログとユーザーの学習言語の紐付けを扱います
type LanguageRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Language, error)
	FindByID(ctx context.Context, db *gorm.DB, languageID uint) (*model.Language, error)
	FindUserLanguages(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserLanguage, error)
	UserHasLanguage(ctx context.Context, db *gorm.DB, userID uuid.UUID, languageID uint) (bool, error)
	AddUserLanguage(ctx context.Context, tx *gorm.DB, userLang *model.UserLanguage) error
	RemoveUserLanguage(ctx context.Context, tx *gorm.DB, userID uuid.UUID, languageID uint) error
}

type gormLanguageRepository struct{}

func NewGormLanguageRepository() LanguageRepository {
	return &gormLanguageRepository{}
}

func (r *gormLanguageRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Language, error) {
	logger := middleware.GetLogger(ctx)
	var languages []*model.Language
	result := db.WithContext(ctx).Order("id ASC").Find(&languages)
	if result.Error != nil {
		logger.Error("Error finding languages in DB", "error", result.Error)
		return nil, fmt.Errorf("gormLanguageRepository.FindAll: %w", result.Error)
	}
	return languages, nil
}

func (r *gormLanguageRepository) FindByID(ctx context.Context, db *gorm.DB, languageID uint) (*model.Language, error) {
	logger := middleware.GetLogger(ctx)
	var language model.Language
	result := db.WithContext(ctx).Where("id = ?", languageID).First(&language)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding language by ID in DB",
			"error", result.Error,
			"language_id", languageID,
		)
		return nil, fmt.Errorf("gormLanguageRepository.FindByID: %w", result.Error)
	}
	return &language, nil
}

func (r *gormLanguageRepository) FindUserLanguages(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserLanguage, error) {
	logger := middleware.GetLogger(ctx)
	var userLangs []*model.UserLanguage
	result := db.WithContext(ctx).
		Preload("Language").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&userLangs)
	if result.Error != nil {
		logger.Error("Error finding user languages in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormLanguageRepository.FindUserLanguages: %w", result.Error)
	}
	return userLangs, nil
}

func (r *gormLanguageRepository) UserHasLanguage(ctx context.Context, db *gorm.DB, userID uuid.UUID, languageID uint) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.UserLanguage{}).
		Where("user_id = ? AND language_id = ?", userID, languageID).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking user language in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"language_id", languageID,
		)
		return false, fmt.Errorf("gormLanguageRepository.UserHasLanguage: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormLanguageRepository) AddUserLanguage(ctx context.Context, tx *gorm.DB, userLang *model.UserLanguage) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(userLang)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate user language",
				"user_id", userLang.UserID.String(),
				"language_id", userLang.LanguageID,
			)
			return model.ErrConflict
		}
		logger.Error("Error adding user language in DB",
			"error", result.Error,
			"user_id", userLang.UserID.String(),
			"language_id", userLang.LanguageID,
		)
		return fmt.Errorf("gormLanguageRepository.AddUserLanguage: %w", result.Error)
	}
	return nil
}

func (r *gormLanguageRepository) RemoveUserLanguage(ctx context.Context, tx *gorm.DB, userID uuid.UUID, languageID uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("user_id = ? AND language_id = ?", userID, languageID).
		Delete(&model.UserLanguage{})
	if result.Error != nil {
		logger.Error("Error removing user language in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"language_id", languageID,
		)
		return fmt.Errorf("gormLanguageRepository.RemoveUserLanguage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// デフォルトの言語カタログ。初回起動時のシードに使用します。
var defaultLanguages = []model.Language{
	{ID: 1, Code: "es", Name: "Spanish", FlagEmoji: "🇪🇸"},
	{ID: 2, Code: "fr", Name: "French", FlagEmoji: "🇫🇷"},
	{ID: 3, Code: "de", Name: "German", FlagEmoji: "🇩🇪"},
	{ID: 4, Code: "it", Name: "Italian", FlagEmoji: "🇮🇹"},
	{ID: 5, Code: "pt", Name: "Portuguese", FlagEmoji: "🇵🇹"},
	{ID: 6, Code: "ja", Name: "Japanese", FlagEmoji: "🇯🇵"},
	{ID: 7, Code: "ko", Name: "Korean", FlagEmoji: "🇰🇷"},
	{ID: 8, Code: "zh", Name: "Chinese", FlagEmoji: "🇨🇳"},
	{ID: 9, Code: "ru", Name: "Russian", FlagEmoji: "🇷🇺"},
	{ID: 10, Code: "en", Name: "English", FlagEmoji: "🇬🇧"},
}

// SeedLanguages は言語カタログが空の場合のみデフォルトを投入します
func SeedLanguages(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Language{}).Count(&count).Error; err != nil {
		return fmt.Errorf("repository.SeedLanguages: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := db.WithContext(ctx).Create(&defaultLanguages).Error; err != nil {
		return fmt.Errorf("repository.SeedLanguages: %w", err)
	}
	return nil
}
