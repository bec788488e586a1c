//go:generate mockery --name SentenceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SentenceRepository インターフェース
type SentenceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, sentence *model.Sentence) error
	CreateBatch(ctx context.Context, tx *gorm.DB, sentences []*model.Sentence) error
	FindByID(ctx context.Context, db *gorm.DB, userID, sentenceID uuid.UUID) (*model.Sentence, error)
	FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, languageID uint, difficulty *model.DifficultyLevel, limit int) ([]*model.Sentence, error)
	Deactivate(ctx context.Context, tx *gorm.DB, userID, sentenceID uuid.UUID) error
	MarkUsed(ctx context.Context, tx *gorm.DB, userID, sentenceID uuid.UUID, usedAt time.Time) error
}

type gormSentenceRepository struct{}

func NewGormSentenceRepository() SentenceRepository {
	return &gormSentenceRepository{}
}

func (r *gormSentenceRepository) Create(ctx context.Context, tx *gorm.DB, sentence *model.Sentence) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(sentence)
	if result.Error != nil {
		logger.Error("Error creating sentence in DB",
			"error", result.Error,
			"user_id", sentence.UserID.String(),
		)
		return fmt.Errorf("gormSentenceRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSentenceRepository) CreateBatch(ctx context.Context, tx *gorm.DB, sentences []*model.Sentence) error {
	logger := middleware.GetLogger(ctx)
	if len(sentences) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(sentences)
	if result.Error != nil {
		logger.Error("Error bulk creating sentences in DB",
			"error", result.Error,
			"count", len(sentences),
		)
		return fmt.Errorf("gormSentenceRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormSentenceRepository) FindByID(ctx context.Context, db *gorm.DB, userID, sentenceID uuid.UUID) (*model.Sentence, error) {
	logger := middleware.GetLogger(ctx)
	var sentence model.Sentence
	result := db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, sentenceID).First(&sentence)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding sentence by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"sentence_id", sentenceID.String(),
		)
		return nil, fmt.Errorf("gormSentenceRepository.FindByID: %w", result.Error)
	}
	return &sentence, nil
}

// FindActiveByUser は出題回数の少ない順で例文を返します。
// Active = false の例文は決して含めません。
func (r *gormSentenceRepository) FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, languageID uint, difficulty *model.DifficultyLevel, limit int) ([]*model.Sentence, error) {
	logger := middleware.GetLogger(ctx)
	var sentences []*model.Sentence

	query := db.WithContext(ctx).
		Where("user_id = ? AND language_id = ? AND active = ?", userID, languageID, true).
		Order("use_count ASC, created_at ASC")
	if difficulty != nil {
		query = query.Where("difficulty_level = ?", *difficulty)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&sentences)
	if result.Error != nil {
		logger.Error("Error finding active sentences in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"language_id", languageID,
		)
		return nil, fmt.Errorf("gormSentenceRepository.FindActiveByUser: %w", result.Error)
	}
	return sentences, nil
}

func (r *gormSentenceRepository) Deactivate(ctx context.Context, tx *gorm.DB, userID, sentenceID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Sentence{}).
		Where("user_id = ? AND id = ? AND active = ?", userID, sentenceID, true).
		Update("active", false)
	if result.Error != nil {
		logger.Error("Error deactivating sentence in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"sentence_id", sentenceID.String(),
		)
		return fmt.Errorf("gormSentenceRepository.Deactivate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// MarkUsed は出題回数を単一のUPDATE式でインクリメントします (正誤は不問)。
func (r *gormSentenceRepository) MarkUsed(ctx context.Context, tx *gorm.DB, userID, sentenceID uuid.UUID, usedAt time.Time) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Sentence{}).
		Where("user_id = ? AND id = ?", userID, sentenceID).
		UpdateColumns(map[string]interface{}{
			"use_count": gorm.Expr("use_count + 1"),
			"last_used": usedAt,
		})
	if result.Error != nil {
		logger.Error("Error marking sentence used in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"sentence_id", sentenceID.String(),
		)
		return fmt.Errorf("gormSentenceRepository.MarkUsed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
