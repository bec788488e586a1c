//go:generate mockery --name VocabularyRepository --output ./mocks --outpkg mocks --case=underscore
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

// VocabularyRepository インターフェース
type VocabularyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, vocab *model.Vocabulary) error
	CreateBatch(ctx context.Context, tx *gorm.DB, vocabs []*model.Vocabulary) error
	FindByID(ctx context.Context, db *gorm.DB, userID, vocabID uuid.UUID) (*model.Vocabulary, error)
	FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter model.VocabularyFilter) ([]*model.Vocabulary, error)
	Deactivate(ctx context.Context, tx *gorm.DB, userID, vocabID uuid.UUID) error
	ApplyReview(ctx context.Context, tx *gorm.DB, userID, vocabID uuid.UUID, isCorrect bool, reviewedAt time.Time) error
	Stats(ctx context.Context, db *gorm.DB, userID uuid.UUID, languageID *uint, masteredThreshold int) (*model.VocabularyStats, error)
}

type gormVocabularyRepository struct{}

func NewGormVocabularyRepository() VocabularyRepository {
	return &gormVocabularyRepository{}
}

func (r *gormVocabularyRepository) Create(ctx context.Context, tx *gorm.DB, vocab *model.Vocabulary) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(vocab)
	if result.Error != nil {
		logger.Error("Error creating vocabulary in DB",
			"error", result.Error,
			"user_id", vocab.UserID.String(),
			"word", vocab.Word,
		)
		return fmt.Errorf("gormVocabularyRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVocabularyRepository) CreateBatch(ctx context.Context, tx *gorm.DB, vocabs []*model.Vocabulary) error {
	logger := middleware.GetLogger(ctx)
	if len(vocabs) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(vocabs)
	if result.Error != nil {
		logger.Error("Error bulk creating vocabulary in DB",
			"error", result.Error,
			"count", len(vocabs),
		)
		return fmt.Errorf("gormVocabularyRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormVocabularyRepository) FindByID(ctx context.Context, db *gorm.DB, userID, vocabID uuid.UUID) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocab model.Vocabulary
	result := db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, vocabID).First(&vocab)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vocabulary by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"vocabulary_id", vocabID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByID: %w", result.Error)
	}
	return &vocab, nil
}

// FindActiveByUser は選択対象の単語を「弱い順」で返します。
// 第1キー: mastery_level 昇順、第2キー: review_count 昇順。
// Active = false の単語は決して含めません。
func (r *gormVocabularyRepository) FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter model.VocabularyFilter) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocabs []*model.Vocabulary

	query := db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("mastery_level ASC, review_count ASC, created_at ASC")
	if filter.LanguageID != 0 {
		query = query.Where("language_id = ?", filter.LanguageID)
	}
	if filter.Difficulty != nil {
		query = query.Where("difficulty_level = ?", *filter.Difficulty)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	result := query.Find(&vocabs)
	if result.Error != nil {
		logger.Error("Error finding active vocabulary in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindActiveByUser: %w", result.Error)
	}
	return vocabs, nil
}

func (r *gormVocabularyRepository) Deactivate(ctx context.Context, tx *gorm.DB, userID, vocabID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Vocabulary{}).
		Where("user_id = ? AND id = ? AND active = ?", userID, vocabID, true).
		Update("active", false)
	if result.Error != nil {
		logger.Error("Error deactivating vocabulary in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"vocabulary_id", vocabID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Deactivate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ApplyReview は解答結果を習熟度カウンタに反映します。
// mastery_level の増減は単一のUPDATE式で行い、同一単語への並行解答で
// 更新が失われないようにします (Goでの read-modify-write は不可)。
// mastery_level は0未満に下がりません。
func (r *gormVocabularyRepository) ApplyReview(ctx context.Context, tx *gorm.DB, userID, vocabID uuid.UUID, isCorrect bool, reviewedAt time.Time) error {
	logger := middleware.GetLogger(ctx)

	var masteryExpr string
	if isCorrect {
		masteryExpr = "mastery_level + 1"
	} else {
		// 0でクランプ (postgres / sqlite 共通のCASE式)
		masteryExpr = "CASE WHEN mastery_level > 0 THEN mastery_level - 1 ELSE 0 END"
	}

	result := tx.WithContext(ctx).Model(&model.Vocabulary{}).
		Where("user_id = ? AND id = ?", userID, vocabID).
		UpdateColumns(map[string]interface{}{
			"mastery_level": gorm.Expr(masteryExpr),
			"review_count":  gorm.Expr("review_count + 1"),
			"last_reviewed": reviewedAt,
		})
	if result.Error != nil {
		logger.Error("Error applying review to vocabulary in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"vocabulary_id", vocabID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.ApplyReview: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) Stats(ctx context.Context, db *gorm.DB, userID uuid.UUID, languageID *uint, masteredThreshold int) (*model.VocabularyStats, error) {
	logger := middleware.GetLogger(ctx)

	var row struct {
		TotalWords    int
		MasteredWords int
		AvgMastery    float64
	}

	query := db.WithContext(ctx).Model(&model.Vocabulary{}).
		Select(
			"COUNT(*) AS total_words, "+
				"COALESCE(SUM(CASE WHEN mastery_level >= ? THEN 1 ELSE 0 END), 0) AS mastered_words, "+
				"COALESCE(AVG(mastery_level), 0) AS avg_mastery",
			masteredThreshold,
		).
		Where("user_id = ? AND active = ?", userID, true)
	if languageID != nil {
		query = query.Where("language_id = ?", *languageID)
	}

	if err := query.Scan(&row).Error; err != nil {
		logger.Error("Error aggregating vocabulary stats in DB",
			"error", err,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.Stats: %w", err)
	}

	return &model.VocabularyStats{
		TotalWords:    row.TotalWords,
		MasteredWords: row.MasteredWords,
		AvgMastery:    row.AvgMastery,
	}, nil
}
