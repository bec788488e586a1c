//go:generate mockery --name PracticeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeRepository インターフェース。
// 練習記録は追記専用のため Update / Delete は提供しません。
type PracticeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *model.PracticeRecord) error
	FindBySession(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) ([]*model.PracticeRecord, error)
}

type gormPracticeRepository struct{}

func NewGormPracticeRepository() PracticeRepository {
	return &gormPracticeRepository{}
}

func (r *gormPracticeRepository) Create(ctx context.Context, tx *gorm.DB, record *model.PracticeRecord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(record)
	if result.Error != nil {
		logger.Error("Error creating practice record in DB",
			"error", result.Error,
			"user_id", record.UserID.String(),
			"session_id", record.SessionID.String(),
		)
		return fmt.Errorf("gormPracticeRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormPracticeRepository) FindBySession(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) ([]*model.PracticeRecord, error) {
	logger := middleware.GetLogger(ctx)
	var records []*model.PracticeRecord
	result := db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("practiced_at ASC").
		Find(&records)
	if result.Error != nil {
		logger.Error("Error finding practice records by session in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormPracticeRepository.FindBySession: %w", result.Error)
	}
	return records, nil
}
