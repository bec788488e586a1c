//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
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

// SessionRepository インターフェース
type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.LearningSession) error
	FindByID(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) (*model.LearningSession, error)
	Close(ctx context.Context, tx *gorm.DB, userID, sessionID uuid.UUID, req *model.EndSessionRequest, endedAt time.Time) error
	Stats(ctx context.Context, db *gorm.DB, userID uuid.UUID, languageID *uint) (*model.SessionStats, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.LearningSession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating learning session in DB",
			"error", result.Error,
			"user_id", session.UserID.String(),
			"session_type", string(session.SessionType),
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) (*model.LearningSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.LearningSession
	result := db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, sessionID).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding learning session by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

// Close はOpen状態のセッションを一度だけ終了させます。
// WHERE句の ended_at IS NULL により、終了済み・存在しないセッションへの
// 呼び出しは RowsAffected = 0 となり ErrNotFound を返します (状態は不変)。
func (r *gormSessionRepository) Close(ctx context.Context, tx *gorm.DB, userID, sessionID uuid.UUID, req *model.EndSessionRequest, endedAt time.Time) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.LearningSession{}).
		Where("user_id = ? AND id = ? AND ended_at IS NULL", userID, sessionID).
		Updates(map[string]interface{}{
			"ended_at":            endedAt,
			"words_practiced":     req.WordsPracticed,
			"sentences_practiced": req.SentencesPracticed,
			"correct_answers":     req.CorrectAnswers,
			"total_questions":     req.TotalQuestions,
		})
	if result.Error != nil {
		logger.Error("Error closing learning session in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"session_id", sessionID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Close: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Stats は終了済み (ended_at IS NOT NULL) のセッションのみを集計します。
// avg_accuracy はセッションごとの正答率の平均で、total_questions = 0 の
// セッションはCASE式がNULLを返すためAVGの対象から除外されます。
func (r *gormSessionRepository) Stats(ctx context.Context, db *gorm.DB, userID uuid.UUID, languageID *uint) (*model.SessionStats, error) {
	logger := middleware.GetLogger(ctx)

	var row struct {
		TotalSessions  int
		CorrectAnswers int
		TotalQuestions int
		AvgAccuracy    float64
	}

	query := db.WithContext(ctx).Model(&model.LearningSession{}).
		Select(
			"COUNT(*) AS total_sessions, " +
				"COALESCE(SUM(correct_answers), 0) AS correct_answers, " +
				"COALESCE(SUM(total_questions), 0) AS total_questions, " +
				"COALESCE(AVG(CASE WHEN total_questions > 0 THEN correct_answers * 100.0 / total_questions END), 0) AS avg_accuracy",
		).
		Where("user_id = ? AND ended_at IS NOT NULL", userID)
	if languageID != nil {
		query = query.Where("language_id = ?", *languageID)
	}

	if err := query.Scan(&row).Error; err != nil {
		logger.Error("Error aggregating session stats in DB",
			"error", err,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.Stats: %w", err)
	}

	return &model.SessionStats{
		TotalSessions:  row.TotalSessions,
		CorrectAnswers: row.CorrectAnswers,
		TotalQuestions: row.TotalQuestions,
		AvgAccuracy:    row.AvgAccuracy,
	}, nil
}
