// internal/service/stats_service.go
package service

import (
	"context"

	"lingualearn/internal/config"
	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatsService は学習統計の集計を担います
type StatsService interface {
	GetStats(ctx context.Context, userID uuid.UUID, languageID *uint) (*model.StatsResponse, error)
}

type statsService struct {
	db          *gorm.DB
	vocabRepo   repository.VocabularyRepository
	sessionRepo repository.SessionRepository
}

func NewStatsService(db *gorm.DB, vocabRepo repository.VocabularyRepository, sessionRepo repository.SessionRepository) StatsService {
	return &statsService{
		db:          db,
		vocabRepo:   vocabRepo,
		sessionRepo: sessionRepo,
	}
}

// GetStats は単語統計とセッション統計を1つのレスポンスにまとめます。
// 集計はすべてDB側で行い、行をアプリへ展開しません。
func (s *statsService) GetStats(ctx context.Context, userID uuid.UUID, languageID *uint) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	vocabStats, err := s.vocabRepo.Stats(ctx, s.db, userID, languageID, config.MasteredThreshold)
	if err != nil {
		logger.Error("Failed to aggregate vocabulary stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語統計の集計に失敗しました。", "", model.ErrInternalServer)
	}

	sessionStats, err := s.sessionRepo.Stats(ctx, s.db, userID, languageID)
	if err != nil {
		logger.Error("Failed to aggregate session stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッション統計の集計に失敗しました。", "", model.ErrInternalServer)
	}

	return &model.StatsResponse{
		Vocabulary: *vocabStats,
		Sessions:   *sessionStats,
	}, nil
}
