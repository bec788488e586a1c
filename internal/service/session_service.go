// internal/service/session_service.go
package service

import (
	"context"
	"errors"
	"time"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService は練習セッションのライフサイクル (開始・終了) を担います
type SessionService interface {
	StartSession(ctx context.Context, userID uuid.UUID, req *model.StartSessionRequest) (*model.LearningSession, error)
	EndSession(ctx context.Context, userID, sessionID uuid.UUID, req *model.EndSessionRequest) error
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*model.LearningSession, error)
}

type sessionService struct {
	db          *gorm.DB
	sessionRepo repository.SessionRepository
	langRepo    repository.LanguageRepository
}

func NewSessionService(db *gorm.DB, sessionRepo repository.SessionRepository, langRepo repository.LanguageRepository) SessionService {
	return &sessionService{
		db:          db,
		sessionRepo: sessionRepo,
		langRepo:    langRepo,
	}
}

func (s *sessionService) StartSession(ctx context.Context, userID uuid.UUID, req *model.StartSessionRequest) (*model.LearningSession, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	has, err := s.langRepo.UserHasLanguage(ctx, s.db, userID, req.LanguageID)
	if err != nil {
		logger.Error("Failed to check user language", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習言語の確認中にエラーが発生しました。", "", model.ErrInternalServer)
	}
	if !has {
		return nil, model.NewAppError("LANGUAGE_NOT_ADDED", "この言語は学習対象に追加されていません。", "language_id", model.ErrInvalidInput)
	}

	session := &model.LearningSession{
		ID:          uuid.New(),
		UserID:      userID,
		LanguageID:  req.LanguageID,
		SessionType: model.SessionType(req.SessionType),
		StartedAt:   time.Now(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.sessionRepo.Create(ctx, tx, session)
	})
	if err != nil {
		logger.Error("Failed to start learning session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの開始に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Learning session started", "session_id", session.ID, "session_type", session.SessionType)
	return session, nil
}

// EndSession はOpen状態のセッションを終了し、集計カウンタを確定します。
// 終了済み・存在しないセッションは model.ErrNotFound を返します (冪等ではない)。
func (s *sessionService) EndSession(ctx context.Context, userID, sessionID uuid.UUID, req *model.EndSessionRequest) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "session_id", sessionID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.sessionRepo.Close(ctx, tx, userID, sessionID, req, time.Now())
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("SESSION_NOT_FOUND", "終了可能なセッションが見つかりません。", "session_id", model.ErrNotFound)
		}
		logger.Error("Failed to end learning session", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの終了に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Learning session ended",
		"correct_answers", req.CorrectAnswers,
		"total_questions", req.TotalQuestions,
	)
	return nil
}

func (s *sessionService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*model.LearningSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, s.db, userID, sessionID)
	if err != nil {
		return nil, err
	}
	return session, nil
}
