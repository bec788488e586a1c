// internal/repository/session_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"lingualearn/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestSession(t *testing.T, db *gorm.DB, userID uuid.UUID) *model.LearningSession {
	t.Helper()
	session := &model.LearningSession{
		ID:          uuid.New(),
		UserID:      userID,
		LanguageID:  1,
		SessionType: model.SessionTypeVocabulary,
		StartedAt:   time.Now(),
	}
	require.NoError(t, db.Create(session).Error)
	return session
}

func closeTestSession(t *testing.T, db *gorm.DB, repo SessionRepository, userID, sessionID uuid.UUID, correct, total int) {
	t.Helper()
	req := &model.EndSessionRequest{
		WordsPracticed: total,
		CorrectAnswers: correct,
		TotalQuestions: total,
	}
	require.NoError(t, repo.Close(context.Background(), db, userID, sessionID, req, time.Now()))
}

func Test_gormSessionRepository_Close(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	repo := NewGormSessionRepository()
	userID := uuid.New()

	t.Run("正常系: Open中のセッションを一度だけ終了できる", func(t *testing.T) {
		session := createTestSession(t, db, userID)

		endedAt := time.Now()
		req := &model.EndSessionRequest{
			WordsPracticed:     8,
			SentencesPracticed: 2,
			CorrectAnswers:     7,
			TotalQuestions:     10,
		}
		require.NoError(t, repo.Close(ctx, db, userID, session.ID, req, endedAt))

		got, err := repo.FindByID(ctx, db, userID, session.ID)
		require.NoError(t, err)
		require.NotNil(t, got.EndedAt)
		assert.Equal(t, 8, got.WordsPracticed)
		assert.Equal(t, 2, got.SentencesPracticed)
		assert.Equal(t, 7, got.CorrectAnswers)
		assert.Equal(t, 10, got.TotalQuestions)
	})

	t.Run("異常系: 終了済みセッションの再終了は ErrNotFound で状態も不変", func(t *testing.T) {
		session := createTestSession(t, db, userID)
		closeTestSession(t, db, repo, userID, session.ID, 3, 4)

		req := &model.EndSessionRequest{CorrectAnswers: 99, TotalQuestions: 99}
		err := repo.Close(ctx, db, userID, session.ID, req, time.Now())
		assert.ErrorIs(t, err, model.ErrNotFound)

		got, err := repo.FindByID(ctx, db, userID, session.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.CorrectAnswers)
		assert.Equal(t, 4, got.TotalQuestions)
	})

	t.Run("異常系: 他ユーザーのセッションは終了できない", func(t *testing.T) {
		session := createTestSession(t, db, userID)

		err := repo.Close(ctx, db, uuid.New(), session.ID, &model.EndSessionRequest{}, time.Now())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormSessionRepository_Stats(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	repo := NewGormSessionRepository()
	userID := uuid.New()

	t.Run("正常系: セッションゼロでもゼロ除算せずすべてゼロ", func(t *testing.T) {
		got, err := repo.Stats(ctx, db, userID, nil)
		require.NoError(t, err)
		assert.Zero(t, got.TotalSessions)
		assert.Zero(t, got.CorrectAnswers)
		assert.Zero(t, got.TotalQuestions)
		assert.Zero(t, got.AvgAccuracy)
	})

	// 終了済み: 3/4 (75%), 1/2 (50%), 0/0 (平均からは除外、件数には含む)
	s1 := createTestSession(t, db, userID)
	closeTestSession(t, db, repo, userID, s1.ID, 3, 4)
	s2 := createTestSession(t, db, userID)
	closeTestSession(t, db, repo, userID, s2.ID, 1, 2)
	s3 := createTestSession(t, db, userID)
	closeTestSession(t, db, repo, userID, s3.ID, 0, 0)
	// Open中のセッションは集計対象外
	createTestSession(t, db, userID)
	// 他ユーザーのセッションは対象外
	other := createTestSession(t, db, uuid.New())
	closeTestSession(t, db, repo, other.UserID, other.ID, 10, 10)

	t.Run("正常系: 平均正答率はセッション単位の正答率の平均", func(t *testing.T) {
		got, err := repo.Stats(ctx, db, userID, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, got.TotalSessions)
		assert.Equal(t, 4, got.CorrectAnswers)
		assert.Equal(t, 6, got.TotalQuestions)
		// (75 + 50) / 2 = 62.5 (0問のセッションは平均の分母に入らない)
		assert.InDelta(t, 62.5, got.AvgAccuracy, 1e-9)
	})
}
