// internal/service/stats_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"lingualearn/internal/model"
	"lingualearn/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_statsService_GetStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()
	languageID := uint(1)

	tests := []struct {
		name       string
		languageID *uint
		setupMock  func(vocabRepo *mocks.VocabularyRepository, sessionRepo *mocks.SessionRepository)
		wantErr    error
		want       *model.StatsResponse
	}{
		{
			name:       "正常系: 単語統計とセッション統計をまとめて返す",
			languageID: &languageID,
			setupMock: func(vocabRepo *mocks.VocabularyRepository, sessionRepo *mocks.SessionRepository) {
				vocabRepo.On("Stats", ctx, mock.AnythingOfType("*gorm.DB"), userID, &languageID, 5).
					Return(&model.VocabularyStats{TotalWords: 20, MasteredWords: 4, AvgMastery: 2.5}, nil).Once()
				sessionRepo.On("Stats", ctx, mock.AnythingOfType("*gorm.DB"), userID, &languageID).
					Return(&model.SessionStats{TotalSessions: 3, CorrectAnswers: 18, TotalQuestions: 24, AvgAccuracy: 75.0}, nil).Once()
			},
			want: &model.StatsResponse{
				Vocabulary: model.VocabularyStats{TotalWords: 20, MasteredWords: 4, AvgMastery: 2.5},
				Sessions:   model.SessionStats{TotalSessions: 3, CorrectAnswers: 18, TotalQuestions: 24, AvgAccuracy: 75.0},
			},
		},
		{
			name:       "正常系: データがないユーザーはすべてゼロ",
			languageID: nil,
			setupMock: func(vocabRepo *mocks.VocabularyRepository, sessionRepo *mocks.SessionRepository) {
				vocabRepo.On("Stats", ctx, mock.AnythingOfType("*gorm.DB"), userID, (*uint)(nil), 5).
					Return(&model.VocabularyStats{}, nil).Once()
				sessionRepo.On("Stats", ctx, mock.AnythingOfType("*gorm.DB"), userID, (*uint)(nil)).
					Return(&model.SessionStats{}, nil).Once()
			},
			want: &model.StatsResponse{},
		},
		{
			name:       "異常系: 単語統計の集計失敗",
			languageID: nil,
			setupMock: func(vocabRepo *mocks.VocabularyRepository, sessionRepo *mocks.SessionRepository) {
				vocabRepo.On("Stats", ctx, mock.AnythingOfType("*gorm.DB"), userID, (*uint)(nil), 5).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocabRepo := new(mocks.VocabularyRepository)
			sessionRepo := new(mocks.SessionRepository)
			tt.setupMock(vocabRepo, sessionRepo)

			svc := NewStatsService(db, vocabRepo, sessionRepo)
			got, err := svc.GetStats(ctx, userID, tt.languageID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			vocabRepo.AssertExpectations(t)
			sessionRepo.AssertExpectations(t)
		})
	}
}
