// internal/service/practice_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lingualearn/internal/config"
	"lingualearn/internal/model"
	"lingualearn/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			PracticeLimit: 10,
			CandidatePool: 50,
		},
	}
}

func boolPtr(b bool) *bool { return &b }

// --- Test SelectPracticeVocabulary ---
func Test_practiceService_SelectPracticeVocabulary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()
	languageID := uint(1)

	makeVocab := func(word string, mastery, reviews int) *model.Vocabulary {
		return &model.Vocabulary{
			ID:           uuid.New(),
			UserID:       userID,
			LanguageID:   languageID,
			Word:         word,
			MasteryLevel: mastery,
			ReviewCount:  reviews,
			Active:       true,
		}
	}

	tests := []struct {
		name       string
		languageID uint
		limit      int
		setupMock  func(vocabRepo *mocks.VocabularyRepository)
		wantErr    error
		wantCount  int
	}{
		{
			name:       "正常系: 習熟度の低い単語から limit 件返す",
			languageID: languageID,
			limit:      2,
			setupMock: func(vocabRepo *mocks.VocabularyRepository) {
				vocabRepo.On("FindActiveByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID,
					mock.AnythingOfType("model.VocabularyFilter")).
					Return([]*model.Vocabulary{
						makeVocab("apple", 0, 1),
						makeVocab("banana", 1, 2),
						makeVocab("cherry", 2, 3),
					}, nil).Once()
			},
			wantErr:   nil,
			wantCount: 2,
		},
		{
			name:       "正常系: 候補ゼロは空の結果を返す (エラーではない)",
			languageID: languageID,
			limit:      5,
			setupMock: func(vocabRepo *mocks.VocabularyRepository) {
				vocabRepo.On("FindActiveByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID,
					mock.AnythingOfType("model.VocabularyFilter")).
					Return([]*model.Vocabulary{}, nil).Once()
			},
			wantErr:   nil,
			wantCount: 0,
		},
		{
			name:       "異常系: 言語IDが未指定",
			languageID: 0,
			limit:      5,
			setupMock:  func(vocabRepo *mocks.VocabularyRepository) {},
			wantErr:    model.ErrInvalidInput,
		},
		{
			name:       "異常系: リポジトリエラー",
			languageID: languageID,
			limit:      5,
			setupMock: func(vocabRepo *mocks.VocabularyRepository) {
				vocabRepo.On("FindActiveByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID,
					mock.AnythingOfType("model.VocabularyFilter")).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocabRepo := new(mocks.VocabularyRepository)
			sentenceRepo := new(mocks.SentenceRepository)
			practiceRepo := new(mocks.PracticeRepository)
			tt.setupMock(vocabRepo)

			svc := NewPracticeService(db, vocabRepo, sentenceRepo, practiceRepo, testConfig())
			got, err := svc.SelectPracticeVocabulary(ctx, userID, tt.languageID, nil, tt.limit)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, tt.wantCount)
			}
			vocabRepo.AssertExpectations(t)
		})
	}
}

// 同率シャッフルが区間を越えないこと (弱い単語が先頭に残ること) の確認
func Test_practiceService_SelectPracticeVocabulary_Ordering(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()

	weak := &model.Vocabulary{ID: uuid.New(), Word: "weak", MasteryLevel: 0, ReviewCount: 0, Active: true}
	tieA := &model.Vocabulary{ID: uuid.New(), Word: "tie_a", MasteryLevel: 1, ReviewCount: 2, Active: true}
	tieB := &model.Vocabulary{ID: uuid.New(), Word: "tie_b", MasteryLevel: 1, ReviewCount: 2, Active: true}
	strong := &model.Vocabulary{ID: uuid.New(), Word: "strong", MasteryLevel: 5, ReviewCount: 9, Active: true}

	vocabRepo := new(mocks.VocabularyRepository)
	vocabRepo.On("FindActiveByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID,
		mock.AnythingOfType("model.VocabularyFilter")).
		Return([]*model.Vocabulary{weak, tieA, tieB, strong}, nil)

	svc := NewPracticeService(db, vocabRepo, new(mocks.SentenceRepository), new(mocks.PracticeRepository), testConfig())

	// シャッフルは同率区間の中だけで起きる
	for i := 0; i < 20; i++ {
		got, err := svc.SelectPracticeVocabulary(ctx, userID, 1, nil, 4)
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "weak", got[0].Word)
		assert.Equal(t, "strong", got[3].Word)
		assert.ElementsMatch(t, []string{"tie_a", "tie_b"}, []string{got[1].Word, got[2].Word})
	}
}

// --- Test RecordAttempt ---
func Test_practiceService_RecordAttempt(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()
	sessionID := uuid.New()
	vocabID := uuid.New()
	sentenceID := uuid.New()

	tests := []struct {
		name      string
		req       *model.RecordAttemptRequest
		setupMock func(vocabRepo *mocks.VocabularyRepository, sentenceRepo *mocks.SentenceRepository, practiceRepo *mocks.PracticeRepository)
		wantErr   error
	}{
		{
			name: "正常系: 単語への解答は習熟度更新と記録作成を行う",
			req: &model.RecordAttemptRequest{
				SessionID:      sessionID,
				VocabularyID:   &vocabID,
				UserAnswer:     "gato",
				CorrectAnswer:  "gato",
				IsCorrect:      boolPtr(true),
				ResponseTimeMs: 1200,
			},
			setupMock: func(vocabRepo *mocks.VocabularyRepository, sentenceRepo *mocks.SentenceRepository, practiceRepo *mocks.PracticeRepository) {
				vocabRepo.On("ApplyReview", ctx, mock.AnythingOfType("*gorm.DB"), userID, vocabID, true, mock.AnythingOfType("time.Time")).
					Return(nil).Once()
				practiceRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PracticeRecord")).
					Run(func(args mock.Arguments) {
						record := args.Get(2).(*model.PracticeRecord)
						assert.Equal(t, userID, record.UserID)
						assert.Equal(t, sessionID, record.SessionID)
						require.NotNil(t, record.VocabularyID)
						assert.Equal(t, vocabID, *record.VocabularyID)
						assert.Nil(t, record.SentenceID)
						assert.NotEqual(t, uuid.Nil, record.ID)
						assert.WithinDuration(t, time.Now(), record.PracticedAt, time.Second*5)
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "正常系: 例文への解答は正誤によらず出題回数のみ更新する",
			req: &model.RecordAttemptRequest{
				SessionID:  sessionID,
				SentenceID: &sentenceID,
				IsCorrect:  boolPtr(false),
			},
			setupMock: func(vocabRepo *mocks.VocabularyRepository, sentenceRepo *mocks.SentenceRepository, practiceRepo *mocks.PracticeRepository) {
				sentenceRepo.On("MarkUsed", ctx, mock.AnythingOfType("*gorm.DB"), userID, sentenceID, mock.AnythingOfType("time.Time")).
					Return(nil).Once()
				practiceRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PracticeRecord")).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 対象が両方指定されている",
			req: &model.RecordAttemptRequest{
				SessionID:    sessionID,
				VocabularyID: &vocabID,
				SentenceID:   &sentenceID,
				IsCorrect:    boolPtr(true),
			},
			setupMock: func(vocabRepo *mocks.VocabularyRepository, sentenceRepo *mocks.SentenceRepository, practiceRepo *mocks.PracticeRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: 対象が両方とも未指定",
			req: &model.RecordAttemptRequest{
				SessionID: sessionID,
				IsCorrect: boolPtr(true),
			},
			setupMock: func(vocabRepo *mocks.VocabularyRepository, sentenceRepo *mocks.SentenceRepository, practiceRepo *mocks.PracticeRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: 正誤が未指定",
			req: &model.RecordAttemptRequest{
				SessionID:    sessionID,
				VocabularyID: &vocabID,
			},
			setupMock: func(vocabRepo *mocks.VocabularyRepository, sentenceRepo *mocks.SentenceRepository, practiceRepo *mocks.PracticeRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: 対象の単語が存在しない",
			req: &model.RecordAttemptRequest{
				SessionID:    sessionID,
				VocabularyID: &vocabID,
				IsCorrect:    boolPtr(true),
			},
			setupMock: func(vocabRepo *mocks.VocabularyRepository, sentenceRepo *mocks.SentenceRepository, practiceRepo *mocks.PracticeRepository) {
				vocabRepo.On("ApplyReview", ctx, mock.AnythingOfType("*gorm.DB"), userID, vocabID, true, mock.AnythingOfType("time.Time")).
					Return(model.ErrNotFound).Once()
				// 習熟度更新が失敗した場合、記録は作成されない
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 記録の作成に失敗した場合はエラーを返す",
			req: &model.RecordAttemptRequest{
				SessionID:    sessionID,
				VocabularyID: &vocabID,
				IsCorrect:    boolPtr(true),
			},
			setupMock: func(vocabRepo *mocks.VocabularyRepository, sentenceRepo *mocks.SentenceRepository, practiceRepo *mocks.PracticeRepository) {
				vocabRepo.On("ApplyReview", ctx, mock.AnythingOfType("*gorm.DB"), userID, vocabID, true, mock.AnythingOfType("time.Time")).
					Return(nil).Once()
				practiceRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PracticeRecord")).
					Return(errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocabRepo := new(mocks.VocabularyRepository)
			sentenceRepo := new(mocks.SentenceRepository)
			practiceRepo := new(mocks.PracticeRepository)
			tt.setupMock(vocabRepo, sentenceRepo, practiceRepo)

			svc := NewPracticeService(db, vocabRepo, sentenceRepo, practiceRepo, testConfig())
			got, err := svc.RecordAttempt(ctx, userID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.NotEqual(t, uuid.Nil, got.RecordID)
			}
			vocabRepo.AssertExpectations(t)
			sentenceRepo.AssertExpectations(t)
			practiceRepo.AssertExpectations(t)
		})
	}
}
