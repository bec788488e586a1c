// internal/service/vocabulary_service_test.go
package service

import (
	"context"
	"testing"

	"lingualearn/internal/model"
	"lingualearn/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Test CreateVocabulary ---
func Test_vocabularyService_CreateVocabulary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()
	languageID := uint(1)

	tests := []struct {
		name      string
		req       *model.PostVocabularyRequest
		setupMock func(vocabRepo *mocks.VocabularyRepository, langRepo *mocks.LanguageRepository)
		wantErr   error
	}{
		{
			name: "正常系: 単語の作成成功 (難易度はデフォルトでbeginner)",
			req: &model.PostVocabularyRequest{
				LanguageID:  languageID,
				Word:        "gato",
				Translation: "cat",
			},
			setupMock: func(vocabRepo *mocks.VocabularyRepository, langRepo *mocks.LanguageRepository) {
				langRepo.On("UserHasLanguage", ctx, mock.AnythingOfType("*gorm.DB"), userID, languageID).
					Return(true, nil).Once()
				vocabRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Vocabulary")).
					Run(func(args mock.Arguments) {
						vocab := args.Get(2).(*model.Vocabulary)
						assert.Equal(t, userID, vocab.UserID)
						assert.Equal(t, "gato", vocab.Word)
						assert.Equal(t, model.DifficultyBeginner, vocab.DifficultyLevel)
						assert.Zero(t, vocab.MasteryLevel)
						assert.Zero(t, vocab.ReviewCount)
						assert.True(t, vocab.Active)
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 単語が空白のみ",
			req: &model.PostVocabularyRequest{
				LanguageID: languageID,
				Word:       "   ",
			},
			setupMock: func(vocabRepo *mocks.VocabularyRepository, langRepo *mocks.LanguageRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: 学習対象に追加していない言語",
			req: &model.PostVocabularyRequest{
				LanguageID: languageID,
				Word:       "gato",
			},
			setupMock: func(vocabRepo *mocks.VocabularyRepository, langRepo *mocks.LanguageRepository) {
				langRepo.On("UserHasLanguage", ctx, mock.AnythingOfType("*gorm.DB"), userID, languageID).
					Return(false, nil).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocabRepo := new(mocks.VocabularyRepository)
			langRepo := new(mocks.LanguageRepository)
			tt.setupMock(vocabRepo, langRepo)

			svc := NewVocabularyService(db, vocabRepo, langRepo)
			got, err := svc.CreateVocabulary(ctx, userID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.NotEqual(t, uuid.Nil, got.ID)
			}
			vocabRepo.AssertExpectations(t)
			langRepo.AssertExpectations(t)
		})
	}
}

// --- Test BulkImportVocabulary ---
func Test_vocabularyService_BulkImportVocabulary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()
	languageID := uint(1)

	t.Run("正常系: 行の解析 (word - translation 形式と単語のみの行)", func(t *testing.T) {
		vocabRepo := new(mocks.VocabularyRepository)
		langRepo := new(mocks.LanguageRepository)
		langRepo.On("UserHasLanguage", ctx, mock.AnythingOfType("*gorm.DB"), userID, languageID).
			Return(true, nil).Once()
		vocabRepo.On("CreateBatch", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]*model.Vocabulary")).
			Run(func(args mock.Arguments) {
				vocabs := args.Get(2).([]*model.Vocabulary)
				require.Len(t, vocabs, 3)
				assert.Equal(t, "gato", vocabs[0].Word)
				assert.Equal(t, "cat", vocabs[0].Translation)
				assert.Equal(t, "perro", vocabs[1].Word)
				assert.Equal(t, "dog", vocabs[1].Translation)
				// 訳のない行は単語のみ
				assert.Equal(t, "casa", vocabs[2].Word)
				assert.Equal(t, "", vocabs[2].Translation)
			}).Return(nil).Once()

		svc := NewVocabularyService(db, vocabRepo, langRepo)
		got, err := svc.BulkImportVocabulary(ctx, userID, &model.BulkVocabularyRequest{
			LanguageID: languageID,
			Words:      "gato - cat\nperro - dog\n\n  \ncasa\n",
		})
		require.NoError(t, err)
		assert.Len(t, got, 3)
		vocabRepo.AssertExpectations(t)
	})

	t.Run("異常系: 登録可能な行がない場合は検証エラー", func(t *testing.T) {
		vocabRepo := new(mocks.VocabularyRepository)
		langRepo := new(mocks.LanguageRepository)
		langRepo.On("UserHasLanguage", ctx, mock.AnythingOfType("*gorm.DB"), userID, languageID).
			Return(true, nil).Once()

		svc := NewVocabularyService(db, vocabRepo, langRepo)
		_, err := svc.BulkImportVocabulary(ctx, userID, &model.BulkVocabularyRequest{
			LanguageID: languageID,
			Words:      "\n   \n",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		vocabRepo.AssertNotCalled(t, "CreateBatch")
	})
}

// --- Test DeactivateVocabulary ---
func Test_vocabularyService_DeactivateVocabulary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()
	vocabID := uuid.New()

	t.Run("正常系: 論理削除成功", func(t *testing.T) {
		vocabRepo := new(mocks.VocabularyRepository)
		vocabRepo.On("Deactivate", ctx, mock.AnythingOfType("*gorm.DB"), userID, vocabID).
			Return(nil).Once()

		svc := NewVocabularyService(db, vocabRepo, new(mocks.LanguageRepository))
		err := svc.DeactivateVocabulary(ctx, userID, vocabID)
		require.NoError(t, err)
		vocabRepo.AssertExpectations(t)
	})

	t.Run("異常系: 存在しない単語は NotFound", func(t *testing.T) {
		vocabRepo := new(mocks.VocabularyRepository)
		vocabRepo.On("Deactivate", ctx, mock.AnythingOfType("*gorm.DB"), userID, vocabID).
			Return(model.ErrNotFound).Once()

		svc := NewVocabularyService(db, vocabRepo, new(mocks.LanguageRepository))
		err := svc.DeactivateVocabulary(ctx, userID, vocabID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
