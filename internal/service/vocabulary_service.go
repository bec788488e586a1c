// internal/service/vocabulary_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VocabularyService は単語帳の管理を担います
type VocabularyService interface {
	CreateVocabulary(ctx context.Context, userID uuid.UUID, req *model.PostVocabularyRequest) (*model.Vocabulary, error)
	BulkImportVocabulary(ctx context.Context, userID uuid.UUID, req *model.BulkVocabularyRequest) ([]*model.Vocabulary, error)
	GetVocabulary(ctx context.Context, userID, vocabID uuid.UUID) (*model.Vocabulary, error)
	ListVocabulary(ctx context.Context, userID uuid.UUID, filter model.VocabularyFilter) ([]*model.Vocabulary, error)
	DeactivateVocabulary(ctx context.Context, userID, vocabID uuid.UUID) error
}

type vocabularyService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
	langRepo  repository.LanguageRepository
}

func NewVocabularyService(db *gorm.DB, vocabRepo repository.VocabularyRepository, langRepo repository.LanguageRepository) VocabularyService {
	return &vocabularyService{
		db:        db,
		vocabRepo: vocabRepo,
		langRepo:  langRepo,
	}
}

func (s *vocabularyService) CreateVocabulary(ctx context.Context, userID uuid.UUID, req *model.PostVocabularyRequest) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	word := strings.TrimSpace(req.Word)
	if word == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "単語は必須項目です。", "word", model.ErrInvalidInput)
	}
	if err := s.requireUserLanguage(ctx, userID, req.LanguageID); err != nil {
		return nil, err
	}

	difficulty := model.DifficultyLevel(req.DifficultyLevel)
	if difficulty == "" {
		difficulty = model.DifficultyBeginner
	}

	vocab := &model.Vocabulary{
		ID:              uuid.New(),
		UserID:          userID,
		LanguageID:      req.LanguageID,
		Word:            word,
		Translation:     strings.TrimSpace(req.Translation),
		DifficultyLevel: difficulty,
		Category:        req.Category,
		PartOfSpeech:    req.PartOfSpeech,
		ExampleSentence: req.ExampleSentence,
		Active:          true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.vocabRepo.Create(ctx, tx, vocab)
	})
	if err != nil {
		logger.Error("Failed to create vocabulary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の登録に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Vocabulary created", "vocabulary_id", vocab.ID, "word", vocab.Word)
	return vocab, nil
}

// BulkImportVocabulary は改行区切りのテキストから単語を一括登録します。
// 各行は "word" または "word - translation" 形式で、空行は無視します。
func (s *vocabularyService) BulkImportVocabulary(ctx context.Context, userID uuid.UUID, req *model.BulkVocabularyRequest) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if err := s.requireUserLanguage(ctx, userID, req.LanguageID); err != nil {
		return nil, err
	}

	difficulty := model.DifficultyLevel(req.DifficultyLevel)
	if difficulty == "" {
		difficulty = model.DifficultyBeginner
	}

	var vocabs []*model.Vocabulary
	for _, line := range strings.Split(req.Words, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		word, translation := line, ""
		if before, after, found := strings.Cut(line, " - "); found {
			word = strings.TrimSpace(before)
			translation = strings.TrimSpace(after)
		}
		if word == "" {
			continue
		}
		vocabs = append(vocabs, &model.Vocabulary{
			ID:              uuid.New(),
			UserID:          userID,
			LanguageID:      req.LanguageID,
			Word:            word,
			Translation:     translation,
			DifficultyLevel: difficulty,
			Active:          true,
		})
	}
	if len(vocabs) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "登録できる単語がありませんでした。", "words", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.vocabRepo.CreateBatch(ctx, tx, vocabs)
	})
	if err != nil {
		logger.Error("Failed to bulk import vocabulary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の一括登録に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Vocabulary bulk imported", "count", len(vocabs))
	return vocabs, nil
}

func (s *vocabularyService) GetVocabulary(ctx context.Context, userID, vocabID uuid.UUID) (*model.Vocabulary, error) {
	vocab, err := s.vocabRepo.FindByID(ctx, s.db, userID, vocabID)
	if err != nil {
		// model.ErrNotFound はそのまま伝播させる
		return nil, err
	}
	return vocab, nil
}

func (s *vocabularyService) ListVocabulary(ctx context.Context, userID uuid.UUID, filter model.VocabularyFilter) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	vocabs, err := s.vocabRepo.FindActiveByUser(ctx, s.db, userID, filter)
	if err != nil {
		logger.Error("Failed to list vocabulary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return vocabs, nil
}

// DeactivateVocabulary は単語を選択対象から外します (物理削除はしない)
func (s *vocabularyService) DeactivateVocabulary(ctx context.Context, userID, vocabID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "vocabulary_id", vocabID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.vocabRepo.Deactivate(ctx, tx, userID, vocabID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		logger.Error("Failed to deactivate vocabulary", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の削除に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Vocabulary deactivated")
	return nil
}

// requireUserLanguage はユーザーが学習に追加していない言語への書き込みを拒否します。
// ストアへの書き込み前に検証エラーとして弾きます (ストレージエラーではない)。
func (s *vocabularyService) requireUserLanguage(ctx context.Context, userID uuid.UUID, languageID uint) error {
	logger := middleware.GetLogger(ctx)

	if languageID == 0 {
		return model.NewAppError("VALIDATION_ERROR", "言語が指定されていません。", "language_id", model.ErrInvalidInput)
	}
	has, err := s.langRepo.UserHasLanguage(ctx, s.db, userID, languageID)
	if err != nil {
		logger.Error("Failed to check user language", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "学習言語の確認中にエラーが発生しました。", "", model.ErrInternalServer)
	}
	if !has {
		return model.NewAppError("LANGUAGE_NOT_ADDED", "この言語は学習対象に追加されていません。", "language_id", model.ErrInvalidInput)
	}
	return nil
}
