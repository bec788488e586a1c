// internal/service/sentence_service.go
package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"lingualearn/internal/client"
	"lingualearn/internal/config"
	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SentenceService は例文の登録と練習候補の選択を担います
type SentenceService interface {
	CreateSentence(ctx context.Context, userID uuid.UUID, req *model.PostSentenceRequest) (*model.Sentence, error)
	StoreGeneratedSentences(ctx context.Context, userID uuid.UUID, languageID uint, difficulty model.DifficultyLevel, lines []string) ([]*model.Sentence, error)
	SelectPracticeSentence(ctx context.Context, userID uuid.UUID, languageID uint, difficulty *model.DifficultyLevel) (*model.Sentence, error)
	PracticeSentence(ctx context.Context, userID uuid.UUID, req *model.PracticeSentenceRequest) (*model.Sentence, error)
}

type sentenceService struct {
	db           *gorm.DB
	sentenceRepo repository.SentenceRepository
	langRepo     repository.LanguageRepository
	generator    client.SentenceGenerator // nil の場合は生成フォールバック無効
	cfg          *config.Config
}

func NewSentenceService(db *gorm.DB, sentenceRepo repository.SentenceRepository, langRepo repository.LanguageRepository, generator client.SentenceGenerator, cfg *config.Config) SentenceService {
	return &sentenceService{
		db:           db,
		sentenceRepo: sentenceRepo,
		langRepo:     langRepo,
		generator:    generator,
		cfg:          cfg,
	}
}

func (s *sentenceService) CreateSentence(ctx context.Context, userID uuid.UUID, req *model.PostSentenceRequest) (*model.Sentence, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if strings.TrimSpace(req.Sentence) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "例文は必須項目です。", "sentence", model.ErrInvalidInput)
	}
	if err := s.requireUserLanguage(ctx, userID, req.LanguageID); err != nil {
		return nil, err
	}

	difficulty := model.DifficultyLevel(req.DifficultyLevel)
	if difficulty == "" {
		difficulty = model.DifficultyBeginner
	}

	sentence := &model.Sentence{
		ID:              uuid.New(),
		UserID:          userID,
		LanguageID:      req.LanguageID,
		Sentence:        strings.TrimSpace(req.Sentence),
		Translation:     strings.TrimSpace(req.Translation),
		DifficultyLevel: difficulty,
		Category:        req.Category,
		Active:          true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.sentenceRepo.Create(ctx, tx, sentence)
	})
	if err != nil {
		logger.Error("Failed to create sentence", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "例文の登録に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Sentence created", "sentence_id", sentence.ID)
	return sentence, nil
}

// StoreGeneratedSentences は生成コラボレータから受け取ったテキストを保存します。
// テキストは信頼しない前提で、空行の除去以外の検証は行いません。
// 使用カウンタはゼロで初期化されます。
func (s *sentenceService) StoreGeneratedSentences(ctx context.Context, userID uuid.UUID, languageID uint, difficulty model.DifficultyLevel, lines []string) ([]*model.Sentence, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "language_id", languageID)

	if err := s.requireUserLanguage(ctx, userID, languageID); err != nil {
		return nil, err
	}
	if difficulty == "" {
		difficulty = model.DifficultyBeginner
	}

	sentences := make([]*model.Sentence, 0, len(lines))
	for _, line := range lines {
		text, translation := splitGeneratedLine(line)
		if text == "" {
			continue
		}
		sentences = append(sentences, &model.Sentence{
			ID:              uuid.New(),
			UserID:          userID,
			LanguageID:      languageID,
			Sentence:        text,
			Translation:     translation,
			DifficultyLevel: difficulty,
			Category:        "generated",
			Active:          true,
		})
	}
	if len(sentences) == 0 {
		logger.Warn("Generated text contained no usable sentences")
		return nil, model.NewAppError("VALIDATION_ERROR", "保存できる例文がありませんでした。", "", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.sentenceRepo.CreateBatch(ctx, tx, sentences)
	})
	if err != nil {
		logger.Error("Failed to store generated sentences", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "生成された例文の保存に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Generated sentences stored", "count", len(sentences))
	return sentences, nil
}

// SelectPracticeSentence は出題回数の少ない例文を1つ返します。
// 同率の候補は一様にシャッフルして先頭を取ります。
// 候補が存在しない場合は ErrNotFound を返しますが、これは失敗ではなく
// 「まだ練習するものがない」という正常系で、呼び出し元は生成コラボレータ
// へのフォールバックで対応します。
func (s *sentenceService) SelectPracticeSentence(ctx context.Context, userID uuid.UUID, languageID uint, difficulty *model.DifficultyLevel) (*model.Sentence, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "language_id", languageID)

	if languageID == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "言語が指定されていません。", "language_id", model.ErrInvalidInput)
	}

	sentences, err := s.sentenceRepo.FindActiveByUser(ctx, s.db, userID, languageID, difficulty, s.cfg.App.CandidatePool)
	if err != nil {
		logger.Error("Failed to find practice sentences from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "練習例文の取得に失敗しました。", "", model.ErrInternalServer)
	}
	if len(sentences) == 0 {
		return nil, model.ErrNotFound
	}

	shuffleSentenceTies(sentences)

	logger.Info("Practice sentence selected", "sentence_id", sentences[0].ID)
	return sentences[0], nil
}

// PracticeSentence は練習用の例文を1つ返します。
// 保存済みの候補が尽きている場合は生成コラボレータにフォールバックし、
// 生成した例文を保存してからその先頭を返します。
func (s *sentenceService) PracticeSentence(ctx context.Context, userID uuid.UUID, req *model.PracticeSentenceRequest) (*model.Sentence, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "language_id", req.LanguageID)

	var difficulty *model.DifficultyLevel
	if req.DifficultyLevel != "" {
		d := model.DifficultyLevel(req.DifficultyLevel)
		difficulty = &d
	}

	sentence, err := s.SelectPracticeSentence(ctx, userID, req.LanguageID, difficulty)
	if err == nil {
		return sentence, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	if s.generator == nil {
		return nil, model.NewAppError("NO_SENTENCES_AVAILABLE", "練習できる例文がありません。例文を登録してください。", "", model.ErrNotFound)
	}

	language, err := s.langRepo.FindByID(ctx, s.db, req.LanguageID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LANGUAGE_NOT_FOUND", "指定された言語が見つかりません。", "language_id", model.ErrNotFound)
		}
		logger.Error("Failed to find language for generation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "言語の確認中にエラーが発生しました。", "", model.ErrInternalServer)
	}

	genDifficulty := model.DifficultyBeginner
	if difficulty != nil {
		genDifficulty = *difficulty
	}

	logger.Info("No stored sentences, falling back to generator", "difficulty", genDifficulty)
	lines, err := s.generator.GenerateSentences(ctx, language.Name, string(genDifficulty), s.cfg.App.PracticeLimit)
	if err != nil {
		logger.Error("Sentence generation failed", "error", err)
		return nil, model.NewAppError("GENERATION_FAILED", "例文の生成に失敗しました。時間をおいて再試行してください。", "", model.ErrInternalServer)
	}

	stored, err := s.StoreGeneratedSentences(ctx, userID, req.LanguageID, genDifficulty, lines)
	if err != nil {
		return nil, err
	}
	return stored[0], nil
}

// shuffleSentenceTies は use_count が等しい連続区間を一様にシャッフルします
func shuffleSentenceTies(sentences []*model.Sentence) {
	start := 0
	for i := 1; i <= len(sentences); i++ {
		if i == len(sentences) || sentences[i].UseCount != sentences[start].UseCount {
			run := sentences[start:i]
			rand.Shuffle(len(run), func(a, b int) {
				run[a], run[b] = run[b], run[a]
			})
			start = i
		}
	}
}

// requireUserLanguage はユーザーが学習に追加していない言語への書き込みを拒否します
func (s *sentenceService) requireUserLanguage(ctx context.Context, userID uuid.UUID, languageID uint) error {
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

// splitGeneratedLine は "例文 | 訳" 形式の行を分割します。
// 区切りがない行は全体を例文として扱います。
func splitGeneratedLine(line string) (sentence, translation string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	if before, after, found := strings.Cut(line, "|"); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return line, ""
}
