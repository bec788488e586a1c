// internal/service/practice_service.go
package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"lingualearn/internal/config"
	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeService は練習候補の選択と解答結果の記録を担います
type PracticeService interface {
	SelectPracticeVocabulary(ctx context.Context, userID uuid.UUID, languageID uint, difficulty *model.DifficultyLevel, limit int) ([]*model.Vocabulary, error)
	RecordAttempt(ctx context.Context, userID uuid.UUID, req *model.RecordAttemptRequest) (*model.RecordAttemptResponse, error)
}

type practiceService struct {
	db           *gorm.DB
	vocabRepo    repository.VocabularyRepository
	sentenceRepo repository.SentenceRepository
	practiceRepo repository.PracticeRepository
	cfg          *config.Config
}

func NewPracticeService(db *gorm.DB, vocabRepo repository.VocabularyRepository, sentenceRepo repository.SentenceRepository, practiceRepo repository.PracticeRepository, cfg *config.Config) PracticeService {
	return &practiceService{
		db:           db,
		vocabRepo:    vocabRepo,
		sentenceRepo: sentenceRepo,
		practiceRepo: practiceRepo,
		cfg:          cfg,
	}
}

// SelectPracticeVocabulary は次に練習すべき単語を返します。
// mastery_level の低い順に並べ、同率の単語は毎回ランダムな順序にしてから
// 先頭 limit 件を取ります。習熟度が低いほど高頻度で再出題されるため、
// 経過時間ベースのスケジューリングなしで間隔反復の近似になります。
// 対象が1件もない場合は空スライスを返します (エラーではなく正常系)。
func (s *practiceService) SelectPracticeVocabulary(ctx context.Context, userID uuid.UUID, languageID uint, difficulty *model.DifficultyLevel, limit int) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if languageID == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "言語が指定されていません。", "language_id", model.ErrInvalidInput)
	}
	if limit <= 0 || limit > s.cfg.App.PracticeLimit {
		limit = s.cfg.App.PracticeLimit
	}

	// 同率シャッフルのため limit より広めに候補を取得する
	pool := s.cfg.App.CandidatePool
	if pool < limit {
		pool = limit
	}
	filter := model.VocabularyFilter{
		LanguageID: languageID,
		Difficulty: difficulty,
		Limit:      pool,
	}

	vocabs, err := s.vocabRepo.FindActiveByUser(ctx, s.db, userID, filter)
	if err != nil {
		logger.Error("Failed to find practice vocabulary from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "練習単語の取得に失敗しました。", "", model.ErrInternalServer)
	}

	shuffleVocabularyTies(vocabs)
	if len(vocabs) > limit {
		vocabs = vocabs[:limit]
	}

	logger.Info("Practice vocabulary selected", "count", len(vocabs))
	return vocabs, nil
}

// shuffleVocabularyTies は (mastery_level, review_count) が等しい連続区間を
// 一様にシャッフルします。全件が同率でも選択は必ず終了し、呼び出しごとに
// 順序が変わることで同じ単語への偏りを防ぎます。
func shuffleVocabularyTies(vocabs []*model.Vocabulary) {
	start := 0
	for i := 1; i <= len(vocabs); i++ {
		if i == len(vocabs) ||
			vocabs[i].MasteryLevel != vocabs[start].MasteryLevel ||
			vocabs[i].ReviewCount != vocabs[start].ReviewCount {
			run := vocabs[start:i]
			rand.Shuffle(len(run), func(a, b int) {
				run[a], run[b] = run[b], run[a]
			})
			start = i
		}
	}
}

// RecordAttempt は1回の解答を記録し、対象アイテムのカウンタを更新します。
// 練習記録の作成とカウンタ更新は同一トランザクションで行い、片方だけが
// 反映されることはありません。カウンタの増減はストア層の単一UPDATE式で
// 行うため、同一アイテムへの並行解答でも更新は失われません。
// セッションがOpenかどうかはここでは再検証しません (記録は追記専用の
// 事実ログであり、終了直前の解答を棄却しない)。
func (s *practiceService) RecordAttempt(ctx context.Context, userID uuid.UUID, req *model.RecordAttemptRequest) (*model.RecordAttemptResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "session_id", req.SessionID)

	// 対象は単語か例文のどちらか一方のみ
	if (req.VocabularyID == nil) == (req.SentenceID == nil) {
		logger.Warn("Invalid attempt target",
			"has_vocabulary_id", req.VocabularyID != nil,
			"has_sentence_id", req.SentenceID != nil,
		)
		return nil, model.NewAppError("VALIDATION_ERROR", "vocabulary_idとsentence_idはどちらか一方のみ指定してください。", "", model.ErrInvalidInput)
	}
	if req.IsCorrect == nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "回答の正誤は必須項目です。", "is_correct", model.ErrInvalidInput)
	}

	now := time.Now()
	record := &model.PracticeRecord{
		ID:             uuid.New(),
		UserID:         userID,
		SessionID:      req.SessionID,
		VocabularyID:   req.VocabularyID,
		SentenceID:     req.SentenceID,
		UserAnswer:     req.UserAnswer,
		CorrectAnswer:  req.CorrectAnswer,
		IsCorrect:      req.IsCorrect,
		ResponseTimeMs: req.ResponseTimeMs,
		PracticedAt:    now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.VocabularyID != nil {
			// 正解: mastery_level + 1 / 不正解: -1 (0でクランプ)、review_count + 1
			if err := s.vocabRepo.ApplyReview(ctx, tx, userID, *req.VocabularyID, *req.IsCorrect, now); err != nil {
				return err
			}
		} else {
			// 例文は正誤によらず出題回数のみ追跡する
			if err := s.sentenceRepo.MarkUsed(ctx, tx, userID, *req.SentenceID, now); err != nil {
				return err
			}
		}
		return s.practiceRepo.Create(ctx, tx, record)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Attempt target not found", "error", err)
			return nil, model.NewAppError("NOT_FOUND", "練習対象のアイテムが見つかりませんでした。", "", model.ErrNotFound)
		}
		logger.Error("Failed to record practice attempt", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "解答の記録に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Practice attempt recorded", "record_id", record.ID, "is_correct", *req.IsCorrect)
	return &model.RecordAttemptResponse{RecordID: record.ID}, nil
}
