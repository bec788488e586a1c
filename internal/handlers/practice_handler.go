// internal/handlers/practice_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/service"
	"lingualearn/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PracticeHandler は練習フロー (出題・採点・記録・セッション) のハンドラ群です
type PracticeHandler struct {
	practiceService service.PracticeService
	sentenceService service.SentenceService
	sessionService  service.SessionService
	logger          *slog.Logger
}

func NewPracticeHandler(
	practiceService service.PracticeService,
	sentenceService service.SentenceService,
	sessionService service.SessionService,
	logger *slog.Logger,
) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{
		practiceService: practiceService,
		sentenceService: sentenceService,
		sessionService:  sessionService,
		logger:          logger,
	}
}

// GetPracticeVocabulary は練習用の単語リストを取得するためのハンドラ。
// 習熟度の低い単語が優先され、同率はランダムに並びます。
// クエリパラメータ: language_id (必須), difficulty, limit
func (h *PracticeHandler) GetPracticeVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPracticeVocabulary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	filter, err := parseVocabularyFilter(r)
	if err != nil {
		logger.Warn("Invalid query parameters", slog.String("error", err.Error()))
		webutil.HandleError(w, err)
		return
	}

	vocabs, err := h.practiceService.SelectPracticeVocabulary(r.Context(), userID, filter.LanguageID, filter.Difficulty, filter.Limit)
	if err != nil {
		logger.Error("Error selecting practice vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	// 候補ゼロは正常系 (空リストを返す)
	if vocabs == nil {
		vocabs = []*model.Vocabulary{}
	}
	logger.Info("Practice vocabulary selected", slog.Int("count", len(vocabs)))
	webutil.RespondWithJSON(w, http.StatusOK, vocabs)
}

// PostPracticeSentence は練習用の例文を1つ取得するためのハンドラ。
// 保存済み例文が尽きている場合は生成コラボレータにフォールバックします。
func (h *PracticeHandler) PostPracticeSentence(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostPracticeSentence"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.PracticeSentenceRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, validationError(err))
		return
	}

	sentence, err := h.sentenceService.PracticeSentence(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error selecting practice sentence in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Practice sentence returned", slog.String("sentence_id", sentence.ID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, sentence)
}

// PostScoreTranslation は翻訳解答を採点するためのハンドラ。
// 単語の重なりによる類似度スコアと固定閾値による正誤判定を返します。
func (h *PracticeHandler) PostScoreTranslation(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostScoreTranslation"))

	var req model.ScoreTranslationRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, validationError(err))
		return
	}

	result := service.ScoreTranslation(req.UserTranslation, req.CorrectTranslation)
	webutil.RespondWithJSON(w, http.StatusOK, result)
}

// PostRecordAttempt は1回の解答を記録するためのハンドラ。
// 対象の習熟度更新と記録の追記を1トランザクションで行います。
func (h *PracticeHandler) PostRecordAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostRecordAttempt"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.RecordAttemptRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, validationError(err))
		return
	}

	result, err := h.practiceService.RecordAttempt(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error recording attempt in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Attempt recorded successfully", slog.String("record_id", result.RecordID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, result)
}

// PostStartSession は練習セッションを開始するためのハンドラ
func (h *PracticeHandler) PostStartSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostStartSession"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.StartSessionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, validationError(err))
		return
	}

	session, err := h.sessionService.StartSession(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error starting session in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Session started successfully", slog.String("session_id", session.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, &model.StartSessionResponse{SessionID: session.ID})
}

// PostEndSession は練習セッションを終了するためのハンドラ。
// 終了済みセッションへの再実行は 404 になります。
func (h *PracticeHandler) PostEndSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostEndSession"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	sessionID, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		logger.Warn("Invalid session ID format", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_ID_FORMAT", "セッションIDの形式が正しくありません。", "session_id", model.ErrInvalidInput))
		return
	}

	var req model.EndSessionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, validationError(err))
		return
	}

	if err := h.sessionService.EndSession(r.Context(), userID, sessionID, &req); err != nil {
		logger.Error("Error ending session in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	session, err := h.sessionService.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		logger.Error("Error fetching ended session", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Session ended successfully", slog.String("session_id", sessionID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, session)
}
