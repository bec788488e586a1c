// internal/handlers/vocabulary_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/service"
	"lingualearn/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type VocabularyHandler struct {
	service service.VocabularyService
	logger  *slog.Logger
}

func NewVocabularyHandler(s service.VocabularyService, logger *slog.Logger) *VocabularyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabularyHandler{
		service: s,
		logger:  logger,
	}
}

// PostVocabulary は新しい単語リソースを作成するためのハンドラ
func (h *VocabularyHandler) PostVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostVocabulary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.PostVocabularyRequest
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

	vocab, err := h.service.CreateVocabulary(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Vocabulary created successfully", slog.String("vocabulary_id", vocab.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, vocab)
}

// BulkPostVocabulary は改行区切りテキストから単語を一括登録するためのハンドラ
func (h *VocabularyHandler) BulkPostVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "BulkPostVocabulary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.BulkVocabularyRequest
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

	vocabs, err := h.service.BulkImportVocabulary(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error bulk importing vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Vocabulary bulk imported successfully", slog.Int("count", len(vocabs)))
	webutil.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"created": len(vocabs),
		"items":   vocabs,
	})
}

// GetVocabularies は単語リソースの一覧を取得するためのハンドラ。
// クエリパラメータ: language_id (必須), difficulty, limit
func (h *VocabularyHandler) GetVocabularies(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabularies"))

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

	vocabs, err := h.service.ListVocabulary(r.Context(), userID, filter)
	if err != nil {
		logger.Error("Error listing vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	if vocabs == nil {
		vocabs = []*model.Vocabulary{}
	}
	logger.Info("Vocabulary listed successfully", slog.Int("count", len(vocabs)))
	webutil.RespondWithJSON(w, http.StatusOK, vocabs)
}

// GetVocabulary は単語リソースを1件取得するためのハンドラ
func (h *VocabularyHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabulary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	vocabID, err := uuid.Parse(chi.URLParam(r, "vocabulary_id"))
	if err != nil {
		logger.Warn("Invalid vocabulary ID format", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_ID_FORMAT", "単語IDの形式が正しくありません。", "vocabulary_id", model.ErrInvalidInput))
		return
	}

	vocab, err := h.service.GetVocabulary(r.Context(), userID, vocabID)
	if err != nil {
		logger.Error("Error getting vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, vocab)
}

// DeleteVocabulary は単語を選択対象から外すためのハンドラ
func (h *VocabularyHandler) DeleteVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteVocabulary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	vocabID, err := uuid.Parse(chi.URLParam(r, "vocabulary_id"))
	if err != nil {
		logger.Warn("Invalid vocabulary ID format", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_ID_FORMAT", "単語IDの形式が正しくありません。", "vocabulary_id", model.ErrInvalidInput))
		return
	}

	if err := h.service.DeactivateVocabulary(r.Context(), userID, vocabID); err != nil {
		logger.Error("Error deactivating vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Vocabulary deactivated successfully", slog.String("vocabulary_id", vocabID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// parseVocabularyFilter はクエリパラメータから一覧取得のフィルタを組み立てます
func parseVocabularyFilter(r *http.Request) (model.VocabularyFilter, error) {
	var filter model.VocabularyFilter

	languageIDStr := r.URL.Query().Get("language_id")
	if languageIDStr == "" {
		return filter, model.NewAppError("VALIDATION_ERROR", "言語が指定されていません。", "language_id", model.ErrInvalidInput)
	}
	languageID, err := strconv.ParseUint(languageIDStr, 10, 32)
	if err != nil {
		return filter, model.NewAppError("INVALID_ID_FORMAT", "言語IDの形式が正しくありません。", "language_id", model.ErrInvalidInput)
	}
	filter.LanguageID = uint(languageID)

	if difficultyStr := r.URL.Query().Get("difficulty"); difficultyStr != "" {
		difficulty := model.DifficultyLevel(difficultyStr)
		switch difficulty {
		case model.DifficultyBeginner, model.DifficultyIntermediate, model.DifficultyAdvanced:
			filter.Difficulty = &difficulty
		default:
			return filter, model.NewAppError("VALIDATION_ERROR", "難易度の値が正しくありません。", "difficulty", model.ErrInvalidInput)
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return filter, model.NewAppError("VALIDATION_ERROR", "件数の値が正しくありません。", "limit", model.ErrInvalidInput)
		}
		filter.Limit = limit
	}

	return filter, nil
}
