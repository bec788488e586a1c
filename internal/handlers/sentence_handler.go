// internal/handlers/sentence_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/service"
	"lingualearn/internal/webutil"
)

type SentenceHandler struct {
	service service.SentenceService
	logger  *slog.Logger
}

func NewSentenceHandler(s service.SentenceService, logger *slog.Logger) *SentenceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SentenceHandler{
		service: s,
		logger:  logger,
	}
}

// PostSentence は新しい例文リソースを作成するためのハンドラ
func (h *SentenceHandler) PostSentence(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSentence"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.PostSentenceRequest
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

	sentence, err := h.service.CreateSentence(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating sentence in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Sentence created successfully", slog.String("sentence_id", sentence.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, sentence)
}
