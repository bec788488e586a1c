// internal/handlers/stats_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/service"
	"lingualearn/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
	logger  *slog.Logger
}

func NewStatsHandler(s service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{
		service: s,
		logger:  logger,
	}
}

// GetStats は学習統計を取得するためのハンドラ。
// クエリパラメータ language_id を指定すると言語ごとの集計に絞り込みます。
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var languageID *uint
	if languageIDStr := r.URL.Query().Get("language_id"); languageIDStr != "" {
		parsed, err := strconv.ParseUint(languageIDStr, 10, 32)
		if err != nil {
			logger.Warn("Invalid language ID format", slog.String("error", err.Error()))
			webutil.HandleError(w, model.NewAppError("INVALID_ID_FORMAT", "言語IDの形式が正しくありません。", "language_id", model.ErrInvalidInput))
			return
		}
		id := uint(parsed)
		languageID = &id
	}

	stats, err := h.service.GetStats(r.Context(), userID, languageID)
	if err != nil {
		logger.Error("Error getting stats in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats)
}
