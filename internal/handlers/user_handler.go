// internal/handlers/user_handler.go
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
)

type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		service: s,
		logger:  logger,
	}
}

// CreateUser は新しいユーザーを作成するためのハンドラ (認証不要)
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateUser"))

	var req model.CreateUserRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, validationError(err))
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating user in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("User created successfully", slog.String("user_id", user.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, &model.UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	})
}

// GetMe は認証済みユーザー自身の情報を取得するためのハンドラ
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting user in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, &model.UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	})
}

// GetLanguages は学習可能な言語カタログの一覧を取得するためのハンドラ
func (h *UserHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLanguages"))

	languages, err := h.service.ListLanguages(r.Context())
	if err != nil {
		logger.Error("Error listing languages in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	if languages == nil {
		languages = []*model.Language{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, languages)
}

// GetUserLanguages はユーザーの学習中言語の一覧を取得するためのハンドラ
func (h *UserHandler) GetUserLanguages(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetUserLanguages"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	userLangs, err := h.service.ListUserLanguages(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing user languages in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	if userLangs == nil {
		userLangs = []*model.UserLanguage{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, userLangs)
}

// AddUserLanguage は学習言語を追加するためのハンドラ
func (h *UserHandler) AddUserLanguage(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AddUserLanguage"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.AddLanguageRequest
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

	userLang, err := h.service.AddLanguage(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error adding user language in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("User language added successfully", slog.Uint64("language_id", uint64(userLang.LanguageID)))
	webutil.RespondWithJSON(w, http.StatusCreated, userLang)
}

// RemoveUserLanguage は学習言語を削除するためのハンドラ
func (h *UserHandler) RemoveUserLanguage(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RemoveUserLanguage"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	languageID, err := strconv.ParseUint(chi.URLParam(r, "language_id"), 10, 32)
	if err != nil {
		logger.Warn("Invalid language ID format", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_ID_FORMAT", "言語IDの形式が正しくありません。", "language_id", model.ErrInvalidInput))
		return
	}

	if err := h.service.RemoveLanguage(r.Context(), userID, uint(languageID)); err != nil {
		logger.Error("Error removing user language in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("User language removed successfully", slog.Uint64("language_id", languageID))
	w.WriteHeader(http.StatusNoContent)
}
