// internal/service/user_service.go
package service

import (
	"context"
	"errors"

	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService はユーザーと学習言語の管理を担います
type UserService interface {
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	ListLanguages(ctx context.Context) ([]*model.Language, error)
	ListUserLanguages(ctx context.Context, userID uuid.UUID) ([]*model.UserLanguage, error)
	AddLanguage(ctx context.Context, userID uuid.UUID, req *model.AddLanguageRequest) (*model.UserLanguage, error)
	RemoveLanguage(ctx context.Context, userID uuid.UUID, languageID uint) error
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	langRepo repository.LanguageRepository
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository, langRepo repository.LanguageRepository) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
		langRepo: langRepo,
	}
}

func (s *userService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	user := &model.User{
		UserID: uuid.New(),
		Name:   req.Name,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Create(ctx, tx, user)
	})
	if err != nil {
		logger.Error("Failed to create user", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("User created", "user_id", user.UserID)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "user_id", model.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

// ListLanguages は学習可能な言語カタログを返します (ユーザーに依存しない参照データ)
func (s *userService) ListLanguages(ctx context.Context) ([]*model.Language, error) {
	logger := middleware.GetLogger(ctx)

	languages, err := s.langRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list languages", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "言語一覧の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return languages, nil
}

func (s *userService) ListUserLanguages(ctx context.Context, userID uuid.UUID) ([]*model.UserLanguage, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	userLangs, err := s.langRepo.FindUserLanguages(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list user languages", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習言語一覧の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return userLangs, nil
}

// AddLanguage はユーザーの学習言語を追加します。
// 存在しない言語IDは NOT_FOUND、追加済みの言語は CONFLICT を返します。
func (s *userService) AddLanguage(ctx context.Context, userID uuid.UUID, req *model.AddLanguageRequest) (*model.UserLanguage, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "language_id", req.LanguageID)

	if _, err := s.langRepo.FindByID(ctx, s.db, req.LanguageID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LANGUAGE_NOT_FOUND", "指定された言語が見つかりません。", "language_id", model.ErrNotFound)
		}
		logger.Error("Failed to find language", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "言語の確認中にエラーが発生しました。", "", model.ErrInternalServer)
	}

	proficiency := req.ProficiencyLevel
	if proficiency == "" {
		proficiency = "beginner"
	}

	userLang := &model.UserLanguage{
		UserID:           userID,
		LanguageID:       req.LanguageID,
		ProficiencyLevel: proficiency,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.langRepo.AddUserLanguage(ctx, tx, userLang)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("LANGUAGE_ALREADY_ADDED", "この言語はすでに学習対象に追加されています。", "language_id", model.ErrConflict)
		}
		logger.Error("Failed to add user language", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習言語の追加に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("User language added", "proficiency_level", proficiency)
	return userLang, nil
}

func (s *userService) RemoveLanguage(ctx context.Context, userID uuid.UUID, languageID uint) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "language_id", languageID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.langRepo.RemoveUserLanguage(ctx, tx, userID, languageID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("LANGUAGE_NOT_ADDED", "この言語は学習対象に追加されていません。", "language_id", model.ErrNotFound)
		}
		logger.Error("Failed to remove user language", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "学習言語の削除に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("User language removed")
	return nil
}
