// internal/handlers/handlers.go
package handlers

import (
	"errors"

	"lingualearn/internal/model"
	"lingualearn/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// validationError は validator のエラーをクライアント向けの AppError に変換します。
// 最初のエラーを代表として日本語メッセージに翻訳して返します。
func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		firstErr := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(webutil.Trans),
			firstErr.Field(),
			model.ErrInvalidInput,
		)
	}
	return err
}
