package telegram

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/na2na-p/terabridge/internal/usecase"
)

// classifyError はBot APIのエラーを usecase 層のエラーに変換する
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	msg := strings.ToLower(apiErr.Message)
	switch {
	case apiErr.RetryAfter > 0:
		return usecase.NewRateLimitError(time.Duration(apiErr.RetryAfter)*time.Second, err)
	case apiErr.Code == http.StatusForbidden && strings.Contains(msg, "deactivated"):
		return fmt.Errorf("%w: %w", usecase.ErrRecipientDeactivated, err)
	case apiErr.Code == http.StatusForbidden:
		return fmt.Errorf("%w: %w", usecase.ErrRecipientBlocked, err)
	case apiErr.Code == http.StatusRequestEntityTooLarge || strings.Contains(msg, "too big"):
		return fmt.Errorf("%w: %w", usecase.ErrTooLarge, err)
	}
	return err
}

// isNotMemberError は getChatMember が対象ユーザーを見つけられなかったかを判定する
func isNotMemberError(err error) bool {
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusBadRequest {
		return false
	}
	msg := strings.ToLower(apiErr.Message)
	return strings.Contains(msg, "user not found") ||
		strings.Contains(msg, "member not found") ||
		strings.Contains(msg, "participant_id_invalid")
}

// isNotModifiedError は同じ内容での編集を拒否されたかを判定する
func isNotModifiedError(err error) bool {
	var apiErr *tgbotapi.Error
	return errors.As(err, &apiErr) && strings.Contains(strings.ToLower(apiErr.Message), "message is not modified")
}
