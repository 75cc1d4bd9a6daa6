package handler

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/labstack/echo/v4"
	"github.com/na2na-p/terabridge/internal/handler/middleware"
)

// WebhookSecretHeader はsetWebhookで登録したシークレットが載るヘッダー
const WebhookSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// UpdateDispatcher は受信した更新を非同期に処理する
type UpdateDispatcher interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

type WebhookHandler struct {
	dispatcher UpdateDispatcher
	secret     string
	// base は更新処理に渡すコンテキスト。リクエスト終了後も処理を続けるため、リクエストのコンテキストは使わない
	base context.Context
}

func NewWebhookHandler(base context.Context, dispatcher UpdateDispatcher, secret string) *WebhookHandler {
	return &WebhookHandler{
		dispatcher: dispatcher,
		secret:     secret,
		base:       base,
	}
}

func (h *WebhookHandler) Handle(c echo.Context) error {
	if h.secret != "" {
		got := c.Request().Header.Get(WebhookSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			return middleware.NewAppError(http.StatusUnauthorized, "invalid webhook secret", nil)
		}
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(c.Request().Body).Decode(&update); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "invalid update payload", err)
	}

	slog.Debug("webhook update received", "update_id", update.UpdateID)
	h.dispatcher.HandleUpdate(h.base, update)
	return c.NoContent(http.StatusOK)
}
