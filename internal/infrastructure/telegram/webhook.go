package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SetWebhook は更新の配信先を登録する。secret は X-Telegram-Bot-Api-Secret-Token ヘッダーで返ってくる
func SetWebhook(bot BotAPI, url, secret string) error {
	params := tgbotapi.Params{"url": url}
	if secret != "" {
		params["secret_token"] = secret
	}
	resp, err := bot.MakeRequest("setWebhook", params)
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	if !resp.Ok {
		return fmt.Errorf("failed to set webhook: %s", resp.Description)
	}
	return nil
}

// DeleteWebhook はロングポーリングに切り替えるため登録済みの webhook を解除する
func DeleteWebhook(bot BotAPI) error {
	resp, err := bot.MakeRequest("deleteWebhook", tgbotapi.Params{})
	if err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	if !resp.Ok {
		return fmt.Errorf("failed to delete webhook: %s", resp.Description)
	}
	return nil
}
