package telegram

import (
	"fmt"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI は *tgbotapi.BotAPI のうち利用する操作
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
	GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error)
	GetInviteLink(config tgbotapi.ChatInviteLinkConfig) (string, error)
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
	GetMe() (tgbotapi.User, error)
	MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
}

var _ BotAPI = (*tgbotapi.BotAPI)(nil)

type BotConfig struct {
	Token string
	// APIEndpoint はローカルBot APIサーバーを使う場合に指定する。
	// 形式は tgbotapi.APIEndpoint と同じ "https://host/bot%s/%s"
	APIEndpoint string
}

// NewBot はBotAPIクライアントを作成する。作成時に getMe でトークンを検証する
func NewBot(cfg BotConfig, client *http.Client) (*tgbotapi.BotAPI, error) {
	if client == nil {
		client = &http.Client{}
	}
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	if strings.Count(endpoint, "%s") != 2 {
		return nil, fmt.Errorf("api endpoint must contain two %%s verbs: %q", endpoint)
	}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.Token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot client: %w", err)
	}
	return bot, nil
}
