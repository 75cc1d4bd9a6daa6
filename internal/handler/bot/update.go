package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/usecase"
)

const (
	commandStart     = "start"
	commandHelp      = "help"
	commandGetToken  = "get_token"
	commandBroadcast = "broadcast"
)

func callerFrom(user *tgbotapi.User) (domain.Caller, bool) {
	if user == nil || user.IsBot {
		return domain.Caller{}, false
	}
	id, err := domain.NewCallerID(user.ID)
	if err != nil {
		return domain.Caller{}, false
	}
	return domain.Caller{
		ID:        id,
		FirstName: user.FirstName,
		Username:  user.UserName,
	}, true
}

// messageRef はコールバック元のメッセージを返す。メッセージが取得できない場合はゼロ値
func messageRef(msg *tgbotapi.Message) usecase.MessageRef {
	if msg == nil || msg.Chat == nil {
		return usecase.MessageRef{}
	}
	return usecase.MessageRef{ChatID: domain.ChatID(msg.Chat.ID), MessageID: msg.MessageID}
}

func isPrivate(msg *tgbotapi.Message) bool {
	return msg != nil && msg.Chat != nil && msg.Chat.IsPrivate()
}
