package telegram

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MockBotAPI はBotAPIのモック実装
type MockBotAPI struct {
	SendFunc          func(c tgbotapi.Chattable) (tgbotapi.Message, error)
	RequestFunc       func(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMemberFunc func(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
	GetChatFunc       func(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error)
	GetInviteLinkFunc func(config tgbotapi.ChatInviteLinkConfig) (string, error)
	GetUpdatesFunc    func(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
	GetMeFunc         func() (tgbotapi.User, error)
	MakeRequestFunc   func(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
}

var errNotStubbed = errors.New("not stubbed")

func (m *MockBotAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m.SendFunc != nil {
		return m.SendFunc(c)
	}
	return tgbotapi.Message{}, errNotStubbed
}

func (m *MockBotAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if m.RequestFunc != nil {
		return m.RequestFunc(c)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (m *MockBotAPI) GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	if m.GetChatMemberFunc != nil {
		return m.GetChatMemberFunc(config)
	}
	return tgbotapi.ChatMember{}, errNotStubbed
}

func (m *MockBotAPI) GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error) {
	if m.GetChatFunc != nil {
		return m.GetChatFunc(config)
	}
	return tgbotapi.Chat{}, errNotStubbed
}

func (m *MockBotAPI) GetInviteLink(config tgbotapi.ChatInviteLinkConfig) (string, error) {
	if m.GetInviteLinkFunc != nil {
		return m.GetInviteLinkFunc(config)
	}
	return "", errNotStubbed
}

func (m *MockBotAPI) GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error) {
	if m.GetUpdatesFunc != nil {
		return m.GetUpdatesFunc(config)
	}
	return nil, errNotStubbed
}

func (m *MockBotAPI) GetMe() (tgbotapi.User, error) {
	if m.GetMeFunc != nil {
		return m.GetMeFunc()
	}
	return tgbotapi.User{}, errNotStubbed
}

func (m *MockBotAPI) MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error) {
	if m.MakeRequestFunc != nil {
		return m.MakeRequestFunc(endpoint, params)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func apiError(code int, message string, retryAfter int) *tgbotapi.Error {
	return &tgbotapi.Error{
		Code:               code,
		Message:            message,
		ResponseParameters: tgbotapi.ResponseParameters{RetryAfter: retryAfter},
	}
}
