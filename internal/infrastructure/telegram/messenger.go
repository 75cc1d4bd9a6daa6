package telegram

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/usecase"
)

var _ usecase.Messenger = (*Messenger)(nil)

// streamableExtensions はビデオとして送信する拡張子
var streamableExtensions = map[string]struct{}{
	".mp4": {}, ".mkv": {}, ".mov": {}, ".webm": {}, ".m4v": {}, ".avi": {},
}

// Messenger は usecase.Messenger のBot API実装
type Messenger struct {
	bot BotAPI
}

func NewMessenger(bot BotAPI) *Messenger {
	return &Messenger{bot: bot}
}

func (m *Messenger) SendText(ctx context.Context, msg usecase.OutgoingMessage) (usecase.MessageRef, error) {
	if err := ctx.Err(); err != nil {
		return usecase.MessageRef{}, err
	}
	cfg := tgbotapi.NewMessage(msg.ChatID.Int64(), msg.Text)
	cfg.ReplyToMessageID = msg.ReplyTo
	cfg.DisableWebPagePreview = msg.DisablePreview
	if markup, ok := keyboard(msg.Buttons); ok {
		cfg.ReplyMarkup = markup
	}

	sent, err := m.bot.Send(cfg)
	if err != nil {
		return usecase.MessageRef{}, classifyError(err)
	}
	return usecase.MessageRef{ChatID: msg.ChatID, MessageID: sent.MessageID}, nil
}

// EditText は同一内容による "message is not modified" を成功として扱う
func (m *Messenger) EditText(ctx context.Context, ref usecase.MessageRef, text string, buttons [][]usecase.Button) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cfg := tgbotapi.NewEditMessageText(ref.ChatID.Int64(), ref.MessageID, text)
	cfg.DisableWebPagePreview = true
	if markup, ok := keyboard(buttons); ok {
		cfg.ReplyMarkup = &markup
	}

	if _, err := m.bot.Request(cfg); err != nil {
		if isNotModifiedError(err) {
			return nil
		}
		return classifyError(err)
	}
	return nil
}

func (m *Messenger) DeleteMessage(ctx context.Context, ref usecase.MessageRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := m.bot.Request(tgbotapi.NewDeleteMessage(ref.ChatID.Int64(), ref.MessageID)); err != nil {
		return classifyError(err)
	}
	return nil
}

func (m *Messenger) AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cfg := tgbotapi.NewCallback(callbackID, text)
	if alert {
		cfg = tgbotapi.NewCallbackWithAlert(callbackID, text)
	}
	if _, err := m.bot.Request(cfg); err != nil {
		return classifyError(err)
	}
	return nil
}

// SendMediaStream は本文をメモリに載せずマルチパートで送る。動画の拡張子はストリーミング再生可能なビデオとして送る
func (m *Messenger) SendMediaStream(ctx context.Context, upload usecase.MediaUpload) (usecase.MessageRef, error) {
	if err := ctx.Err(); err != nil {
		return usecase.MessageRef{}, err
	}
	file := tgbotapi.FileReader{Name: upload.Filename, Reader: upload.Body}

	var cfg tgbotapi.Chattable
	if _, ok := streamableExtensions[strings.ToLower(filepath.Ext(upload.Filename))]; ok {
		video := tgbotapi.NewVideo(upload.ChatID.Int64(), file)
		video.Caption = upload.Caption
		video.SupportsStreaming = true
		cfg = video
	} else {
		doc := tgbotapi.NewDocument(upload.ChatID.Int64(), file)
		doc.Caption = upload.Caption
		cfg = doc
	}

	sent, err := m.bot.Send(cfg)
	if err != nil {
		return usecase.MessageRef{}, classifyError(err)
	}
	return usecase.MessageRef{ChatID: upload.ChatID, MessageID: sent.MessageID}, nil
}

func (m *Messenger) Forward(ctx context.Context, ref usecase.MessageRef, dest domain.ChatID) (usecase.MessageRef, error) {
	if err := ctx.Err(); err != nil {
		return usecase.MessageRef{}, err
	}
	sent, err := m.bot.Send(tgbotapi.NewForward(dest.Int64(), ref.ChatID.Int64(), ref.MessageID))
	if err != nil {
		return usecase.MessageRef{}, classifyError(err)
	}
	return usecase.MessageRef{ChatID: dest, MessageID: sent.MessageID}, nil
}

// GetMembership はユーザーが見つからない場合 usecase.ErrNotChatMember を返す
func (m *Messenger) GetMembership(ctx context.Context, chat domain.ChatID, caller domain.CallerID) (usecase.MembershipStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	member, err := m.bot.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chat.Int64(), UserID: caller.Int64()},
	})
	if err != nil {
		if isNotMemberError(err) {
			return usecase.MembershipLeft, fmt.Errorf("%w: %w", usecase.ErrNotChatMember, err)
		}
		return "", classifyError(err)
	}
	return usecase.MembershipStatus(member.Status), nil
}

// ChatInvite はチャットの招待リンクを返す。公開ユーザー名があればそれを優先する
func (m *Messenger) ChatInvite(ctx context.Context, chat domain.ChatID) (usecase.ChatInvite, error) {
	if err := ctx.Err(); err != nil {
		return usecase.ChatInvite{}, err
	}
	info, err := m.bot.GetChat(tgbotapi.ChatInfoConfig{ChatConfig: tgbotapi.ChatConfig{ChatID: chat.Int64()}})
	if err != nil {
		return usecase.ChatInvite{}, classifyError(err)
	}

	invite := usecase.ChatInvite{Title: info.Title, Link: info.InviteLink}
	if invite.Title == "" {
		invite.Title = "our channel"
	}
	if info.UserName != "" {
		invite.Link = "https://t.me/" + info.UserName
	}
	if invite.Link != "" {
		return invite, nil
	}

	link, err := m.bot.GetInviteLink(tgbotapi.ChatInviteLinkConfig{ChatConfig: tgbotapi.ChatConfig{ChatID: chat.Int64()}})
	if err != nil {
		return usecase.ChatInvite{}, classifyError(err)
	}
	invite.Link = link
	return invite, nil
}

func keyboard(rows [][]usecase.Button) (tgbotapi.InlineKeyboardMarkup, bool) {
	var out [][]tgbotapi.InlineKeyboardButton
	for _, row := range rows {
		var buttons []tgbotapi.InlineKeyboardButton
		for _, b := range row {
			if b.URL != "" {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(b.Text, b.URL))
				continue
			}
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.CallbackData))
		}
		if len(buttons) > 0 {
			out = append(out, buttons)
		}
	}
	if len(out) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	return tgbotapi.NewInlineKeyboardMarkup(out...), true
}
