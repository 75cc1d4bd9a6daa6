package telegram

import (
	"context"
	"errors"
	"log/slog"

	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/usecase"
)

var _ usecase.ArchiveSink = (*ChatArchiveSink)(nil)

// ChatArchiveSink はアップロード済みメッセージをアーカイブ用チャットへ転送する
type ChatArchiveSink struct {
	messenger usecase.Messenger
	chat      domain.ChatID
}

func NewChatArchiveSink(messenger usecase.Messenger, chat domain.ChatID) (*ChatArchiveSink, error) {
	if chat == 0 {
		return nil, usecase.ErrNoArchiveDestination
	}
	return &ChatArchiveSink{messenger: messenger, chat: chat}, nil
}

func (s *ChatArchiveSink) Name() string {
	return "telegram_archive"
}

func (s *ChatArchiveSink) Archive(ctx context.Context, item usecase.ArchiveItem) error {
	if item.Media.IsZero() {
		return errors.New("nothing to forward: media reference is empty")
	}
	if _, err := s.messenger.Forward(ctx, item.Media, s.chat); err != nil {
		return err
	}
	slog.Info("forwarded to archive chat",
		"caller_id", item.Caller.Int64(),
		"archive_chat_id", s.chat.Int64(),
		"filename", item.Filename,
	)
	return nil
}
