package usecase

import (
	"context"
	"log/slog"
)

// replyDenial は拒否理由を1回だけ利用者へ伝える。判定処理が通知済みなら何もしない
func replyDenial(ctx context.Context, messenger Messenger, req AdmissionRequest, replyTo int, d *Denial) {
	if d == nil || d.Notified {
		return
	}
	text := DenialText(d)
	if req.CallbackID != "" {
		if err := messenger.AnswerCallback(ctx, req.CallbackID, text, true); err == nil {
			return
		}
	}
	if _, err := messenger.SendText(ctx, OutgoingMessage{ChatID: req.ChatID, Text: text, ReplyTo: replyTo}); err != nil {
		slog.Warn("failed to send denial message",
			"caller_id", req.Caller.ID.Int64(),
			"reason", string(d.Reason),
			"error", err,
		)
	}
}
