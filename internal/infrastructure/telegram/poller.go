package telegram

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/na2na-p/terabridge/internal/usecase"
)

const (
	DefaultPollTimeout = 60 * time.Second
	pollErrorBackoff   = 3 * time.Second
)

// UpdateHandler は受信した更新を処理する。処理枠が埋まっている間だけ呼び出し側をブロックしてよい
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

// Poller は getUpdates によるロングポーリングで更新を受け取る
type Poller struct {
	bot     BotAPI
	handler UpdateHandler
	timeout time.Duration
	sleep   usecase.Sleeper
}

func NewPoller(bot BotAPI, handler UpdateHandler, timeout time.Duration, sleep usecase.Sleeper) *Poller {
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}
	if sleep == nil {
		sleep = usecase.SleepContext
	}
	return &Poller{bot: bot, handler: handler, timeout: timeout, sleep: sleep}
}

type pollResult struct {
	updates []tgbotapi.Update
	err     error
}

// Run は ctx がキャンセルされるまで更新を取得し続ける
func (p *Poller) Run(ctx context.Context) error {
	offset := 0
	for {
		if ctx.Err() != nil {
			return nil
		}

		cfg := tgbotapi.NewUpdate(offset)
		cfg.Timeout = int(p.timeout.Seconds())

		// getUpdates 自体は ctx を受け取らないため、キャンセル時は応答を待たずに抜ける
		done := make(chan pollResult, 1)
		go func() {
			updates, err := p.bot.GetUpdates(cfg)
			done <- pollResult{updates: updates, err: err}
		}()

		var res pollResult
		select {
		case <-ctx.Done():
			return nil
		case res = <-done:
		}

		if res.err != nil {
			wait := pollErrorBackoff
			if d, ok := usecase.RetryAfter(classifyError(res.err)); ok {
				wait = d
			}
			slog.Warn("failed to get updates", "error", res.err, "retry_in", wait.String())
			if err := p.sleep(ctx, wait); err != nil {
				return nil
			}
			continue
		}

		for _, u := range res.updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			p.handler.HandleUpdate(ctx, u)
		}
	}
}
