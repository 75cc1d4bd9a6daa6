package bot

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/usecase"
)

// DefaultMaxConcurrentUpdates は同時に処理する更新数の既定値
const DefaultMaxConcurrentUpdates = 16

type UseCases struct {
	Link      LinkUseCaseInterface
	Token     TokenUseCaseInterface
	Broadcast BroadcastUseCaseInterface
	Welcome   WelcomeUseCaseInterface
}

// Dispatcher は受信した更新をコマンド、ボタン、リンクに振り分ける。
// 更新ごとにゴルーチンを起動し、同時実行数はセマフォで制限する
type Dispatcher struct {
	uc  UseCases
	sem chan struct{}
	wg  sync.WaitGroup
	// abort は Drain が待ちきれなかった場合に処理中の更新を打ち切る
	abort       context.Context
	abortCancel context.CancelFunc
}

func NewDispatcher(uc UseCases, maxConcurrent int) *Dispatcher {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentUpdates
	}
	abort, abortCancel := context.WithCancel(context.Background())
	return &Dispatcher{
		uc:          uc,
		sem:         make(chan struct{}, maxConcurrent),
		abort:       abort,
		abortCancel: abortCancel,
	}
}

// HandleUpdate は処理枠が空くまで待ってから更新を非同期に処理する。
// 枠を待つ間に ctx が終了した場合は更新を破棄する。
// 受け付けた更新は ctx の終了では止まらず、Drain がタイムアウトした時点で打ち切られる
func (d *Dispatcher) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	select {
	case d.sem <- struct{}{}:
	case <-ctx.Done():
		slog.Warn("update dropped on shutdown", "update_id", update.UpdateID)
		return
	}

	hctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(d.abort, cancel)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() { <-d.sem }()
		defer stop()
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panic while handling update",
					"update_id", update.UpdateID,
					"panic", r,
					"stack", string(debug.Stack()),
				)
			}
		}()
		d.Dispatch(hctx, update)
	}()
}

// Wait は処理中の更新がすべて終わるまで待つ
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Drain は処理中の更新の終了を ctx の期限まで待つ。
// 期限を過ぎた場合は残りの更新をキャンセルしてエラーを返す
func (d *Dispatcher) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		d.abortCancel()
		return fmt.Errorf("in-flight updates did not finish: %w", ctx.Err())
	}
}

// Dispatch は1件の更新を同期的に処理する
func (d *Dispatcher) Dispatch(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		d.dispatchCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		d.dispatchMessage(ctx, update.Message)
	}
}

func (d *Dispatcher) dispatchMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !isPrivate(msg) || msg.Text == "" {
		return
	}
	caller, ok := callerFrom(msg.From)
	if !ok {
		return
	}
	chatID := domain.ChatID(msg.Chat.ID)

	var err error
	switch msg.Command() {
	case commandStart:
		err = d.uc.Welcome.Start(ctx, usecase.WelcomeRequest{Caller: caller, ChatID: chatID, MessageID: msg.MessageID})
	case commandHelp:
		err = d.uc.Welcome.Help(ctx, usecase.WelcomeRequest{Caller: caller, ChatID: chatID, MessageID: msg.MessageID})
	case commandGetToken:
		err = d.uc.Token.Execute(ctx, usecase.TokenRequest{Caller: caller, ChatID: chatID, MessageID: msg.MessageID})
	case commandBroadcast:
		_, err = d.uc.Broadcast.Execute(ctx, broadcastRequest(caller, chatID, msg))
	default:
		// 未知のコマンドもリンクとして扱い、形式エラーの案内を返す
		_, err = d.uc.Link.Execute(ctx, usecase.LinkRequest{
			Caller:    caller,
			ChatID:    chatID,
			MessageID: msg.MessageID,
			Text:      msg.Text,
		})
	}
	if err != nil {
		slog.Error("failed to handle message",
			"caller_id", caller.ID.Int64(),
			"command", msg.Command(),
			"error", err,
		)
	}
}

// broadcastRequest はコマンドの引数を優先し、引数がなければ返信先のメッセージを転送対象にする
func broadcastRequest(caller domain.Caller, chatID domain.ChatID, msg *tgbotapi.Message) usecase.BroadcastRequest {
	req := usecase.BroadcastRequest{
		Caller:    caller,
		ChatID:    chatID,
		MessageID: msg.MessageID,
		Text:      msg.CommandArguments(),
	}
	if req.Text == "" && msg.ReplyToMessage != nil {
		ref := usecase.MessageRef{ChatID: chatID, MessageID: msg.ReplyToMessage.MessageID}
		req.Source = &ref
	}
	return req
}

func (d *Dispatcher) dispatchCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	caller, ok := callerFrom(cb.From)
	if !ok {
		return
	}
	origin := messageRef(cb.Message)
	chatID := origin.ChatID
	if chatID == 0 {
		chatID = caller.ID.ChatID()
	}

	var err error
	switch cb.Data {
	case usecase.CallbackGetToken:
		err = d.uc.Token.Execute(ctx, usecase.TokenRequest{Caller: caller, ChatID: chatID, CallbackID: cb.ID})
	case usecase.CallbackHelp:
		err = d.uc.Welcome.ShowHelp(ctx, usecase.WelcomeRequest{Caller: caller, ChatID: chatID, CallbackID: cb.ID, Edit: origin})
	case usecase.CallbackStart:
		err = d.uc.Welcome.ShowStart(ctx, usecase.WelcomeRequest{Caller: caller, ChatID: chatID, CallbackID: cb.ID, Edit: origin})
	default:
		slog.Debug("unknown callback data", "caller_id", caller.ID.Int64(), "data", cb.Data)
		return
	}
	if err != nil {
		slog.Error("failed to handle callback",
			"caller_id", caller.ID.Int64(),
			"data", cb.Data,
			"error", err,
		)
	}
}
