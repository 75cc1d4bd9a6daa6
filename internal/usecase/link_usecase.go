package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/na2na-p/terabridge/internal/domain"
)

// DefaultResolveTimeout はリンク解決全体に与えるタイムアウト
const DefaultResolveTimeout = 30 * time.Second

type LinkRequest struct {
	Caller    domain.Caller
	ChatID    domain.ChatID
	MessageID int
	Text      string
}

type LinkUseCaseConfig struct {
	SizeLimitBytes int64
	ResolveTimeout time.Duration
}

// LinkUseCase は共有リンクの受付から転送完了の通知までをまとめる
type LinkUseCase struct {
	admission *AdmissionChain
	messenger Messenger
	resolver  LinkResolver
	// invalidator が nil の場合、取得失敗時の破棄を行わない
	invalidator ResolutionInvalidator
	pipeline    *TransferPipeline
	filter      *KeywordFilter
	metrics     Metrics
	cfg         LinkUseCaseConfig
}

func NewLinkUseCase(
	admission *AdmissionChain,
	messenger Messenger,
	resolver LinkResolver,
	invalidator ResolutionInvalidator,
	pipeline *TransferPipeline,
	filter *KeywordFilter,
	metrics Metrics,
	cfg LinkUseCaseConfig,
) *LinkUseCase {
	if cfg.SizeLimitBytes <= 0 {
		cfg.SizeLimitBytes = DefaultSizeLimit
	}
	if cfg.ResolveTimeout <= 0 {
		cfg.ResolveTimeout = DefaultResolveTimeout
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &LinkUseCase{
		admission:   admission,
		messenger:   messenger,
		resolver:    resolver,
		invalidator: invalidator,
		pipeline:    pipeline,
		filter:      filter,
		metrics:     metrics,
		cfg:         cfg,
	}
}

// Execute はメッセージ中の共有リンクを処理する。
// 利用者には拒否か失敗か成功のいずれか1つの終端ステータスが届く
func (u *LinkUseCase) Execute(ctx context.Context, req LinkRequest) (domain.TransferResult, error) {
	link, err := domain.ExtractShareLink(req.Text)
	if err != nil {
		u.reply(ctx, req, invalidLinkText())
		return domain.TransferResult{}, err
	}

	admissionReq := AdmissionRequest{Caller: req.Caller, ChatID: req.ChatID, Capability: CapabilityDownload}
	if decision := u.admission.Admit(ctx, admissionReq); !decision.IsAdmitted() {
		replyDenial(ctx, u.messenger, admissionReq, req.MessageID, decision.Denial)
		return domain.TransferResult{}, nil
	}

	status, err := u.messenger.SendText(ctx, OutgoingMessage{
		ChatID:  req.ChatID,
		Text:    processingText(),
		ReplyTo: req.MessageID,
	})
	if err != nil {
		slog.Error("failed to send status message", "caller_id", req.Caller.ID.Int64(), "error", err)
		return domain.TransferResult{}, err
	}

	desc, err := u.resolve(ctx, link)
	if err != nil {
		kind := domain.ResolutionKindOf(err)
		u.metrics.ResolutionFinished(string(kind))
		slog.Warn("failed to resolve share link",
			"caller_id", req.Caller.ID.Int64(),
			"kind", string(kind),
			"error", err,
		)
		u.finish(ctx, req, status, resolutionFailureText(kind))
		return domain.TransferResult{}, err
	}
	u.metrics.ResolutionFinished("success")

	if u.filter.Blocks(desc.Filename) {
		slog.Info("blocked by content filter", "caller_id", req.Caller.ID.Int64(), "filename", desc.Filename)
		u.finish(ctx, req, status, blockedContentText())
		return domain.TransferResult{}, nil
	}

	if err := u.messenger.EditText(ctx, status, startingDownloadText(desc), nil); err != nil {
		slog.Debug("failed to edit status message", "caller_id", req.Caller.ID.Int64(), "error", err)
	}

	result := u.pipeline.Run(ctx, desc, u.cfg.SizeLimitBytes, TransferTarget{
		Caller: req.Caller.ID,
		ChatID: req.ChatID,
		Status: status,
	})
	if !result.IsSuccess() {
		if result.Kind() == domain.FailureNetworkError {
			u.invalidate(ctx, link)
		}
		u.finish(ctx, req, status, transferFailureText(result))
		return result, nil
	}

	if err := u.messenger.DeleteMessage(ctx, status); err != nil {
		slog.Debug("failed to delete status message", "caller_id", req.Caller.ID.Int64(), "error", err)
	}
	slog.Info("transfer completed",
		"caller_id", req.Caller.ID.Int64(),
		"filename", desc.Filename,
		"bytes", result.FinalSizeBytes(),
	)
	return result, nil
}

func (u *LinkUseCase) resolve(ctx context.Context, link domain.ShareLink) (domain.TransferDescriptor, error) {
	rctx, cancel := context.WithTimeout(ctx, u.cfg.ResolveTimeout)
	defer cancel()

	desc, err := u.resolver.Resolve(rctx, link.String())
	if err != nil {
		return domain.TransferDescriptor{}, err
	}
	if !desc.HasDirectURL() {
		return domain.TransferDescriptor{}, domain.NewResolutionError(domain.ResolutionNotFound, errors.New("empty direct url"))
	}
	return desc, nil
}

// invalidate は直接URLから取得できなかった解決結果を破棄し、次回は解決し直させる
func (u *LinkUseCase) invalidate(ctx context.Context, link domain.ShareLink) {
	if u.invalidator == nil {
		return
	}
	if err := u.invalidator.Invalidate(ctx, link.String()); err != nil {
		slog.Warn("failed to invalidate resolution", "error", err)
	}
}

// finish はステータスメッセージを終端メッセージで上書きする。編集できなければ新規送信する
func (u *LinkUseCase) finish(ctx context.Context, req LinkRequest, status MessageRef, text string) {
	if err := u.messenger.EditText(ctx, status, text, nil); err == nil {
		return
	}
	u.reply(ctx, req, text)
}

func (u *LinkUseCase) reply(ctx context.Context, req LinkRequest, text string) {
	if _, err := u.messenger.SendText(ctx, OutgoingMessage{ChatID: req.ChatID, Text: text, ReplyTo: req.MessageID}); err != nil {
		slog.Warn("failed to send reply", "caller_id", req.Caller.ID.Int64(), "error", err)
	}
}
