package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/newmo-oss/ctxtime"
	"golang.org/x/time/rate"
)

const (
	// DefaultBroadcastRate は1秒あたりの送信数
	DefaultBroadcastRate = 10
	// broadcastStatusEvery は進捗表示を更新する間隔(処理件数)
	broadcastStatusEvery = 50
)

type BroadcastRequest struct {
	Caller    domain.Caller
	ChatID    domain.ChatID
	MessageID int
	Text      string
	// Source が設定されている場合はテキストの代わりにそのメッセージを転送する
	Source *MessageRef
}

type BroadcastReport struct {
	Total       int
	Success     int
	Failed      int
	Blocked     int
	Deactivated int
	Elapsed     time.Duration
}

func (r BroadcastReport) Processed() int {
	return r.Success + r.Failed + r.Blocked + r.Deactivated
}

type BroadcastUseCaseConfig struct {
	Enabled       bool
	RatePerSecond float64
	RetryMargin   time.Duration
}

// BroadcastUseCase は登録済みの全利用者へメッセージを配信する
type BroadcastUseCase struct {
	admission *AdmissionChain
	messenger Messenger
	callers   domain.CallerRepository
	limiter   *rate.Limiter
	cfg       BroadcastUseCaseConfig
	sleep     Sleeper
	metrics   Metrics
}

func NewBroadcastUseCase(admission *AdmissionChain, messenger Messenger, callers domain.CallerRepository, cfg BroadcastUseCaseConfig, sleep Sleeper, metrics Metrics) *BroadcastUseCase {
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = DefaultBroadcastRate
	}
	if cfg.RetryMargin <= 0 {
		cfg.RetryMargin = 2 * time.Second
	}
	if sleep == nil {
		sleep = SleepContext
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &BroadcastUseCase{
		admission: admission,
		messenger: messenger,
		callers:   callers,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		cfg:       cfg,
		sleep:     sleep,
		metrics:   metrics,
	}
}

func (u *BroadcastUseCase) Execute(ctx context.Context, req BroadcastRequest) (BroadcastReport, error) {
	admissionReq := AdmissionRequest{Caller: req.Caller, ChatID: req.ChatID, Capability: CapabilityBroadcast}
	if decision := u.admission.Admit(ctx, admissionReq); !decision.IsAdmitted() {
		replyDenial(ctx, u.messenger, admissionReq, req.MessageID, decision.Denial)
		return BroadcastReport{}, nil
	}
	if !u.cfg.Enabled {
		u.reply(ctx, req, "📣 Broadcast is disabled.")
		return BroadcastReport{}, nil
	}
	if req.Source == nil && req.Text == "" {
		u.reply(ctx, req, broadcastUsageText())
		return BroadcastReport{}, nil
	}

	callers, err := u.callers.List(ctx)
	if err != nil {
		u.reply(ctx, req, "❌ Could not load the user list.")
		return BroadcastReport{}, fmt.Errorf("failed to list callers: %w", err)
	}
	if len(callers) == 0 {
		u.reply(ctx, req, "📣 No users to broadcast to.")
		return BroadcastReport{}, nil
	}

	status, err := u.messenger.SendText(ctx, OutgoingMessage{
		ChatID:  req.ChatID,
		Text:    broadcastProgressText(BroadcastReport{Total: len(callers)}),
		ReplyTo: req.MessageID,
	})
	if err != nil {
		slog.Warn("failed to send broadcast status", "error", err)
	}

	report := u.fanout(ctx, req, callers, status)

	if err := u.messenger.EditText(ctx, status, broadcastSummaryText(report), nil); err != nil {
		u.reply(ctx, req, broadcastSummaryText(report))
	}
	slog.Info("broadcast completed",
		"total", report.Total,
		"success", report.Success,
		"failed", report.Failed,
		"blocked", report.Blocked,
		"deactivated", report.Deactivated,
	)
	return report, ctx.Err()
}

func (u *BroadcastUseCase) fanout(ctx context.Context, req BroadcastRequest, callers []domain.CallerID, status MessageRef) BroadcastReport {
	startedAt := ctxtime.Now(ctx)
	report := BroadcastReport{Total: len(callers)}
	policy := RetryPolicy{Margin: u.cfg.RetryMargin, Sleep: u.sleep}

	for i, id := range callers {
		if err := u.limiter.Wait(ctx); err != nil {
			break
		}

		_, err := RetryOnceAfterWait(ctx, policy, func(ctx context.Context) (MessageRef, error) {
			if req.Source != nil {
				return u.messenger.Forward(ctx, *req.Source, id.ChatID())
			}
			return u.messenger.SendText(ctx, OutgoingMessage{ChatID: id.ChatID(), Text: req.Text})
		})
		outcome := "success"
		switch {
		case err == nil:
			report.Success++
		case errors.Is(err, ErrRecipientBlocked):
			report.Blocked++
			outcome = "blocked"
		case errors.Is(err, ErrRecipientDeactivated):
			report.Deactivated++
			outcome = "deactivated"
		default:
			report.Failed++
			outcome = "failed"
			slog.Debug("broadcast delivery failed", "caller_id", id.Int64(), "error", err)
		}
		u.metrics.BroadcastDelivered(outcome)

		if (i+1)%broadcastStatusEvery == 0 && !status.IsZero() {
			if err := u.messenger.EditText(ctx, status, broadcastProgressText(report), nil); err != nil {
				slog.Debug("failed to edit broadcast status", "error", err)
			}
		}
		if ctx.Err() != nil {
			break
		}
	}

	report.Elapsed = ctxtime.Now(ctx).Sub(startedAt)
	return report
}

func (u *BroadcastUseCase) reply(ctx context.Context, req BroadcastRequest, text string) {
	if _, err := u.messenger.SendText(ctx, OutgoingMessage{ChatID: req.ChatID, Text: text, ReplyTo: req.MessageID}); err != nil {
		slog.Warn("failed to send reply", "caller_id", req.Caller.ID.Int64(), "error", err)
	}
}
