package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/newmo-oss/ctxtime"
)

// AuthorizationCheck は特権ユーザー以外を拒否する。バイパス不可
type AuthorizationCheck struct {
	privileged domain.PrivilegedSet
}

func NewAuthorizationCheck(privileged domain.PrivilegedSet) *AuthorizationCheck {
	return &AuthorizationCheck{privileged: privileged}
}

func (c *AuthorizationCheck) Name() string     { return "authorization" }
func (c *AuthorizationCheck) Bypassable() bool { return false }

func (c *AuthorizationCheck) Check(_ context.Context, req AdmissionRequest) (*Denial, error) {
	if c.privileged.Contains(req.Caller.ID) {
		return nil, nil
	}
	return &Denial{Reason: DenialNotAuthorized}, nil
}

// MembershipCheck は指定チャットへの参加を確認する。
// 非メンバーには参加案内を送ったうえで拒否する
type MembershipCheck struct {
	messenger Messenger
	chatID    domain.ChatID
	margin    time.Duration
	sleep     Sleeper
}

// membershipRetryMargin はレート制限時に指定時間へ上乗せする待機
const membershipRetryMargin = time.Second

func NewMembershipCheck(messenger Messenger, chatID domain.ChatID, sleep Sleeper) *MembershipCheck {
	if sleep == nil {
		sleep = SleepContext
	}
	return &MembershipCheck{
		messenger: messenger,
		chatID:    chatID,
		margin:    membershipRetryMargin,
		sleep:     sleep,
	}
}

func (c *MembershipCheck) Name() string     { return "membership" }
func (c *MembershipCheck) Bypassable() bool { return true }

func (c *MembershipCheck) Check(ctx context.Context, req AdmissionRequest) (*Denial, error) {
	if c.chatID == 0 {
		return nil, nil
	}

	status, err := c.messenger.GetMembership(ctx, c.chatID, req.Caller.ID)
	if wait, limited := RetryAfter(err); limited {
		slog.Warn("membership lookup rate limited", "caller_id", req.Caller.ID.Int64(), "retry_after", wait.String())
		total := wait + c.margin
		if sleepErr := c.sleep(ctx, total); sleepErr != nil {
			return nil, sleepErr
		}
		return &Denial{Reason: DenialMembershipRequired, Wait: total}, nil
	}
	if err != nil && !errors.Is(err, ErrNotChatMember) {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if err == nil && status.IsMember() {
		return nil, nil
	}

	return &Denial{
		Reason:   DenialMembershipRequired,
		Notified: c.sendJoinPrompt(ctx, req),
	}, nil
}

func (c *MembershipCheck) sendJoinPrompt(ctx context.Context, req AdmissionRequest) bool {
	invite, err := c.messenger.ChatInvite(ctx, c.chatID)
	if err != nil {
		slog.Warn("failed to get chat invite", "chat_id", c.chatID.Int64(), "error", err)
	}
	title := invite.Title
	if title == "" {
		title = "our channel"
	}

	if req.CallbackID != "" {
		if err := c.messenger.AnswerCallback(ctx, req.CallbackID, "You must join our channel first!", true); err != nil {
			slog.Warn("failed to answer callback", "caller_id", req.Caller.ID.Int64(), "error", err)
		}
	}

	msg := OutgoingMessage{
		ChatID: req.ChatID,
		Text:   joinPromptText(req.Caller, title),
	}
	if invite.Link != "" {
		msg.Buttons = [][]Button{{{Text: "Join " + title, URL: invite.Link}}}
	}
	if _, err := c.messenger.SendText(ctx, msg); err != nil {
		slog.Warn("failed to send join prompt", "caller_id", req.Caller.ID.Int64(), "error", err)
		return false
	}
	return true
}

// TokenCheck は有効なアクセストークンの保持を確認する
type TokenCheck struct {
	tokens domain.AccessTokenRepository
}

func NewTokenCheck(tokens domain.AccessTokenRepository) *TokenCheck {
	return &TokenCheck{tokens: tokens}
}

func (c *TokenCheck) Name() string     { return "token" }
func (c *TokenCheck) Bypassable() bool { return true }

func (c *TokenCheck) Check(ctx context.Context, req AdmissionRequest) (*Denial, error) {
	token, err := c.tokens.FindByCaller(ctx, req.Caller.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return &Denial{Reason: DenialTokenRequired}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find token: %w", err)
	}

	now := ctxtime.Now(ctx)
	if !token.IsValidAt(now) {
		return &Denial{Reason: DenialTokenExpired, ExpiredFor: token.ExpiredFor(now)}, nil
	}
	return nil, nil
}

// ThrottleCheck は呼び出し元ごとのクールダウンを適用する。
// 判定と記録はリポジトリ側で不可分に行う
type ThrottleCheck struct {
	throttles domain.ThrottleRepository
	cooldown  time.Duration
}

func NewThrottleCheck(throttles domain.ThrottleRepository, cooldown time.Duration) *ThrottleCheck {
	return &ThrottleCheck{throttles: throttles, cooldown: cooldown}
}

func (c *ThrottleCheck) Name() string     { return "throttle" }
func (c *ThrottleCheck) Bypassable() bool { return true }

func (c *ThrottleCheck) Check(ctx context.Context, req AdmissionRequest) (*Denial, error) {
	decision, err := c.throttles.Acquire(ctx, req.Caller.ID, ctxtime.Now(ctx), c.cooldown)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire throttle: %w", err)
	}
	if decision.Accepted {
		return nil, nil
	}
	return &Denial{Reason: DenialRateLimited, Wait: decision.Wait}, nil
}
