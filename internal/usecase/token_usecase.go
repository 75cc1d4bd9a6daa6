package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/newmo-oss/ctxtime"
)

// DefaultTokenValidity はアクセストークンの既定の有効期間
const DefaultTokenValidity = 24 * time.Hour

type TokenRequest struct {
	Caller     domain.Caller
	ChatID     domain.ChatID
	MessageID  int
	CallbackID string
}

// TokenIssue は発行または再利用されたトークン
type TokenIssue struct {
	Token     *domain.AccessToken
	IssuedNew bool
	Remaining time.Duration
}

// TokenUseCase はアクセストークンの発行を担う
type TokenUseCase struct {
	admission *AdmissionChain
	messenger Messenger
	tokens    domain.AccessTokenRepository
	validity  time.Duration
	newValue  func() string
}

func NewTokenUseCase(admission *AdmissionChain, messenger Messenger, tokens domain.AccessTokenRepository, validity time.Duration) *TokenUseCase {
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	return &TokenUseCase{
		admission: admission,
		messenger: messenger,
		tokens:    tokens,
		validity:  validity,
		newValue:  uuid.NewString,
	}
}

// Issue は有効なトークンがあればそれを返し、なければ新しい値で発行する
func (u *TokenUseCase) Issue(ctx context.Context, caller domain.CallerID) (TokenIssue, error) {
	now := ctxtime.Now(ctx)
	token, issued, err := u.tokens.IssueIfAbsent(ctx, caller, now, func() (*domain.AccessToken, error) {
		return domain.NewAccessToken(u.newValue(), caller, now.Add(u.validity))
	})
	if err != nil {
		return TokenIssue{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return TokenIssue{
		Token:     token,
		IssuedNew: issued,
		Remaining: token.Remaining(now),
	}, nil
}

// Execute は /get_token とトークン取得ボタンを処理する
func (u *TokenUseCase) Execute(ctx context.Context, req TokenRequest) error {
	admissionReq := AdmissionRequest{
		Caller:     req.Caller,
		ChatID:     req.ChatID,
		Capability: CapabilityIssueToken,
		CallbackID: req.CallbackID,
	}
	if decision := u.admission.Admit(ctx, admissionReq); !decision.IsAdmitted() {
		replyDenial(ctx, u.messenger, admissionReq, req.MessageID, decision.Denial)
		return nil
	}

	issue, err := u.Issue(ctx, req.Caller.ID)
	if err != nil {
		slog.Error("failed to issue token", "caller_id", req.Caller.ID.Int64(), "error", err)
		_, _ = u.messenger.SendText(ctx, OutgoingMessage{
			ChatID:  req.ChatID,
			Text:    "❌ Could not generate a token. Please try again later.",
			ReplyTo: req.MessageID,
		})
		return err
	}

	text := tokenActiveText(issue.Token, issue.Remaining)
	if issue.IssuedNew {
		text = tokenIssuedText(issue.Token, u.validity)
	}
	if req.CallbackID != "" {
		if err := u.messenger.AnswerCallback(ctx, req.CallbackID, "", false); err != nil {
			slog.Debug("failed to answer callback", "caller_id", req.Caller.ID.Int64(), "error", err)
		}
	}
	if _, err := u.messenger.SendText(ctx, OutgoingMessage{ChatID: req.ChatID, Text: text, ReplyTo: req.MessageID}); err != nil {
		return fmt.Errorf("failed to send token: %w", err)
	}
	return nil
}
