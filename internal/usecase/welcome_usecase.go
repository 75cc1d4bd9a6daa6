package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/na2na-p/terabridge/internal/domain"
)

type WelcomeRequest struct {
	Caller    domain.Caller
	ChatID    domain.ChatID
	MessageID int
	// CallbackID と Edit はインラインボタンから呼ばれた場合に設定される
	CallbackID string
	Edit       MessageRef
}

type WelcomeUseCaseConfig struct {
	MembershipChatID domain.ChatID
	Cooldown         time.Duration
	TokenValidity    time.Duration
	SizeLimitBytes   int64
}

// WelcomeUseCase は /start と /help、およびそれらのボタンを処理する
type WelcomeUseCase struct {
	admission *AdmissionChain
	messenger Messenger
	cfg       WelcomeUseCaseConfig
}

func NewWelcomeUseCase(admission *AdmissionChain, messenger Messenger, cfg WelcomeUseCaseConfig) *WelcomeUseCase {
	return &WelcomeUseCase{
		admission: admission,
		messenger: messenger,
		cfg:       cfg,
	}
}

// Start はウェルカムメッセージを表示する。利用者の登録はアドミッション通過時に行われる
func (u *WelcomeUseCase) Start(ctx context.Context, req WelcomeRequest) error {
	admissionReq := AdmissionRequest{Caller: req.Caller, ChatID: req.ChatID, Capability: CapabilityStart}
	if decision := u.admission.Admit(ctx, admissionReq); !decision.IsAdmitted() {
		replyDenial(ctx, u.messenger, admissionReq, req.MessageID, decision.Denial)
		return nil
	}
	return u.show(ctx, req, welcomeText(req.Caller), u.startButtons(ctx))
}

func (u *WelcomeUseCase) Help(ctx context.Context, req WelcomeRequest) error {
	admissionReq := AdmissionRequest{Caller: req.Caller, ChatID: req.ChatID, Capability: CapabilityHelp}
	if decision := u.admission.Admit(ctx, admissionReq); !decision.IsAdmitted() {
		replyDenial(ctx, u.messenger, admissionReq, req.MessageID, decision.Denial)
		return nil
	}
	return u.show(ctx, req, u.helpText(), [][]Button{{{Text: "🏠 Back", CallbackData: CallbackStart}}})
}

// ShowStart と ShowHelp はボタン操作で既存メッセージを書き換える
func (u *WelcomeUseCase) ShowStart(ctx context.Context, req WelcomeRequest) error {
	return u.show(ctx, req, welcomeText(req.Caller), u.startButtons(ctx))
}

func (u *WelcomeUseCase) ShowHelp(ctx context.Context, req WelcomeRequest) error {
	return u.show(ctx, req, u.helpText(), [][]Button{{{Text: "🏠 Back", CallbackData: CallbackStart}}})
}

func (u *WelcomeUseCase) helpText() string {
	return helpText(u.cfg.Cooldown, u.cfg.TokenValidity, u.cfg.SizeLimitBytes)
}

func (u *WelcomeUseCase) startButtons(ctx context.Context) [][]Button {
	buttons := [][]Button{
		{{Text: "🔑 Get Token", CallbackData: CallbackGetToken}, {Text: "📖 Help", CallbackData: CallbackHelp}},
	}
	if u.cfg.MembershipChatID == 0 {
		return buttons
	}
	invite, err := u.messenger.ChatInvite(ctx, u.cfg.MembershipChatID)
	if err != nil || invite.Link == "" {
		return buttons
	}
	return append([][]Button{{{Text: "📢 Join Channel", URL: invite.Link}}}, buttons...)
}

func (u *WelcomeUseCase) show(ctx context.Context, req WelcomeRequest, text string, buttons [][]Button) error {
	if req.CallbackID != "" {
		if err := u.messenger.AnswerCallback(ctx, req.CallbackID, "", false); err != nil {
			slog.Debug("failed to answer callback", "caller_id", req.Caller.ID.Int64(), "error", err)
		}
	}
	if !req.Edit.IsZero() {
		if err := u.messenger.EditText(ctx, req.Edit, text, buttons); err == nil {
			return nil
		}
	}
	_, err := u.messenger.SendText(ctx, OutgoingMessage{
		ChatID:         req.ChatID,
		Text:           text,
		ReplyTo:        req.MessageID,
		Buttons:        buttons,
		DisablePreview: true,
	})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
