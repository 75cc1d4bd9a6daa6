//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_external_interfaces.go -package=usecase
package usecase

import (
	"context"
	"io"

	"github.com/na2na-p/terabridge/internal/domain"
)

// MessageRef は送信済みメッセージへの参照
type MessageRef struct {
	ChatID    domain.ChatID
	MessageID int
}

func (r MessageRef) IsZero() bool {
	return r.MessageID == 0
}

// Button はインラインキーボードのボタン。URLとCallbackDataのどちらか一方を指定する
type Button struct {
	Text         string
	URL          string
	CallbackData string
}

type OutgoingMessage struct {
	ChatID         domain.ChatID
	Text           string
	ReplyTo        int
	Buttons        [][]Button
	DisablePreview bool
}

type MediaUpload struct {
	ChatID   domain.ChatID
	Filename string
	Caption  string
	Size     int64
	Body     io.Reader
}

type MembershipStatus string

const (
	MembershipCreator       MembershipStatus = "creator"
	MembershipAdministrator MembershipStatus = "administrator"
	MembershipMember        MembershipStatus = "member"
	MembershipRestricted    MembershipStatus = "restricted"
	MembershipLeft          MembershipStatus = "left"
	MembershipKicked        MembershipStatus = "kicked"
)

func (s MembershipStatus) IsMember() bool {
	switch s {
	case MembershipCreator, MembershipAdministrator, MembershipMember:
		return true
	default:
		return false
	}
}

type ChatInvite struct {
	Title string
	Link  string
}

// Messenger はメッセージングトランスポートの操作を抽象化する。
// レート制限を受けた場合は *RateLimitError を返す
type Messenger interface {
	SendText(ctx context.Context, msg OutgoingMessage) (MessageRef, error)
	EditText(ctx context.Context, ref MessageRef, text string, buttons [][]Button) error
	DeleteMessage(ctx context.Context, ref MessageRef) error
	AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error
	SendMediaStream(ctx context.Context, upload MediaUpload) (MessageRef, error)
	Forward(ctx context.Context, ref MessageRef, dest domain.ChatID) (MessageRef, error)
	GetMembership(ctx context.Context, chat domain.ChatID, caller domain.CallerID) (MembershipStatus, error)
	ChatInvite(ctx context.Context, chat domain.ChatID) (ChatInvite, error)
}

// LinkResolver は共有リンクを直接ダウンロード可能なURLに解決する
type LinkResolver interface {
	Resolve(ctx context.Context, shareURL string) (domain.TransferDescriptor, error)
}

// ResolutionInvalidator は取得に使えなかった解決結果を破棄する
type ResolutionInvalidator interface {
	Invalidate(ctx context.Context, shareURL string) error
}

type ArchiveItem struct {
	Caller    domain.CallerID
	Media     MessageRef
	LocalPath string
	Filename  string
	Size      int64
}

// ArchiveSink はアップロード済みの成果物を受け取る副次的な保存先
type ArchiveSink interface {
	Name() string
	Archive(ctx context.Context, item ArchiveItem) error
}
