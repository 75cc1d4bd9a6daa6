package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/na2na-p/terabridge/internal/domain"
)

// インラインボタンのコールバックデータ
const (
	CallbackGetToken = "get_token_cb"
	CallbackHelp     = "help_cb"
	CallbackStart    = "start_cb"
)

// formatDuration は "40 seconds" のような人間向けの時間表記を返す
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "0 seconds"
	}
	base := time.Unix(0, 0)
	return strings.TrimSpace(humanize.RelTime(base, base.Add(d), "", ""))
}

func joinPromptText(caller domain.Caller, title string) string {
	return fmt.Sprintf("👋 Hey %s!\n\nTo use this bot, you must join %s first.\nJoin using the button below, then try again.", caller.Mention(), title)
}

// DenialText は拒否理由に対応する利用者向けメッセージを返す
func DenialText(d *Denial) string {
	switch d.Reason {
	case DenialNotAuthorized:
		return "⛔ You are not authorized to use this command."
	case DenialMembershipRequired:
		if d.Wait > 0 {
			return fmt.Sprintf("⏳ Membership check is busy. Please try again in %s.", formatDuration(d.Wait))
		}
		return "📢 You must join our channel to use this bot."
	case DenialTokenRequired:
		return "🔑 Token Required\n\nYou need a valid access token to download files.\nUse /get_token to generate one."
	case DenialTokenExpired:
		return fmt.Sprintf("⌛ Token Expired\n\nYour token expired %s ago.\nUse /get_token to generate a new one.", formatDuration(d.ExpiredFor))
	case DenialRateLimited:
		return fmt.Sprintf("🐢 Slow down! Please wait %s before sending another link.", formatDuration(d.Wait))
	default:
		return "❌ An error occurred while checking your access. Please try again later."
	}
}

func invalidLinkText() string {
	return "❌ Please send a valid TeraBox link.\n\nSupported domains:\n• " + strings.Join(domain.SupportedShareDomains, "\n• ")
}

func resolutionFailureText(kind domain.ResolutionErrorKind) string {
	switch kind {
	case domain.ResolutionNotFound:
		return "❌ Could not find a download link. The file may be private, deleted, or the link is invalid."
	case domain.ResolutionAuthExpired:
		return "❌ Access to TeraBox was denied. The service cookie may have expired; please contact the admin."
	default:
		return "❌ Network error while contacting TeraBox. Please try again later."
	}
}

func transferFailureText(result domain.TransferResult) string {
	switch result.Kind() {
	case domain.FailureTooLarge:
		return "❌ " + result.Message()
	case domain.FailureNetworkError:
		return "❌ Download failed: " + result.Message()
	case domain.FailureUploadError:
		return "❌ Upload failed: " + result.Message()
	default:
		return "❌ An unexpected error occurred. Please try again later."
	}
}

func blockedContentText() string {
	return "🚫 This file cannot be processed: it matches the content filter."
}

func processingText() string {
	return "⏳ Processing your link..."
}

func startingDownloadText(desc domain.TransferDescriptor) string {
	return fmt.Sprintf("📥 Starting download\n\n📄 %s\n📦 %s", desc.Filename, desc.DeclaredSize())
}

func uploadCaption(filename string) string {
	return "✅ Downloaded: " + filename
}

func welcomeText(caller domain.Caller) string {
	return fmt.Sprintf("👋 Welcome %s!\n\n"+
		"I can download files from TeraBox share links and send them to you here.\n\n"+
		"1. Get an access token with /get_token\n"+
		"2. Send me a TeraBox link\n\n"+
		"Use /help for more details.", caller.Mention())
}

func helpText(cooldown, validity time.Duration, limit int64) string {
	return fmt.Sprintf("📖 Help\n\n"+
		"/start - Show the welcome message\n"+
		"/get_token - Get an access token\n"+
		"/help - Show this message\n\n"+
		"• Tokens are valid for %s.\n"+
		"• You can send one link every %s.\n"+
		"• Files up to %s are supported.\n\n"+
		"Supported domains:\n• %s",
		formatDuration(validity), formatDuration(cooldown), humanize.IBytes(uint64(limit)),
		strings.Join(domain.SupportedShareDomains, "\n• "))
}

func tokenIssuedText(token *domain.AccessToken, validity time.Duration) string {
	return fmt.Sprintf("✅ New token generated!\n\n🔑 %s\n\nValid for %s.", token.Value(), formatDuration(validity))
}

func tokenActiveText(token *domain.AccessToken, remaining time.Duration) string {
	return fmt.Sprintf("✅ You already have an active token.\n\n🔑 %s\n\nExpires in %s.", token.Value(), formatDuration(remaining))
}

func broadcastUsageText() string {
	return "Usage: /broadcast <message> or reply to a message with /broadcast"
}

func broadcastProgressText(r BroadcastReport) string {
	return fmt.Sprintf("📣 Broadcasting...\n\nProcessed: %d / %d\n✅ Success: %d\n❌ Failed: %d\n🚫 Blocked: %d\n👻 Deactivated: %d",
		r.Processed(), r.Total, r.Success, r.Failed, r.Blocked, r.Deactivated)
}

func broadcastSummaryText(r BroadcastReport) string {
	return fmt.Sprintf("📣 Broadcast completed in %s\n\nTotal: %d\n✅ Success: %d\n❌ Failed: %d\n🚫 Blocked: %d\n👻 Deactivated: %d",
		formatDuration(r.Elapsed), r.Total, r.Success, r.Failed, r.Blocked, r.Deactivated)
}
