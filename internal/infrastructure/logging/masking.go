package logging

import (
	"log/slog"
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var defaultSensitiveKeys = []string{
	"token",
	"bot_token",
	"access_token",
	"authorization",
	"cookie",
	"ndus",
	"password",
	"secret",
	"webhook_secret",
	"secret_access_key",
	"secretaccesskey",
	"access_key_id",
	"accesskeyid",
	"api_key",
	"apikey",
	"credential",
}

// botTokenPattern はBot APIのURLに埋め込まれたトークン (bot<id>:<secret>) に一致する
var botTokenPattern = regexp.MustCompile(`bot\d+:[A-Za-z0-9_-]+`)

type SensitiveMasker struct {
	sensitiveKeys map[string]bool
}

func NewSensitiveMasker(keys []string) *SensitiveMasker {
	m := make(map[string]bool, len(keys))
	for _, key := range keys {
		m[key] = true
	}
	return &SensitiveMasker{sensitiveKeys: m}
}

// MaskAttrs はキー名が機密を示す属性を伏せ、値に含まれるBotトークンを置き換える
func (sm *SensitiveMasker) MaskAttrs(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]any, 0, len(attrs))
		for _, attr := range attrs {
			maskedAttrs = append(maskedAttrs, sm.MaskAttrs(nil, attr))
		}
		return slog.Group(a.Key, maskedAttrs...)
	}

	key := strings.ToLower(a.Key)
	if sm.sensitiveKeys[key] {
		return slog.String(a.Key, redacted)
	}
	for sensitiveKey := range sm.sensitiveKeys {
		if strings.Contains(key, sensitiveKey) {
			return slog.String(a.Key, redacted)
		}
	}

	switch a.Value.Kind() {
	case slog.KindString:
		if s := a.Value.String(); botTokenPattern.MatchString(s) {
			return slog.String(a.Key, MaskBotToken(s))
		}
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok && botTokenPattern.MatchString(err.Error()) {
			return slog.String(a.Key, MaskBotToken(err.Error()))
		}
	}
	return a
}

// MaskBotToken は文字列中のBotトークンを伏せる
func MaskBotToken(s string) string {
	return botTokenPattern.ReplaceAllString(s, "bot"+redacted)
}

var defaultMasker = NewSensitiveMasker(defaultSensitiveKeys)

func MaskSensitiveAttrs(groups []string, a slog.Attr) slog.Attr {
	return defaultMasker.MaskAttrs(groups, a)
}
