package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxFilenameBytes は一時ファイル名に残す末尾のバイト数の上限
const maxFilenameBytes = 120

// KeywordFilter はファイル名に禁止キーワードを含むものを弾く
type KeywordFilter struct {
	keywords []string
}

func NewKeywordFilter(keywords []string) *KeywordFilter {
	normalized := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			normalized = append(normalized, k)
		}
	}
	return &KeywordFilter{keywords: normalized}
}

// Blocks は大文字小文字を区別せず部分一致で判定する
func (f *KeywordFilter) Blocks(filename string) bool {
	if f == nil {
		return false
	}
	lower := strings.ToLower(filename)
	for _, k := range f.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// sanitizeFilename は一時ファイル名に使えない文字を取り除き、拡張子側を残して切り詰める
func sanitizeFilename(name string) string {
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	name = strings.Trim(name, ".")
	if len(name) > maxFilenameBytes {
		start := len(name) - maxFilenameBytes
		for start < len(name) && !utf8.RuneStart(name[start]) {
			start++
		}
		name = name[start:]
	}
	if name == "" {
		return "file"
	}
	return name
}
