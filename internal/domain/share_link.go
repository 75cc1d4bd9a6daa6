package domain

import (
	"errors"
	"regexp"
)

var (
	ErrShareLinkNotFound = errors.New("no supported share link found")
	shareLinkPattern     = regexp.MustCompile(`https?://(?:(?:1024)?terabox|teraboxlink|terafileshare)\.(?:com|app)/(?:s/)?[a-zA-Z0-9_-]+`)
)

// SupportedShareDomains は案内メッセージに表示するドメイン一覧
var SupportedShareDomains = []string{
	"1024terabox.com",
	"teraboxlink.com",
	"terafileshare.com",
}

type ShareLink struct {
	value string
}

// ExtractShareLink はテキスト中の最初の共有リンクを取り出す
func ExtractShareLink(text string) (ShareLink, error) {
	match := shareLinkPattern.FindString(text)
	if match == "" {
		return ShareLink{}, ErrShareLinkNotFound
	}
	return ShareLink{value: match}, nil
}

func (l ShareLink) String() string {
	return l.value
}
