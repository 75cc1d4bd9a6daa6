package terabox

import (
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/na2na-p/terabridge/internal/domain"
)

var (
	filenamePattern  = regexp.MustCompile(`["']server_filename["']\s*:\s*["']([^"']+)["']`)
	titlePattern     = regexp.MustCompile(`(?is)<title>(.*?)</title>`)
	sizePattern      = regexp.MustCompile(`["']size["']\s*:\s*"?(\d+)"?`)
	humanSizePattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?\s*(?:GB|MB|KB))`)
)

// page は取得した共有ページ
type page struct {
	url  string
	body string
}

func newPage(rawURL, body string) *page {
	return &page{url: rawURL, body: body}
}

// unescapeSlashes は JSON 文字列内の "\/" を "/" に戻す
func unescapeSlashes(s string) string {
	return strings.ReplaceAll(s, `\/`, "/")
}

// filename は専用フィールド、タイトル、URLパスの順にファイル名を探す
func (p *page) filename() string {
	if m := filenamePattern.FindStringSubmatch(p.body); m != nil {
		return m[1]
	}

	if m := titlePattern.FindStringSubmatch(p.body); m != nil {
		title := strings.TrimSpace(m[1])
		title = strings.ReplaceAll(title, "- Terabox", "")
		title = strings.ReplaceAll(title, "Terabox:", "")
		title = strings.TrimSpace(title)
		if strings.Contains(title, ".") && len(title) < 150 {
			return title
		}
	}

	if u, err := url.Parse(p.url); err == nil {
		last := path.Base(u.Path)
		if last != "." && last != "/" && len(last) > 4 {
			return last + ".mp4"
		}
	}
	return domain.DefaultFilename
}

// sizeBytes は数値フィールド、人間向け表記の順にサイズを探す。見つからなければ不明(0)
func (p *page) sizeBytes() int64 {
	if m := sizePattern.FindStringSubmatch(p.body); m != nil {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return n
		}
	}
	if m := humanSizePattern.FindStringSubmatch(p.body); m != nil {
		if n, err := humanize.ParseBytes(m[1]); err == nil {
			return int64(n)
		}
	}
	return domain.UnknownSize
}
