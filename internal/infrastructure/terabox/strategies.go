package terabox

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/na2na-p/terabridge/internal/domain"
)

// patternStrategy はマークアップ中のリンク用キーを直接探す
type patternStrategy struct{}

var directLinkPattern = regexp.MustCompile(`(?i)["'](?:dlink|download|download_url)["']\s*:\s*["'](https?:\\?/\\?/[^"']+)["']`)

func (patternStrategy) name() string { return "pattern" }

func (patternStrategy) resolve(_ context.Context, p *page) (domain.TransferDescriptor, bool, error) {
	m := directLinkPattern.FindStringSubmatch(p.body)
	if m == nil {
		return domain.TransferDescriptor{}, false, nil
	}
	link := unescapeSlashes(m[1])
	if !domain.IsFetchableURL(link) {
		slog.Warn("pattern matched an invalid link", "link_prefix", truncate(link, 64))
		return domain.TransferDescriptor{}, false, nil
	}
	return domain.NewTransferDescriptor(link, p.filename(), p.sizeBytes()), true, nil
}

// embeddedStateStrategy は window.__INITIAL_STATE__ に埋め込まれたJSONを読む
type embeddedStateStrategy struct{}

const initialStateMarker = "window.__INITIAL_STATE__"

func (embeddedStateStrategy) name() string { return "embedded_state" }

func (embeddedStateStrategy) resolve(_ context.Context, p *page) (domain.TransferDescriptor, bool, error) {
	state, ok := decodeInitialState(p.body)
	if !ok {
		return domain.TransferDescriptor{}, false, nil
	}

	list, _ := state["list"].([]any)
	if len(list) == 0 {
		if share, ok := state["shareData"].(map[string]any); ok {
			list, _ = share["fileList"].([]any)
		}
	}
	if len(list) == 0 {
		return domain.TransferDescriptor{}, false, nil
	}
	item, ok := list[0].(map[string]any)
	if !ok {
		return domain.TransferDescriptor{}, false, nil
	}

	link := unescapeSlashes(firstString(item, "dlink", "downloadLink"))
	filename := firstString(item, "server_filename", "filename")
	size, hasSize := numberField(item, "size")
	if link == "" || filename == "" || !hasSize {
		slog.Debug("embedded state is missing required fields")
		return domain.TransferDescriptor{}, false, nil
	}
	if !domain.IsFetchableURL(link) {
		return domain.TransferDescriptor{}, false, nil
	}
	return domain.NewTransferDescriptor(link, filename, size), true, nil
}

// decodeInitialState はマーカー直後のJSONオブジェクトをストリーミングデコーダーで1つだけ読む
func decodeInitialState(body string) (map[string]any, bool) {
	idx := strings.Index(body, initialStateMarker)
	if idx < 0 {
		return nil, false
	}
	rest := strings.TrimLeft(body[idx+len(initialStateMarker):], " \t\r\n")
	if !strings.HasPrefix(rest, "=") {
		return nil, false
	}
	rest = strings.TrimLeft(rest[1:], " \t\r\n")

	dec := json.NewDecoder(strings.NewReader(rest))
	dec.UseNumber()
	var state map[string]any
	if err := dec.Decode(&state); err != nil {
		slog.Warn("failed to decode embedded state", "error", err)
		return nil, false
	}
	return state, true
}

// derivedAPIStrategy はページから得たIDでダウンロードAPIを呼ぶ
type derivedAPIStrategy struct {
	fetcher interface {
		fetch(ctx context.Context, rawURL string) ([]byte, error)
	}
	baseURL string
}

var (
	fsIDPattern    = regexp.MustCompile(`["']fs_id["']\s*:\s*"?(\d+)`)
	shareIDPattern = regexp.MustCompile(`["']shareid["']\s*:\s*"?(\d+)`)
	ukPattern      = regexp.MustCompile(`["']uk["']\s*:\s*"?(\d+)`)
)

func (derivedAPIStrategy) name() string { return "derived_api" }

func (s derivedAPIStrategy) resolve(ctx context.Context, p *page) (domain.TransferDescriptor, bool, error) {
	fsID := submatch(fsIDPattern, p.body)
	shareID := submatch(shareIDPattern, p.body)
	uk := submatch(ukPattern, p.body)
	if fsID == "" || shareID == "" || uk == "" {
		return domain.TransferDescriptor{}, false, nil
	}

	q := url.Values{}
	q.Set("shareid", shareID)
	q.Set("uk", uk)
	q.Set("fidlist", "["+fsID+"]")
	apiURL := strings.TrimRight(s.baseURL, "/") + "/api/download?" + q.Encode()

	apiCtx, cancel := context.WithTimeout(ctx, apiRequestTimeout)
	defer cancel()
	body, err := s.fetcher.fetch(apiCtx, apiURL)
	if err != nil {
		return domain.TransferDescriptor{}, false, err
	}

	var resp struct {
		Errno *int `json:"errno"`
		List  []struct {
			Dlink string `json:"dlink"`
		} `json:"list"`
	}
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&resp); err != nil {
		slog.Warn("failed to decode download api response", "error", err)
		return domain.TransferDescriptor{}, false, nil
	}
	if resp.Errno == nil || *resp.Errno != 0 || len(resp.List) == 0 {
		slog.Warn("download api returned no link")
		return domain.TransferDescriptor{}, false, nil
	}

	link := unescapeSlashes(resp.List[0].Dlink)
	if !domain.IsFetchableURL(link) {
		return domain.TransferDescriptor{}, false, nil
	}
	return domain.NewTransferDescriptor(link, p.filename(), p.sizeBytes()), true, nil
}

func submatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// numberField は JSON 数値と数字だけの文字列を受け付ける
func numberField(m map[string]any, key string) (int64, bool) {
	switch v := m[key].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return 0, false
			}
			n = int64(f)
		}
		return n, n > 0
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil && n > 0
	default:
		return 0, false
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
