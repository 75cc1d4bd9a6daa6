package terabox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/na2na-p/terabridge/internal/domain"
)

const (
	// DefaultBaseURL は派生APIの呼び出し先
	DefaultBaseURL = "https://www.terabox.com"

	defaultRequestTimeout = 30 * time.Second
	apiRequestTimeout     = 15 * time.Second
	maxPageBytes          = 8 << 20
)

// browserHeaders はブラウザからのアクセスに見せかけるための固定ヘッダー
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/117.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
	"Sec-Fetch-User":            "?1",
	"Upgrade-Insecure-Requests": "1",
	"Referer":                   "https://www.terabox.com/",
	"DNT":                       "1",
	"Sec-GPC":                   "1",
}

type Config struct {
	// Cookie はそのまま Cookie ヘッダーに載せる
	Cookie            string
	BaseURL           string
	DerivedAPIEnabled bool
}

// strategy はページから直接URLを探す手順の1つ。見つからなければ ok=false を返す
type strategy interface {
	name() string
	resolve(ctx context.Context, p *page) (desc domain.TransferDescriptor, ok bool, err error)
}

// Resolver は共有ページを取得し、登録順に各手順を試して直接URLを得る
type Resolver struct {
	client     *http.Client
	cfg        Config
	strategies []strategy
}

func NewResolver(client *http.Client, cfg Config) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: defaultRequestTimeout}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	r := &Resolver{client: client, cfg: cfg}
	r.strategies = []strategy{patternStrategy{}, embeddedStateStrategy{}}
	if cfg.DerivedAPIEnabled {
		r.strategies = append(r.strategies, derivedAPIStrategy{fetcher: r, baseURL: cfg.BaseURL})
	}
	return r
}

func (r *Resolver) Resolve(ctx context.Context, shareURL string) (domain.TransferDescriptor, error) {
	body, err := r.fetch(ctx, shareURL)
	if err != nil {
		return domain.TransferDescriptor{}, err
	}
	p := newPage(shareURL, string(body))

	for _, s := range r.strategies {
		desc, ok, err := s.resolve(ctx, p)
		if err != nil {
			return domain.TransferDescriptor{}, err
		}
		if ok {
			slog.Info("share link resolved", "strategy", s.name(), "filename", desc.Filename, "size", desc.DeclaredSizeBytes)
			return desc, nil
		}
		slog.Debug("resolution strategy found nothing", "strategy", s.name())
	}
	return domain.TransferDescriptor{}, domain.NewResolutionError(domain.ResolutionNotFound, errors.New("no strategy yielded a direct link"))
}

// fetch は認証ヘッダー付きでGETし、本文を返す。失敗はすべて ResolutionError に変換する
func (r *Resolver) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, domain.NewResolutionError(domain.ResolutionNetwork, fmt.Errorf("failed to build request: %w", err))
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}
	if r.cfg.Cookie != "" {
		req.Header.Set("Cookie", r.cfg.Cookie)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, domain.NewResolutionError(domain.ResolutionNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		slog.Error("terabox rejected the request, the cookie may be expired", "status", resp.StatusCode)
		return nil, domain.NewResolutionError(domain.ResolutionAuthExpired, fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, domain.NewResolutionError(domain.ResolutionNetwork, fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, domain.NewResolutionError(domain.ResolutionNetwork, fmt.Errorf("failed to read body: %w", err))
	}
	return body, nil
}
