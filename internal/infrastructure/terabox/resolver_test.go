package terabox_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/infrastructure/terabox"
)

const sharePath = "/s/1AbC_def-9"

func newServer(t *testing.T, pageStatus int, pageBody string, api http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(sharePath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(pageStatus)
		_, _ = w.Write([]byte(pageBody))
	})
	if api != nil {
		mux.HandleFunc("/api/download", api)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		pageStatus int
		pageBody   string
		api        http.HandlerFunc
		derivedAPI bool
		want       domain.TransferDescriptor
		wantKind   domain.ResolutionErrorKind
		wantErr    bool
	}{
		{
			name:       "正常系: dlinkパターンからURLとファイル名とサイズが得られる",
			pageStatus: http.StatusOK,
			pageBody:   `<script>var d = {"dlink":"https:\/\/d.example.com\/file\/clip.mp4?sign=abc","server_filename":"clip.mp4","size":1000};</script>`,
			want:       domain.TransferDescriptor{DirectURL: "https://d.example.com/file/clip.mp4?sign=abc", Filename: "clip.mp4", DeclaredSizeBytes: 1000},
		},
		{
			name:       "正常系: パターンと埋め込み状態の両方がある場合、パターンが優先される",
			pageStatus: http.StatusOK,
			pageBody: `<script>window.__INITIAL_STATE__ = {"list":[{"downloadLink":"https://state.example.com/b.mp4","server_filename":"b.mp4","size":2000}]};</script>
<script>var d = {'download_url':'https://pattern.example.com/a.mp4'};</script>`,
			want: domain.TransferDescriptor{DirectURL: "https://pattern.example.com/a.mp4", Filename: "b.mp4", DeclaredSizeBytes: 2000},
		},
		{
			name:       "正常系: 埋め込み状態のfileListから解決できる",
			pageStatus: http.StatusOK,
			pageBody:   `<script>window.__INITIAL_STATE__={"shareData":{"fileList":[{"downloadLink":"https://state.example.com/v.mkv","filename":"v.mkv","size":"4096"}]}};var x = 1;</script>`,
			want:       domain.TransferDescriptor{DirectURL: "https://state.example.com/v.mkv", Filename: "v.mkv", DeclaredSizeBytes: 4096},
		},
		{
			name:       "正常系: タイトルと人間向けサイズ表記から補完される",
			pageStatus: http.StatusOK,
			pageBody:   `<html><head><title>holiday.mp4 - Terabox</title></head><body>{"download":"https://d.example.com/h"} 1.5 MB</body></html>`,
			want:       domain.TransferDescriptor{DirectURL: "https://d.example.com/h", Filename: "holiday.mp4", DeclaredSizeBytes: 1500000},
		},
		{
			name:       "正常系: ファイル名が得られない場合、URLパスから補完される",
			pageStatus: http.StatusOK,
			pageBody:   `{"dlink":"https://d.example.com/x"}`,
			want:       domain.TransferDescriptor{DirectURL: "https://d.example.com/x", Filename: "1AbC_def-9.mp4", DeclaredSizeBytes: domain.UnknownSize},
		},
		{
			name:       "正常系: 派生APIからリンクが得られる",
			pageStatus: http.StatusOK,
			pageBody:   `{"fs_id":123456,"shareid":"789","uk":42,"server_filename":"api.mp4"}`,
			derivedAPI: true,
			api: func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if q.Get("shareid") != "789" || q.Get("uk") != "42" || q.Get("fidlist") != "[123456]" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				_, _ = w.Write([]byte(`{"errno":0,"list":[{"dlink":"https:\/\/api.example.com\/f"}]}`))
			},
			want: domain.TransferDescriptor{DirectURL: "https://api.example.com/f", Filename: "api.mp4", DeclaredSizeBytes: domain.UnknownSize},
		},
		{
			name:       "異常系: 派生APIが無効の場合、NotFoundになる",
			pageStatus: http.StatusOK,
			pageBody:   `{"fs_id":123456,"shareid":"789","uk":42}`,
			derivedAPI: false,
			wantErr:    true,
			wantKind:   domain.ResolutionNotFound,
		},
		{
			name:       "異常系: 派生APIのerrnoが0でない場合、NotFoundになる",
			pageStatus: http.StatusOK,
			pageBody:   `{"fs_id":1,"shareid":"2","uk":3}`,
			derivedAPI: true,
			api: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"errno":2,"list":[]}`))
			},
			wantErr:  true,
			wantKind: domain.ResolutionNotFound,
		},
		{
			name:       "異常系: 不正なスキームのリンクは採用されない",
			pageStatus: http.StatusOK,
			pageBody:   `{"dlink":"http:///nohost"}`,
			wantErr:    true,
			wantKind:   domain.ResolutionNotFound,
		},
		{
			name:       "異常系: 埋め込み状態にサイズがない場合、NotFoundになる",
			pageStatus: http.StatusOK,
			pageBody:   `window.__INITIAL_STATE__ = {"list":[{"downloadLink":"https://s.example.com/a","server_filename":"a.mp4"}]}`,
			wantErr:    true,
			wantKind:   domain.ResolutionNotFound,
		},
		{
			name:       "異常系: 403の場合、AuthExpiredになる",
			pageStatus: http.StatusForbidden,
			pageBody:   `{"dlink":"https://d.example.com/x"}`,
			wantErr:    true,
			wantKind:   domain.ResolutionAuthExpired,
		},
		{
			name:       "異常系: 401の場合、AuthExpiredになる",
			pageStatus: http.StatusUnauthorized,
			wantErr:    true,
			wantKind:   domain.ResolutionAuthExpired,
		},
		{
			name:       "異常系: 500の場合、Networkになる",
			pageStatus: http.StatusInternalServerError,
			wantErr:    true,
			wantKind:   domain.ResolutionNetwork,
		},
		{
			name:       "異常系: 派生APIが403を返す場合、AuthExpiredになる",
			pageStatus: http.StatusOK,
			pageBody:   `{"fs_id":1,"shareid":"2","uk":3}`,
			derivedAPI: true,
			api: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			wantErr:  true,
			wantKind: domain.ResolutionAuthExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.pageStatus, tt.pageBody, tt.api)
			r := terabox.NewResolver(srv.Client(), terabox.Config{
				BaseURL:           srv.URL,
				DerivedAPIEnabled: tt.derivedAPI,
			})

			got, err := r.Resolve(context.Background(), srv.URL+sharePath)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("エラーが期待されましたが、nilが返りました: %+v", got)
				}
				if kind := domain.ResolutionKindOf(err); kind != tt.wantKind {
					t.Errorf("ResolutionKindOf() = %v, want %v (err: %v)", kind, tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("予期しないエラー: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolver_Resolve_SendsBrowserHeaders(t *testing.T) {
	var gotCookie, gotUA, gotReferer string
	mux := http.NewServeMux()
	mux.HandleFunc(sharePath, func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		gotUA = r.Header.Get("User-Agent")
		gotReferer = r.Header.Get("Referer")
		_, _ = w.Write([]byte(`{"dlink":"https://d.example.com/x"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	r := terabox.NewResolver(srv.Client(), terabox.Config{Cookie: "ndus=secret", BaseURL: srv.URL})
	if _, err := r.Resolve(context.Background(), srv.URL+sharePath); err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}

	if gotCookie != "ndus=secret" {
		t.Errorf("Cookie = %q, want %q", gotCookie, "ndus=secret")
	}
	if gotUA == "" {
		t.Error("User-Agent が送信されていません")
	}
	if gotReferer != "https://www.terabox.com/" {
		t.Errorf("Referer = %q", gotReferer)
	}
}

func TestResolver_Resolve_FollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/s/short", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, sharePath, http.StatusFound)
	})
	mux.HandleFunc(sharePath, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"dlink":"https://d.example.com/r","server_filename":"r.mp4","size":"77"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	r := terabox.NewResolver(srv.Client(), terabox.Config{BaseURL: srv.URL})
	got, err := r.Resolve(context.Background(), srv.URL+"/s/short")
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	want := domain.TransferDescriptor{DirectURL: "https://d.example.com/r", Filename: "r.mp4", DeclaredSizeBytes: 77}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_Resolve_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + sharePath
	srv.Close()

	r := terabox.NewResolver(nil, terabox.Config{})
	_, err := r.Resolve(context.Background(), url)
	if err == nil {
		t.Fatal("エラーが期待されましたが、nilが返りました")
	}
	var re *domain.ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("ResolutionError が期待されましたが %T が返りました", err)
	}
	if re.Kind != domain.ResolutionNetwork {
		t.Errorf("Kind = %v, want %v", re.Kind, domain.ResolutionNetwork)
	}
}
