package domain_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/terabridge/internal/domain"
)

func TestExtractShareLink(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr error
	}{
		{
			name: "正常系: 1024terabox.comの/s/形式",
			text: "https://1024terabox.com/s/1AbC-d_E",
			want: "https://1024terabox.com/s/1AbC-d_E",
		},
		{
			name: "正常系: 文章中のteraboxlinkを抽出する",
			text: "please grab this http://teraboxlink.com/s/xyz123 thanks",
			want: "http://teraboxlink.com/s/xyz123",
		},
		{
			name: "正常系: terafileshare.appの/s/なし形式",
			text: "https://terafileshare.app/abcDEF",
			want: "https://terafileshare.app/abcDEF",
		},
		{
			name: "正常系: 複数ある場合は最初のリンク",
			text: "https://terabox.com/s/first https://terabox.com/s/second",
			want: "https://terabox.com/s/first",
		},
		{
			name:    "異常系: 非対応ドメイン",
			text:    "https://example.com/s/abc",
			wantErr: domain.ErrShareLinkNotFound,
		},
		{
			name:    "異常系: リンクを含まない",
			text:    "hello",
			wantErr: domain.ErrShareLinkNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ExtractShareLink(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExtractShareLink() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractShareLink() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("ExtractShareLink() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
