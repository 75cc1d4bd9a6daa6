package middleware_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/terabridge/internal/handler/middleware"
)

func TestMaskSensitiveParams(t *testing.T) {
	type args struct {
		uri string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "正常系: token がマスキングされる",
			args: args{
				uri: "/telegram/webhook?token=123456:ABCDEF",
			},
			want: "/telegram/webhook?token=***",
		},
		{
			name: "正常系: secret_token がマスキングされる",
			args: args{
				uri: "/telegram/webhook?secret_token=s3cr3t",
			},
			want: "/telegram/webhook?secret_token=***",
		},
		{
			name: "正常系: 大文字のキーもマスキングされる",
			args: args{
				uri: "/debug?Cookie=ndus%3Dabc",
			},
			want: "/debug?Cookie=***",
		},
		{
			name: "正常系: 複数の機微パラメータが同時にマスキングされる",
			args: args{
				uri: "/debug?ndus=abc&page=2&secret=xyz",
			},
			want: "/debug?ndus=***&page=2&secret=***",
		},
		{
			name: "正常系: クエリパラメータがない場合はそのまま返される",
			args: args{
				uri: "/readyz",
			},
			want: "/readyz",
		},
		{
			name: "正常系: 機微でないパラメータはマスキングされない",
			args: args{
				uri: "/metrics?name[]=a&format=text",
			},
			want: "/metrics?format=text&name%5B%5D=a",
		},
		{
			name: "正常系: 空文字列が渡された場合は空文字列を返す",
			args: args{
				uri: "",
			},
			want: "",
		},
		{
			name: "正常系: 不正なURLの場合はそのまま返される",
			args: args{
				uri: "://invalid-url",
			},
			want: "://invalid-url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := middleware.MaskSensitiveParams(tt.args.uri)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MaskSensitiveParams() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
