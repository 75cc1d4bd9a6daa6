package s3

import (
	"errors"
	"testing"

	"github.com/na2na-p/terabridge/internal/domain"
)

func TestArchiveKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		caller   domain.CallerID
		filename string
		size     int64
		want     string
		wantErr  error
	}{
		{name: "正常系: プレフィックス付きのキー", prefix: "archive", caller: 42, filename: "clip.mp4", size: 1048576, want: "archive/42/1048576-clip.mp4"},
		{name: "正常系: 前後のスラッシュは除去される", prefix: "/archive/", caller: 42, filename: "clip.mp4", size: 1, want: "archive/42/1-clip.mp4"},
		{name: "正常系: プレフィックスなし", prefix: "", caller: 7, filename: "a.mkv", size: 3, want: "7/3-a.mkv"},
		{name: "正常系: 危険な文字は置換される", prefix: "archive", caller: 1, filename: "../my video (1).mp4", size: 9, want: "archive/1/9-my_video_1_.mp4"},
		{name: "正常系: 空のファイル名はfileになる", prefix: "archive", caller: 1, filename: "  ", size: 0, want: "archive/1/0-file"},
		{name: "異常系: 呼び出し元が空", prefix: "archive", caller: 0, filename: "a.mp4", size: 1, wantErr: ErrInvalidArchiveKey},
		{name: "異常系: 負のサイズ", prefix: "archive", caller: 1, filename: "a.mp4", size: -1, wantErr: ErrInvalidArchiveKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ArchiveKey(tt.prefix, tt.caller, tt.filename, tt.size)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ArchiveKey() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ArchiveKey() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ArchiveKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
