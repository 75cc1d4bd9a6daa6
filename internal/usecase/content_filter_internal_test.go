package usecase

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantBytes int
	}{
		{name: "正常系: 使えない文字が除去される", input: `a<b>:c"d/e\f|g?h*.mp4`, want: "abcdefgh.mp4"},
		{name: "正常系: 前後の空白とドットが除去される", input: "  ..clip.mp4.. ", want: "clip.mp4"},
		{name: "正常系: 空になった場合はfileになる", input: "<>|", want: "file"},
		{name: "正常系: 長いASCII名は末尾120バイトが残る", input: strings.Repeat("a", 200) + ".mp4", wantBytes: maxFilenameBytes},
		// "動" は3バイトなので120バイト目がルーンの途中になる
		{name: "正常系: マルチバイト文字の途中では切らない", input: strings.Repeat("動", 60) + ".mp4", wantBytes: 118},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if !utf8.ValidString(got) {
				t.Fatalf("sanitizeFilename() = %q is not valid UTF-8", got)
			}
			if tt.want != "" && got != tt.want {
				t.Errorf("sanitizeFilename() = %q, want %q", got, tt.want)
			}
			if tt.wantBytes != 0 {
				if len(got) != tt.wantBytes {
					t.Errorf("len(sanitizeFilename()) = %d, want %d", len(got), tt.wantBytes)
				}
				if !strings.HasSuffix(got, ".mp4") {
					t.Errorf("extension must be kept: %q", got)
				}
			}
		})
	}
}
