package usecase

import (
	"testing"
	"time"
)

func TestExceedsLimit(t *testing.T) {
	tests := []struct {
		name  string
		n     int64
		limit int64
		want  bool
	}{
		{name: "正常系: 上限ちょうどは超過ではない", n: 2048, limit: 2048, want: false},
		{name: "正常系: 上限を1バイト超えると超過", n: 2049, limit: 2048, want: true},
		{name: "正常系: 上限未満は超過ではない", n: 1, limit: 2048, want: false},
		{name: "正常系: Content-Length不明(-1)は超過として扱わない", n: -1, limit: 2048, want: false},
		{name: "異常系: 上限が負の値なら常に超過", n: 0, limit: -1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exceedsLimit(tt.n, tt.limit); got != tt.want {
				t.Errorf("exceedsLimit(%d, %d) = %v, want %v", tt.n, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTransferPipeline_ArchiveTimeout(t *testing.T) {
	cfg := DefaultTransferPipelineConfig()
	cfg.ArchiveTimeout = 15 * time.Second
	cfg.ArchiveMinThroughput = 1 << 20
	p := NewTransferPipeline(nil, nil, nil, cfg, nil, nil)

	tests := []struct {
		name string
		size int64
		want time.Duration
	}{
		{name: "正常系: サイズ不明なら基本タイムアウトのみ", size: 0, want: 15 * time.Second},
		{name: "正常系: 小さなファイルは基本タイムアウトとほぼ同じ", size: 512 << 10, want: 15 * time.Second},
		{name: "正常系: 100MiBなら100秒加算される", size: 100 << 20, want: 115 * time.Second},
		{name: "正常系: 2GiBなら2048秒加算される", size: 2 << 30, want: 2063 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.archiveTimeout(tt.size); got != tt.want {
				t.Errorf("archiveTimeout(%d) = %s, want %s", tt.size, got, tt.want)
			}
		})
	}
}
