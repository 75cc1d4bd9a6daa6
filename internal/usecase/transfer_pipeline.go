package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/newmo-oss/ctxtime"
)

const (
	// DefaultChunkSize はダウンロード時に1回で読み書きするバイト数
	DefaultChunkSize = 1 << 20
	// DefaultSizeLimit はTelegramボットがアップロードできる上限
	DefaultSizeLimit int64 = 2 << 30
	// DefaultArchiveMinThroughput はアーカイブのタイムアウト算出に使う最低転送速度 (バイト/秒)
	DefaultArchiveMinThroughput int64 = 1 << 20
)

type TransferPipelineConfig struct {
	TempDir            string
	ChunkSize          int
	ProgressInterval   time.Duration
	UploadRetryMargin  time.Duration
	ArchiveRetryMargin time.Duration
	// ArchiveTimeout はアーカイブ1件あたりの基本タイムアウト。
	// 実際にはファイルサイズを ArchiveMinThroughput で転送し切る時間が加算される
	ArchiveTimeout       time.Duration
	ArchiveMinThroughput int64
	Referer              string
	UserAgent            string
}

func DefaultTransferPipelineConfig() TransferPipelineConfig {
	return TransferPipelineConfig{
		TempDir:              "downloads",
		ChunkSize:            DefaultChunkSize,
		ProgressInterval:     3 * time.Second,
		UploadRetryMargin:    2 * time.Second,
		ArchiveRetryMargin:   time.Second,
		ArchiveTimeout:       15 * time.Second,
		ArchiveMinThroughput: DefaultArchiveMinThroughput,
		Referer:              "https://www.terabox.com/",
		UserAgent:            "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}

// TransferTarget は転送結果と進捗の送り先
type TransferTarget struct {
	Caller domain.CallerID
	ChatID domain.ChatID
	// Status は進捗を上書き表示するメッセージ。ゼロ値なら進捗を表示しない
	Status MessageRef
}

// TransferPipeline はダウンロード、アップロード、アーカイブ、後片付けを順に実行する
type TransferPipeline struct {
	httpClient *http.Client
	messenger  Messenger
	archives   []ArchiveSink
	cfg        TransferPipelineConfig
	sleep      Sleeper
	metrics    Metrics
}

func NewTransferPipeline(httpClient *http.Client, messenger Messenger, archives []ArchiveSink, cfg TransferPipelineConfig, sleep Sleeper, metrics Metrics) *TransferPipeline {
	if httpClient == nil {
		// ダウンロード全体にはタイムアウトを設けない
		httpClient = &http.Client{}
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ArchiveMinThroughput <= 0 {
		cfg.ArchiveMinThroughput = DefaultArchiveMinThroughput
	}
	if sleep == nil {
		sleep = SleepContext
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &TransferPipeline{
		httpClient: httpClient,
		messenger:  messenger,
		archives:   archives,
		cfg:        cfg,
		sleep:      sleep,
		metrics:    metrics,
	}
}

var errReadFailed = errors.New("read failed")

// Run は descriptor のファイルを転送し、終端結果を返す。
// どの経路で終了しても一時ファイルは削除される
func (p *TransferPipeline) Run(ctx context.Context, desc domain.TransferDescriptor, sizeLimitBytes int64, target TransferTarget) (result domain.TransferResult) {
	var tempPath string
	defer func() {
		if r := recover(); r != nil {
			slog.Error("transfer pipeline panicked",
				"caller_id", target.Caller.Int64(),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			result = domain.TransferFailed(domain.FailureUnexpectedError, "an unexpected error occurred")
		}
		p.cleanup(tempPath)
		p.metrics.TransferFinished(result.Outcome(), result.FinalSizeBytes())
	}()

	resp, err := p.openDownload(ctx, desc.DirectURL)
	if err != nil {
		slog.Warn("failed to start download", "caller_id", target.Caller.Int64(), "error", err)
		return domain.TransferFailed(domain.FailureNetworkError, "could not connect to the download server")
	}
	defer resp.Body.Close()

	declared := resp.ContentLength
	if exceedsLimit(declared, sizeLimitBytes) {
		return tooLarge(declared, sizeLimitBytes)
	}
	if declared <= 0 {
		declared = desc.DeclaredSizeBytes
	}

	file, err := p.createTempFile(target.Caller, desc.Filename)
	if err != nil {
		slog.Error("failed to create temp file", "caller_id", target.Caller.Int64(), "error", err)
		return domain.TransferFailed(domain.FailureUnexpectedError, "could not prepare local storage")
	}
	tempPath = file.Name()

	written, err := p.stream(ctx, resp.Body, file, sizeLimitBytes, declared, target)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	switch {
	case errors.Is(err, ErrTooLarge):
		return tooLarge(written, sizeLimitBytes)
	case errors.Is(err, errReadFailed):
		slog.Warn("download interrupted", "caller_id", target.Caller.Int64(), "bytes", written, "error", err)
		return domain.TransferFailed(domain.FailureNetworkError, "the connection was interrupted")
	case err != nil:
		slog.Error("failed to write temp file", "caller_id", target.Caller.Int64(), "error", err)
		return domain.TransferFailed(domain.FailureUnexpectedError, "could not write the file")
	}

	media, err := p.upload(ctx, tempPath, desc.Filename, written, target)
	if err != nil {
		slog.Error("failed to upload file", "caller_id", target.Caller.Int64(), "error", err)
		return domain.TransferFailed(domain.FailureUploadError, "could not send the file")
	}

	p.archive(ctx, ArchiveItem{
		Caller:    target.Caller,
		Media:     media,
		LocalPath: tempPath,
		Filename:  desc.Filename,
		Size:      written,
	})

	return domain.TransferSucceeded(written)
}

// exceedsLimit は n バイトが上限を超えるかを返す。負の n はサイズ不明として扱う
func exceedsLimit(n, limit int64) bool {
	size, err := domain.NewSize(n)
	if err != nil {
		return false
	}
	ceiling, err := domain.NewSize(limit)
	if err != nil {
		return true
	}
	return size.Exceeds(ceiling)
}

func tooLarge(size, limit int64) domain.TransferResult {
	return domain.TransferFailed(domain.FailureTooLarge,
		fmt.Sprintf("file is too large (%s); the limit is %s", humanize.IBytes(uint64(size)), humanize.IBytes(uint64(limit))))
}

func (p *TransferPipeline) openDownload(ctx context.Context, directURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, directURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if p.cfg.Referer != "" {
		req.Header.Set("Referer", p.cfg.Referer)
	}
	if p.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", p.cfg.UserAgent)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp, nil
}

func (p *TransferPipeline) createTempFile(caller domain.CallerID, filename string) (*os.File, error) {
	if err := os.MkdirAll(p.cfg.TempDir, 0o755); err != nil {
		return nil, err
	}
	pattern := fmt.Sprintf("%s_*_%s", caller.String(), sanitizeFilename(filename))
	return os.CreateTemp(p.cfg.TempDir, pattern)
}

// stream は body を固定長チャンクで w に書き出す。累計が limit を超えた時点で ErrTooLarge を返す
func (p *TransferPipeline) stream(ctx context.Context, body io.Reader, w io.Writer, limit, total int64, target TransferTarget) (int64, error) {
	progress := p.newProgress(ctx, "📥 Downloading", target)
	buf := make([]byte, p.cfg.ChunkSize)
	var written int64

	for {
		n, readErr := io.ReadFull(body, buf)
		if n > 0 {
			written += int64(n)
			if exceedsLimit(written, limit) {
				return written, ErrTooLarge
			}
			if _, err := w.Write(buf[:n]); err != nil {
				return written, err
			}
			if progress != nil {
				progress.Update(written, total)
			}
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("%w: %w", errReadFailed, readErr)
		}
	}
}

func (p *TransferPipeline) upload(ctx context.Context, path, filename string, size int64, target TransferTarget) (MessageRef, error) {
	progress := p.newProgress(ctx, "📤 Uploading", target)
	policy := RetryPolicy{
		Margin: p.cfg.UploadRetryMargin,
		Sleep:  p.sleep,
		OnWait: func(wait time.Duration) {
			slog.Warn("upload rate limited", "caller_id", target.Caller.Int64(), "wait", wait.String())
			p.editStatus(ctx, target, fmt.Sprintf("⏳ Upload paused for %s due to rate limits...", formatDuration(wait)))
		},
	}

	return RetryOnceAfterWait(ctx, policy, func(ctx context.Context) (MessageRef, error) {
		f, err := os.Open(path)
		if err != nil {
			return MessageRef{}, err
		}
		defer f.Close()

		var body io.Reader = f
		if progress != nil {
			body = &progressReader{r: f, total: size, onRead: progress.Update}
		}
		return p.messenger.SendMediaStream(ctx, MediaUpload{
			ChatID:   target.ChatID,
			Filename: filepath.Base(filename),
			Caption:  uploadCaption(filename),
			Size:     size,
			Body:     body,
		})
	})
}

// archiveTimeout は size バイトのアーカイブに与えるタイムアウトを返す
func (p *TransferPipeline) archiveTimeout(size int64) time.Duration {
	if size <= 0 {
		return p.cfg.ArchiveTimeout
	}
	return p.cfg.ArchiveTimeout + time.Duration(size/p.cfg.ArchiveMinThroughput)*time.Second
}

// archive は各アーカイブ先へ送る。失敗はログのみで結果には影響しない
func (p *TransferPipeline) archive(ctx context.Context, item ArchiveItem) {
	timeout := p.archiveTimeout(item.Size)
	for _, sink := range p.archives {
		policy := RetryPolicy{Margin: p.cfg.ArchiveRetryMargin, Sleep: p.sleep}
		_, err := RetryOnceAfterWait(ctx, policy, func(ctx context.Context) (struct{}, error) {
			actx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return struct{}{}, sink.Archive(actx, item)
		})
		if err != nil {
			slog.Error("failed to archive file",
				"sink", sink.Name(),
				"caller_id", item.Caller.Int64(),
				"error", err,
			)
		}
	}
}

func (p *TransferPipeline) cleanup(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to remove temp file", "path", path, "error", err)
	}
}

func (p *TransferPipeline) newProgress(ctx context.Context, phase string, target TransferTarget) *progressThrottle {
	if target.Status.IsZero() {
		return nil
	}
	now := func() time.Time { return ctxtime.Now(ctx) }
	return newProgressThrottle(p.cfg.ProgressInterval, now, func(current, total int64, elapsed time.Duration) {
		p.editStatus(ctx, target, progressText(phase, current, total, elapsed))
	})
}

// editStatus は進捗表示を更新する。失敗しても処理は継続する
func (p *TransferPipeline) editStatus(ctx context.Context, target TransferTarget, text string) {
	if target.Status.IsZero() {
		return
	}
	if err := p.messenger.EditText(ctx, target.Status, text, nil); err != nil {
		slog.Debug("failed to edit status message", "caller_id", target.Caller.Int64(), "error", err)
	}
}
