package s3

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/na2na-p/terabridge/internal/usecase"
)

var _ usecase.ArchiveSink = (*ArchiveSink)(nil)

// ArchiveSink は転送済みファイルをS3互換ストレージへ複製する
type ArchiveSink struct {
	client *S3Client
	prefix string
}

func NewArchiveSink(client *S3Client, prefix string) *ArchiveSink {
	return &ArchiveSink{client: client, prefix: prefix}
}

func (s *ArchiveSink) Name() string {
	return "s3"
}

// Archive は同じキーのオブジェクトが既にあればアップロードしない
func (s *ArchiveSink) Archive(ctx context.Context, item usecase.ArchiveItem) error {
	f, err := os.Open(item.LocalPath)
	if err != nil {
		return fmt.Errorf("failed to open archive source: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat archive source: %w", err)
	}

	key, err := ArchiveKey(s.prefix, item.Caller, item.Filename, info.Size())
	if err != nil {
		return err
	}

	exists, err := s.client.HeadObject(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		slog.Info("archive object already exists", "key", key)
		return nil
	}

	contentType := mime.TypeByExtension(filepath.Ext(item.Filename))
	if err := s.client.PutObject(ctx, key, f, info.Size(), contentType); err != nil {
		return err
	}
	slog.Info("archived to object storage", "bucket", s.client.Bucket(), "key", key, "size", info.Size())
	return nil
}
