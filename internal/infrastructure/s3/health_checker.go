package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ArchiveBucketChecker はアーカイブ先バケットに HeadBucket が通るかを確認する。
// 失敗時はバケット名とS3のエラーコードをエラーに含める
type ArchiveBucketChecker struct {
	client *S3Client
}

func NewArchiveBucketChecker(client *S3Client) *ArchiveBucketChecker {
	return &ArchiveBucketChecker{client: client}
}

func (c *ArchiveBucketChecker) Name() string {
	return "s3_archive"
}

func (c *ArchiveBucketChecker) Check(ctx context.Context) error {
	err := c.client.HeadBucket(ctx)
	if err == nil {
		return nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("archive bucket %s rejected the request (%s): %w", c.client.Bucket(), apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("archive bucket %s is unreachable: %w", c.client.Bucket(), err)
}
