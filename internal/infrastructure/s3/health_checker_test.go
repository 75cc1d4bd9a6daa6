package s3

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestArchiveBucketChecker_Check(t *testing.T) {
	tests := []struct {
		name         string
		headBucket   func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
		wantErr      bool
		wantContains []string
	}{
		{
			name: "正常系: HeadBucketが成功した場合、nilが返る",
		},
		{
			name: "異常系: S3が拒否した場合、バケット名とエラーコードを含む",
			headBucket: func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
				return nil, &mockAPIError{code: "AccessDenied", message: "access denied"}
			},
			wantErr:      true,
			wantContains: []string{"archive-bucket", "AccessDenied"},
		},
		{
			name: "異常系: 到達できない場合、バケット名を含む",
			headBucket: func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
			wantErr:      true,
			wantContains: []string{"archive-bucket", "unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewArchiveBucketChecker(NewS3Client(&MockS3API{HeadBucketFunc: tt.headBucket}, "archive-bucket"))
			if got := checker.Name(); got != "s3_archive" {
				t.Errorf("Name() = %q, want %q", got, "s3_archive")
			}

			err := checker.Check(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, NewStorageError(OperationBucket, nil)) {
				t.Errorf("error must wrap the bucket StorageError: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q must contain %q", err.Error(), want)
				}
			}
		})
	}
}
