package s3

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
}

type S3API interface {
	PutObject(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(context.Context, *s3.HeadObjectInput, ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

type S3Client struct {
	client S3API
	bucket string
}

// NewS3Connection はエンドポイント指定時にパススタイルでアクセスするクライアントを作る
func NewS3Connection(cfg S3Config) *s3.Client {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
}

func NewS3Client(client S3API, bucket string) *S3Client {
	return &S3Client{
		client: client,
		bucket: bucket,
	}
}

func (c *S3Client) Bucket() string {
	return c.bucket
}

// PutObject は本文をそのままストリームする。本文はシーク不可でもよいため署名は UNSIGNED-PAYLOAD にする
func (c *S3Client) PutObject(ctx context.Context, key string, body io.Reader, contentLength int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(contentLength),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	var err error
	if realClient, ok := c.client.(*s3.Client); ok {
		_, err = realClient.PutObject(ctx, input,
			s3.WithAPIOptions(v4.SwapComputePayloadSHA256ForUnsignedPayloadMiddleware),
		)
	} else {
		_, err = c.client.PutObject(ctx, input)
	}
	if err != nil {
		return NewStorageError(OperationPut, err)
	}
	return nil
}

// HeadObject はオブジェクトが存在するかを返す
func (c *S3Client) HeadObject(ctx context.Context, key string) (bool, error) {
	_, err := c.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}

		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return false, nil
		}
		return false, NewStorageError(OperationHead, err)
	}
	return true, nil
}

func (c *S3Client) HeadBucket(ctx context.Context) error {
	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucket),
	})
	if err != nil {
		return NewStorageError(OperationBucket, err)
	}
	return nil
}
