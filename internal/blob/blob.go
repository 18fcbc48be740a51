// Package blob copies uploaded CVs and merged interview recordings to
// S3-compatible object storage (AWS S3, Cloudflare R2, MinIO).
package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Susmita-Codes/Pravartak-AI/internal/config"
)

type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
}

// Noop discards uploads; used when no bucket is configured.
type Noop struct{}

func (Noop) Put(context.Context, string, string, io.Reader) error { return nil }

type S3 struct {
	client *s3.Client
	bucket string
}

// New returns an S3 store, or Noop when cfg has no bucket or keys.
func New(ctx context.Context, cfg config.BlobConfig) (Store, error) {
	if !cfg.Enabled() {
		return Noop{}, nil
	}
	return NewS3(ctx, cfg)
}

func NewS3(ctx context.Context, cfg config.BlobConfig) (*S3, error) {
	region := cfg.Region
	if region == "" {
		region = "auto"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3{client: client, bucket: cfg.Bucket}, nil
}

func (s *S3) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("putting object %s: %w", key, err)
	}
	return nil
}

// CVKey is where an uploaded resume is stored: cv/<user>/<unix>-<name>.
func CVKey(userID, fileName string, at time.Time) string {
	name := strings.ReplaceAll(path.Base(strings.ReplaceAll(fileName, "\\", "/")), " ", "_")
	return fmt.Sprintf("cv/%s/%d-%s", userID, at.Unix(), name)
}

func RecordingKey(userID, fileName string) string {
	return fmt.Sprintf("recordings/%s/%s", userID, fileName)
}
