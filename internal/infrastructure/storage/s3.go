// Package storage persists uploaded branding assets in S3.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/setting/usecases"
	sharedConfig "github.com/LucasFelipeJesus/portal-chamados/internal/shared/config"
)

// S3LogoStorage implements usecases.LogoStorage on an S3 bucket fronted by a
// public URL (the bucket website or a CDN distribution).
type S3LogoStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3LogoStorage creates a new S3LogoStorage using the default AWS
// credential chain.
func NewS3LogoStorage(ctx context.Context, cfg *sharedConfig.StorageConfig) (usecases.LogoStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3LogoStorage{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

func (s *S3LogoStorage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.publicURL + "/" + key, nil
}

func (s *S3LogoStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
